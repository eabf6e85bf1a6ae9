package adapters

import (
	"fmt"
	"log/slog"

	"github.com/google/wire"
	"github.com/trebuchet-org/sorokit/internal/adapters/fs"
	"github.com/trebuchet-org/sorokit/internal/adapters/interactive"
	"github.com/trebuchet-org/sorokit/internal/adapters/soroban"
	"github.com/trebuchet-org/sorokit/internal/config"
	"github.com/trebuchet-org/sorokit/internal/usecase"
)

// ProvideTypeRegistry builds the type registry with the project's [types] aliases
func ProvideTypeRegistry(cfg *config.RuntimeConfig) (soroban.TypeRegistry, error) {
	registry, err := soroban.NewTypeRegistry(cfg.TypeAliases)
	if err != nil {
		return nil, fmt.Errorf("invalid [types] in %s: %w", config.ProjectFileName, err)
	}
	return registry, nil
}

// ProvideConverter provides the engine's converter
func ProvideConverter(registry soroban.TypeRegistry, log *slog.Logger) *soroban.Converter {
	return soroban.NewConverter(registry, log)
}

// ProvideResultFormatter provides the engine's result formatter
func ProvideResultFormatter(log *slog.Logger) *soroban.ResultFormatter {
	return soroban.NewResultFormatter(log)
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewSchemaStoreAdapter,
	wire.Bind(new(usecase.SchemaStore), new(*fs.SchemaStoreAdapter)),

	fs.NewArgumentFileAdapter,
	wire.Bind(new(usecase.ArgumentSource), new(*fs.ArgumentFileAdapter)),
)

// SorobanSet provides the serialization engine
var SorobanSet = wire.NewSet(
	ProvideTypeRegistry,
	ProvideConverter,
	ProvideResultFormatter,
	wire.Bind(new(usecase.ArgumentEncoder), new(*soroban.Converter)),
	wire.Bind(new(usecase.TypeDescriber), new(*soroban.Converter)),
	wire.Bind(new(usecase.ResultFormatter), new(*soroban.ResultFormatter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewPrompterAdapter,
	wire.Bind(new(usecase.ArgumentPrompter), new(*interactive.PrompterAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	SorobanSet,
	InteractiveSet,
)
