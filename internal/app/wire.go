//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/sorokit/internal/adapters"
	"github.com/trebuchet-org/sorokit/internal/config"
	"github.com/trebuchet-org/sorokit/internal/logging"
	"github.com/trebuchet-org/sorokit/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewEncodeArguments,
		usecase.NewDecodeResult,
		usecase.NewListFunctions,
		usecase.NewInspectType,
		usecase.NewShowConfig,

		// App
		NewApp,
	)
	return nil, nil
}
