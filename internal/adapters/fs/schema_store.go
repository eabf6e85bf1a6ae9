package fs

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/trebuchet-org/sorokit/internal/adapters/soroban"
	"github.com/trebuchet-org/sorokit/internal/config"
	"github.com/trebuchet-org/sorokit/internal/domain"
	"gopkg.in/yaml.v3"
)

// SchemaStoreAdapter loads contract interfaces from the project tree
type SchemaStoreAdapter struct {
	root       string
	defaultRef string
	contracts  map[string]string
	log        *slog.Logger
}

// NewSchemaStoreAdapter creates a new SchemaStoreAdapter
func NewSchemaStoreAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *SchemaStoreAdapter {
	return &SchemaStoreAdapter{
		root:       cfg.ProjectRoot,
		defaultRef: cfg.Schema,
		contracts:  cfg.Contracts,
		log:        log.With("component", "SchemaStore"),
	}
}

// Load resolves ref to a file and parses it. A ref naming an entry of the
// [contracts] table uses that entry's path; anything else is a path relative
// to the project root.
func (s *SchemaStoreAdapter) Load(ctx context.Context, ref string) (*domain.ContractSchema, error) {
	name, path, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: contract interface %s does not exist", domain.ErrSchemaMissing, path)
		}
		return nil, fmt.Errorf("failed to read contract interface: %w", err)
	}

	schema, err := ParseSchema(path, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if schema.Name == "" {
		schema.Name = name
	}

	s.log.Debug("loaded contract interface", "path", path, "functions", len(schema.Functions))
	return schema, nil
}

func (s *SchemaStoreAdapter) resolve(ref string) (name, path string, err error) {
	if ref == "" {
		ref = s.defaultRef
	}
	if ref == "" {
		return "", "", fmt.Errorf("%w: no contract interface given, pass --schema or set schema in %s",
			domain.ErrSchemaMissing, config.ProjectFileName)
	}

	if p, ok := s.contracts[ref]; ok {
		name, path = ref, p
	} else {
		name = strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref))
		path = ref
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.root, path)
	}
	return name, path, nil
}

// ParseSchema decodes a contract interface, choosing the format by file
// extension: .json and .yaml/.yml hold a ContractSchema document, .xdr and
// .wasmspec hold contract spec entries as raw XDR or base64 text.
func ParseSchema(path string, data []byte) (*domain.ContractSchema, error) {
	var schema domain.ContractSchema

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, err
		}
	case ".xdr", ".wasmspec":
		entries, err := decodeSpec(data)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return soroban.SchemaFromSpec(name, entries)
	default:
		return nil, fmt.Errorf("unsupported contract interface format %q", ext)
	}

	if err := validateSchema(&schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

func decodeSpec(data []byte) ([]xdr.ScSpecEntry, error) {
	entries, rawErr := soroban.DecodeSpecEntries(data)
	if rawErr == nil {
		return entries, nil
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(string(data)), ""))
	if err != nil {
		return nil, rawErr
	}
	return soroban.DecodeSpecEntries(decoded)
}

// validateSchema rejects documents the codecs cannot work from
func validateSchema(schema *domain.ContractSchema) error {
	seen := make(map[string]bool, len(schema.Functions))
	for _, fn := range schema.Functions {
		if fn.Name == "" {
			return fmt.Errorf("%w: function without a name", domain.ErrValidation)
		}
		if seen[fn.Name] {
			return fmt.Errorf("%w: function %q is declared twice", domain.ErrValidation, fn.Name)
		}
		seen[fn.Name] = true
		for _, in := range fn.Inputs {
			if in.Name == "" || in.Type == "" {
				return fmt.Errorf("%w: function %q has an input without a name or type", domain.ErrValidation, fn.Name)
			}
		}
	}
	return nil
}
