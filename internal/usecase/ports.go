package usecase

import (
	"context"

	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/trebuchet-org/sorokit/internal/domain"
)

// SchemaStore loads contract interfaces
type SchemaStore interface {
	// Load resolves ref (a contract name from sorokit.toml, a file path, or
	// empty for the configured default) and parses the interface it names.
	Load(ctx context.Context, ref string) (*domain.ContractSchema, error)
}

// ArgumentSource reads named argument values from a file
type ArgumentSource interface {
	Load(ctx context.Context, path string) (map[string]any, error)
}

// ArgumentPrompter asks the user for what the command line left out
type ArgumentPrompter interface {
	SelectFunction(ctx context.Context, functions []domain.ContractFunction) (*domain.ContractFunction, error)
	PromptArgument(ctx context.Context, fn *domain.ContractFunction, param domain.FunctionParameter) (any, error)
}

// ArgumentEncoder turns form values into wire values
type ArgumentEncoder interface {
	FormatFunctionArgs(fn *domain.ContractFunction, values map[string]any) ([]any, []string, error)
	EncodeArguments(fn *domain.ContractFunction, args []any) ([]xdr.ScVal, error)
}

// ResultFormatter renders a base64 XDR return value for display
type ResultFormatter interface {
	FormatResultXDR(b64 string, output *domain.FunctionParameter) string
}

// TypeDescriber parses a type expression into a tree
type TypeDescriber interface {
	DescribeType(typ string) (*domain.TypeNode, error)
}
