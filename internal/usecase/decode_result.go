package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/trebuchet-org/sorokit/internal/domain"
)

// DecodeResultParams contains parameters for decoding a return value
type DecodeResultParams struct {
	Schema   string
	Function string
	XDR      string
}

// DecodeResultResult contains the display form of a return value
type DecodeResultResult struct {
	Contract string
	Function *domain.ContractFunction
	// Output is nil when the schema carries no output type
	Output  *domain.FunctionParameter
	Display string
}

// DecodeResult renders a contract call's base64 XDR return value using the
// function's declared output type.
type DecodeResult struct {
	schemas   SchemaStore
	prompter  ArgumentPrompter
	formatter ResultFormatter
	log       *slog.Logger
}

// NewDecodeResult creates a new DecodeResult use case
func NewDecodeResult(schemas SchemaStore, prompter ArgumentPrompter, formatter ResultFormatter, log *slog.Logger) *DecodeResult {
	return &DecodeResult{
		schemas:   schemas,
		prompter:  prompter,
		formatter: formatter,
		log:       log.With("component", "DecodeResult"),
	}
}

// Run executes the decode result use case. Formatting problems end up in
// Display as markers; only schema and lookup failures are errors.
func (uc *DecodeResult) Run(ctx context.Context, params DecodeResultParams) (*DecodeResultResult, error) {
	b64 := strings.TrimSpace(params.XDR)
	if b64 == "" {
		return nil, fmt.Errorf("%w: no XDR value given", domain.ErrValidation)
	}

	schema, err := uc.schemas.Load(ctx, params.Schema)
	if err != nil {
		return nil, fmt.Errorf("failed to load contract schema: %w", err)
	}

	fn, err := resolveFunction(ctx, schema, params.Function, uc.prompter)
	if err != nil {
		return nil, err
	}

	output := fn.Output()
	if len(fn.Outputs) > 1 {
		uc.log.Warn("function declares several outputs, formatting the first", "function", fn.Name)
	}

	return &DecodeResultResult{
		Contract: schema.Name,
		Function: fn,
		Output:   output,
		Display:  uc.formatter.FormatResultXDR(b64, output),
	}, nil
}
