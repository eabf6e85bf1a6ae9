package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/trebuchet-org/sorokit/internal/domain"
)

// EncodeArgumentsParams contains parameters for encoding a call's arguments
type EncodeArgumentsParams struct {
	Schema   string
	Function string
	ArgsFile string
	// Values given on the command line; they override ArgsFile entries
	Values map[string]any
}

// EncodedArgument is one argument ready for invocation
type EncodedArgument struct {
	Name  string    `json:"name"`
	Type  string    `json:"type"`
	XDR   string    `json:"xdr"`
	Value xdr.ScVal `json:"-"`
}

// EncodeArgumentsResult contains the encoded arguments in declaration order
type EncodeArgumentsResult struct {
	Contract  string
	Function  *domain.ContractFunction
	Arguments []EncodedArgument
}

// EncodeArguments converts named form values into ScVal arguments for a
// contract function.
type EncodeArguments struct {
	schemas  SchemaStore
	args     ArgumentSource
	prompter ArgumentPrompter
	encoder  ArgumentEncoder
	log      *slog.Logger
}

// NewEncodeArguments creates a new EncodeArguments use case
func NewEncodeArguments(
	schemas SchemaStore,
	args ArgumentSource,
	prompter ArgumentPrompter,
	encoder ArgumentEncoder,
	log *slog.Logger,
) *EncodeArguments {
	return &EncodeArguments{
		schemas:  schemas,
		args:     args,
		prompter: prompter,
		encoder:  encoder,
		log:      log.With("component", "EncodeArguments"),
	}
}

// Run executes the encode arguments use case
func (uc *EncodeArguments) Run(ctx context.Context, params EncodeArgumentsParams) (*EncodeArgumentsResult, error) {
	schema, err := uc.schemas.Load(ctx, params.Schema)
	if err != nil {
		return nil, fmt.Errorf("failed to load contract schema: %w", err)
	}

	fn, err := resolveFunction(ctx, schema, params.Function, uc.prompter)
	if err != nil {
		return nil, err
	}

	values := make(map[string]any)
	if params.ArgsFile != "" {
		fileValues, err := uc.args.Load(ctx, params.ArgsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read arguments file: %w", err)
		}
		maps.Copy(values, fileValues)
	}
	maps.Copy(values, params.Values)

	if err := checkArgumentNames(fn, values); err != nil {
		return nil, err
	}

	for _, in := range fn.Inputs {
		if _, ok := values[in.Name]; ok || in.IsOptional() {
			continue
		}
		v, err := uc.prompter.PromptArgument(ctx, fn, in)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", in.Name, err)
		}
		values[in.Name] = v
	}

	args, argTypes, err := uc.encoder.FormatFunctionArgs(fn, values)
	if err != nil {
		return nil, err
	}
	scVals, err := uc.encoder.EncodeArguments(fn, args)
	if err != nil {
		return nil, err
	}

	result := &EncodeArgumentsResult{
		Contract:  schema.Name,
		Function:  fn,
		Arguments: make([]EncodedArgument, len(scVals)),
	}
	for i, v := range scVals {
		b64, err := xdr.MarshalBase64(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal argument %q: %w", fn.Inputs[i].Name, err)
		}
		result.Arguments[i] = EncodedArgument{
			Name:  fn.Inputs[i].Name,
			Type:  argTypes[i],
			XDR:   b64,
			Value: v,
		}
	}

	uc.log.Debug("encoded call", "function", fn.Name, "arguments", len(result.Arguments))
	return result, nil
}

// checkArgumentNames rejects values that name no declared input
func checkArgumentNames(fn *domain.ContractFunction, values map[string]any) error {
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if _, ok := fn.Input(name); !ok {
			return domain.NewCodecError(domain.ErrValidation, "", fn.Name,
				"%s has no argument named %q", fn.Name, name)
		}
	}
	return nil
}
