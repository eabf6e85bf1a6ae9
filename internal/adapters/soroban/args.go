package soroban

import (
	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/trebuchet-org/sorokit/internal/domain"
)

// FormatFunctionArgs orders form values by the function's declared inputs.
// Primitive inputs are validated and normalized; composite inputs pass
// through for the converter. An absent Option input becomes nil.
func (c *Converter) FormatFunctionArgs(fn *domain.ContractFunction, values map[string]any) ([]any, []string, error) {
	args := make([]any, len(fn.Inputs))
	argTypes := make([]string, len(fn.Inputs))

	for i, in := range fn.Inputs {
		argTypes[i] = in.Type
		path := joinPath(fn.Name, in.Name)

		raw, ok := values[in.Name]
		if !ok {
			if in.IsOptional() {
				continue
			}
			return nil, nil, domain.NewCodecError(domain.ErrValidation, in.Type, path, "missing argument %q", in.Name)
		}

		if c.IsPrimitiveType(in.Type) && in.EnumMetadata == nil && len(in.Components) == 0 {
			native, err := c.parsePrimitive(raw, in.Type, path)
			if err != nil {
				return nil, nil, err
			}
			args[i] = native
			continue
		}
		args[i] = raw
	}
	return args, argTypes, nil
}

// EncodeArguments converts positional arguments into wire values. The
// first failure aborts and no partial output is returned.
func (c *Converter) EncodeArguments(fn *domain.ContractFunction, args []any) ([]xdr.ScVal, error) {
	if len(args) != len(fn.Inputs) {
		return nil, domain.NewCodecError(domain.ErrValidation, "", fn.Name,
			"%s takes %d arguments, got %d", fn.Name, len(fn.Inputs), len(args))
	}

	out := make([]xdr.ScVal, len(args))
	for i := range fn.Inputs {
		in := &fn.Inputs[i]
		v, err := c.toScVal(args[i], in.Type, in, joinPath(fn.Name, in.Name))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	c.log.Debug("encoded arguments", "function", fn.Name, "count", len(out))
	return out, nil
}

// ScValBase64 renders a wire value as base64 XDR
func ScValBase64(v xdr.ScVal) (string, error) {
	return xdr.MarshalBase64(v)
}
