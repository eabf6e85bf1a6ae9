package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/sorokit/internal/usecase"
)

// EncodeRenderer renders encoded call arguments
type EncodeRenderer struct {
	out io.Writer
	// raw prints only the base64 values, one per line
	raw bool
}

// NewEncodeRenderer creates a new encode renderer
func NewEncodeRenderer(out io.Writer, raw bool) *EncodeRenderer {
	return &EncodeRenderer{out: out, raw: raw}
}

// Render renders the encoded arguments in declaration order
func (r *EncodeRenderer) Render(result *usecase.EncodeArgumentsResult) error {
	if r.raw {
		for _, arg := range result.Arguments {
			fmt.Fprintln(r.out, arg.XDR)
		}
		return nil
	}

	fmt.Fprintln(r.out, functionNameStyle.Sprint(result.Function.Signature()))
	if len(result.Arguments) == 0 {
		fmt.Fprintln(r.out, faintStyle.Sprint("  (no arguments)"))
		return nil
	}

	width := 0
	for _, arg := range result.Arguments {
		width = max(width, len(arg.Name))
	}
	for _, arg := range result.Arguments {
		fmt.Fprintf(r.out, "  %-*s  %s  %s\n",
			width, arg.Name,
			typeStyle.Sprintf("%-8s", arg.Type),
			color.New(color.FgWhite).Sprint(arg.XDR))
	}
	return nil
}

// EncodeJSON is the --json shape of an encode result
type EncodeJSON struct {
	Contract  string                    `json:"contract,omitempty"`
	Function  string                    `json:"function"`
	Arguments []usecase.EncodedArgument `json:"arguments"`
}

// NewEncodeJSON builds the --json shape of an encode result
func NewEncodeJSON(result *usecase.EncodeArgumentsResult) EncodeJSON {
	return EncodeJSON{
		Contract:  result.Contract,
		Function:  result.Function.Name,
		Arguments: result.Arguments,
	}
}

var _ Renderer[*usecase.EncodeArgumentsResult] = (*EncodeRenderer)(nil)
