package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/sorokit/internal/usecase"
)

// DecodeRenderer renders a formatted return value
type DecodeRenderer struct {
	out io.Writer
}

// NewDecodeRenderer creates a new decode renderer
func NewDecodeRenderer(out io.Writer) *DecodeRenderer {
	return &DecodeRenderer{out: out}
}

// Render prints the display string. It is written as is so output can be
// piped.
func (r *DecodeRenderer) Render(result *usecase.DecodeResultResult) error {
	_, err := fmt.Fprintln(r.out, result.Display)
	return err
}

// DecodeJSON is the --json shape of a decode result
type DecodeJSON struct {
	Function string `json:"function"`
	Type     string `json:"type,omitempty"`
	Display  string `json:"display"`
}

// NewDecodeJSON builds the --json shape of a decode result
func NewDecodeJSON(result *usecase.DecodeResultResult) DecodeJSON {
	out := DecodeJSON{Function: result.Function.Name, Display: result.Display}
	if result.Output != nil {
		out.Type = result.Output.Type
	}
	return out
}

var _ Renderer[*usecase.DecodeResultResult] = (*DecodeRenderer)(nil)
