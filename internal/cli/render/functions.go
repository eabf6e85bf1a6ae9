package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/sorokit/internal/domain"
	"github.com/trebuchet-org/sorokit/internal/usecase"
)

var (
	functionNameStyle = color.New(color.FgGreen, color.Bold)
	typeStyle         = color.New(color.FgBlue)
	faintStyle        = color.New(color.Faint)
	headerStyle       = color.New(color.Bold, color.FgHiWhite)
)

// FunctionsRenderer renders the functions of a contract as a table
type FunctionsRenderer struct {
	out io.Writer
}

// NewFunctionsRenderer creates a new functions renderer
func NewFunctionsRenderer(out io.Writer) *FunctionsRenderer {
	return &FunctionsRenderer{out: out}
}

// Render renders the function list
func (r *FunctionsRenderer) Render(result *usecase.ListFunctionsResult) error {
	if len(result.Functions) == 0 {
		fmt.Fprintln(r.out, "No functions found")
		return nil
	}

	if result.Contract != "" {
		fmt.Fprintln(r.out, headerStyle.Sprint(result.Contract))
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Box = table.BoxStyle{
		PaddingRight:     "   ",
		MiddleHorizontal: "─",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, WidthMax: 80},
		{Number: 3, Align: text.AlignLeft},
	})
	t.AppendHeader(table.Row{"FUNCTION", "INPUTS", "OUTPUT"})

	for _, fn := range result.Functions {
		t.AppendRow(table.Row{
			functionNameStyle.Sprint(fn.Name),
			formatInputs(fn.Inputs),
			formatOutput(fn.Outputs),
		})
	}

	fmt.Fprintln(r.out, t.Render())
	if len(result.Functions) != result.Total {
		fmt.Fprintln(r.out, faintStyle.Sprintf("\n%d of %d functions", len(result.Functions), result.Total))
	}
	return nil
}

func formatInputs(inputs []domain.FunctionParameter) string {
	if len(inputs) == 0 {
		return faintStyle.Sprint("-")
	}
	parts := make([]string, len(inputs))
	for i, in := range inputs {
		parts[i] = fmt.Sprintf("%s: %s", in.Name, typeStyle.Sprint(in.Type))
	}
	return strings.Join(parts, ", ")
}

func formatOutput(outputs []domain.FunctionParameter) string {
	switch len(outputs) {
	case 0:
		return faintStyle.Sprint("?")
	case 1:
		return typeStyle.Sprint(outputs[0].Type)
	}
	types := make([]string, len(outputs))
	for i, out := range outputs {
		types[i] = out.Type
	}
	return typeStyle.Sprintf("(%s)", strings.Join(types, ", "))
}

var _ Renderer[*usecase.ListFunctionsResult] = (*FunctionsRenderer)(nil)
