package render

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/sorokit/internal/config"
	"github.com/trebuchet-org/sorokit/internal/domain"
	"github.com/trebuchet-org/sorokit/internal/usecase"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestFormatHelpers(t *testing.T) {
	noColor(t)
	assert.Equal(t, "❌ Failed to load: boom", FormatError("failed to load: boom"))
	assert.Equal(t, "⚠️  careful", FormatWarning("careful"))
	assert.Equal(t, "✅ done", FormatSuccess("done"))
}

func TestFunctionsRenderer(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer

	err := NewFunctionsRenderer(&buf).Render(&usecase.ListFunctionsResult{
		Contract: "token",
		Total:    3,
		Functions: []domain.ContractFunction{
			{
				Name:    "balance",
				Inputs:  []domain.FunctionParameter{{Name: "id", Type: "Address"}},
				Outputs: []domain.FunctionParameter{{Name: "output", Type: "I128"}},
			},
			{Name: "decimals", Outputs: []domain.FunctionParameter{{Name: "output", Type: "U32"}}},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "token")
	assert.Contains(t, out, "FUNCTION")
	assert.Contains(t, out, "id: Address")
	assert.Contains(t, out, "I128")
	assert.Contains(t, out, "2 of 3 functions")

	buf.Reset()
	require.NoError(t, NewFunctionsRenderer(&buf).Render(&usecase.ListFunctionsResult{}))
	assert.Equal(t, "No functions found\n", buf.String())
}

func TestEncodeRenderer(t *testing.T) {
	noColor(t)
	result := &usecase.EncodeArgumentsResult{
		Function: &domain.ContractFunction{
			Name:   "set",
			Inputs: []domain.FunctionParameter{{Name: "value", Type: "U32"}, {Name: "flag", Type: "Bool"}},
		},
		Arguments: []usecase.EncodedArgument{
			{Name: "value", Type: "U32", XDR: "AAAAAwAAAAc="},
			{Name: "flag", Type: "Bool", XDR: "AAAAAAAAAAE="},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewEncodeRenderer(&buf, true).Render(result))
	assert.Equal(t, "AAAAAwAAAAc=\nAAAAAAAAAAE=\n", buf.String())

	buf.Reset()
	require.NoError(t, NewEncodeRenderer(&buf, false).Render(result))
	assert.Contains(t, buf.String(), "set(value: U32, flag: Bool)")
	assert.Contains(t, buf.String(), "value  U32       AAAAAwAAAAc=")

	js := NewEncodeJSON(result)
	assert.Equal(t, "set", js.Function)
	assert.Len(t, js.Arguments, 2)
}

func TestDecodeRenderer(t *testing.T) {
	var buf bytes.Buffer
	result := &usecase.DecodeResultResult{
		Function: &domain.ContractFunction{Name: "balance"},
		Output:   &domain.FunctionParameter{Type: "I128"},
		Display:  "42",
	}
	require.NoError(t, NewDecodeRenderer(&buf).Render(result))
	assert.Equal(t, "42\n", buf.String())

	assert.Equal(t, DecodeJSON{Function: "balance", Type: "I128", Display: "42"}, NewDecodeJSON(result))
}

func TestTypeTreeRenderer(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer

	err := NewTypeTreeRenderer(&buf).Render(&usecase.InspectTypeResult{
		Type: "Vec<BytesN<32>>",
		Tree: &domain.TypeNode{
			Name: "Vec",
			Wire: "Vec",
			Params: []domain.TypeNode{
				{Name: "BytesN", Wire: "Bytes", Params: []domain.TypeNode{{Name: "32"}}},
				{Name: "Order"},
			},
		},
	})
	require.NoError(t, err)

	want := "Vec<BytesN<32>>\n" +
		"Vec  Generic → Vec\n" +
		"├── BytesN  Generic → Bytes\n" +
		"│   └── 32  Length\n" +
		"└── Order  Custom\n"
	assert.Equal(t, want, buf.String())
}

func TestConfigRenderer(t *testing.T) {
	var buf bytes.Buffer
	root := t.TempDir()

	err := NewConfigRenderer(&buf).Render(&usecase.ShowConfigResult{
		Config: &config.RuntimeConfig{
			ProjectRoot: root,
			Schema:      "token.json",
			Contracts:   map[string]string{"usdc": "specs/usdc.wasmspec", "amm": "specs/amm.json"},
		},
		ConfigPath: config.ProjectFileName,
		Exists:     true,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Schema:    token.json")
	assert.Contains(t, out, "Contracts:\n  amm = specs/amm.json\n  usdc = specs/usdc.wasmspec\n")
	assert.NotContains(t, out, "Type aliases")

	buf.Reset()
	require.NoError(t, NewConfigRenderer(&buf).Render(&usecase.ShowConfigResult{Config: &config.RuntimeConfig{ProjectRoot: root}}))
	assert.Contains(t, buf.String(), "No sorokit.toml file found")
	assert.Contains(t, buf.String(), "(not set)")
}
