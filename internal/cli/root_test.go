package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/sorokit/internal/adapters/interactive"
	"github.com/trebuchet-org/sorokit/internal/domain"
)

const projectToml = `schema = "token.json"

[contracts]
token = "token.json"

[types]
Amount = "i128"
`

const tokenSchemaJSON = `{
  "name": "token",
  "functions": [
    {
      "name": "transfer",
      "inputs": [
        {"name": "from", "type": "Address"},
        {"name": "to", "type": "Address"},
        {"name": "amount", "type": "Amount"}
      ]
    },
    {"name": "decimals", "inputs": [], "outputs": [{"name": "output", "type": "U32"}]}
  ]
}`

func newTestProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sorokit.toml"), []byte(projectToml), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "token.json"), []byte(tokenSchemaJSON), 0644))
	return dir
}

func runCLI(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(dir)
	t.Setenv("SOROKIT_SCHEMA", "")

	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func randomAddress(t *testing.T) string {
	t.Helper()
	kp, err := keypair.Random()
	require.NoError(t, err)
	return kp.Address()
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, "sorokit version dev\n", out)
}

func TestEncodeCommand(t *testing.T) {
	dir := newTestProject(t)
	from, to := randomAddress(t), randomAddress(t)

	out, err := runCLI(t, dir, "", "encode", "transfer",
		"--arg", "from="+from, "--arg", "to="+to, "--arg", "amount=-5", "--raw")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)

	var amount xdr.ScVal
	require.NoError(t, xdr.SafeUnmarshalBase64(lines[2], &amount))
	require.Equal(t, xdr.ScValTypeScvI128, amount.Type)
	assert.Equal(t, xdr.Int64(-1), amount.I128.Hi)
}

func TestEncodeCommandMissingArgument(t *testing.T) {
	dir := newTestProject(t)

	_, err := runCLI(t, dir, "", "encode", "transfer", "--non-interactive", "--arg", "from="+randomAddress(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, interactive.ErrNonInteractive))
}

func TestDecodeCommandFromStdin(t *testing.T) {
	dir := newTestProject(t)
	n := xdr.Uint32(7)
	b64, err := xdr.MarshalBase64(xdr.ScVal{Type: xdr.ScValTypeScvU32, U32: &n})
	require.NoError(t, err)

	out, err := runCLI(t, dir, b64+"\n", "decode", "decimals", "--json")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]string{"function": "decimals", "type": "U32", "display": "7"}, got)
}

func TestFunctionsCommand(t *testing.T) {
	dir := newTestProject(t)

	out, err := runCLI(t, dir, "", "functions", "--json", "--schema", "token")
	require.NoError(t, err)

	var fns []domain.ContractFunction
	require.NoError(t, json.Unmarshal([]byte(out), &fns))
	require.Len(t, fns, 2)
	assert.Equal(t, "transfer", fns[0].Name)

	_, err = runCLI(t, dir, "", "functions", "--schema", "missing.json")
	assert.True(t, errors.Is(err, domain.ErrSchemaMissing))
}

func TestTypeCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "", "type", "--json", "Vec<Option<Amount>>")
	require.NoError(t, err)

	var node domain.TypeNode
	require.NoError(t, json.Unmarshal([]byte(out), &node))
	assert.Equal(t, "Vec", node.Name)
	assert.Equal(t, "Amount", node.Params[0].Params[0].Name)
	assert.Empty(t, node.Params[0].Params[0].Wire)

	dir := newTestProject(t)
	out, err = runCLI(t, dir, "", "type", "--json", "Amount")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &node))
	assert.Equal(t, "I128", node.Wire)
}

func TestConfigCommand(t *testing.T) {
	dir := newTestProject(t)

	out, err := runCLI(t, dir, "", "config", "--json")
	require.NoError(t, err)

	var cfg map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "token.json", cfg["schema"])
	assert.Equal(t, "sorokit.toml", cfg["configSource"])
	assert.Equal(t, map[string]any{"Amount": "i128"}, cfg["types"])
}
