package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestProvider(t *testing.T) {
	t.Run("without project file", func(t *testing.T) {
		dir := t.TempDir()
		v := SetupViper(dir, nil)

		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, dir, cfg.ProjectRoot)
		assert.Empty(t, cfg.ConfigSource)
		assert.Empty(t, cfg.Schema)
		assert.Empty(t, cfg.TypeAliases)
	})

	t.Run("project file with env expansion", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".env", "SOROKIT_TEST_POOL_SPEC=specs/pool.xdr\n")
		writeFile(t, dir, ProjectFileName, `
schema = "specs/token.json"

[contracts]
pool = "${SOROKIT_TEST_POOL_SPEC}"

[types]
TokenAmount = "i128"

[output]
json = true
`)
		t.Cleanup(func() { os.Unsetenv("SOROKIT_TEST_POOL_SPEC") })

		cfg, err := Provider(SetupViper(dir, nil))
		require.NoError(t, err)
		assert.Equal(t, ProjectFileName, cfg.ConfigSource)
		assert.Equal(t, "specs/token.json", cfg.Schema)
		assert.Equal(t, "specs/pool.xdr", cfg.Contracts["pool"])
		assert.Equal(t, "i128", cfg.TypeAliases["TokenAmount"])
		assert.True(t, cfg.JSON)
	})

	t.Run("flag overrides project schema", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ProjectFileName, `schema = "specs/token.json"`)

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.String("schema", "", "")
		flags.Bool("non-interactive", false, "")
		require.NoError(t, flags.Parse([]string{"--schema", "other.json", "--non-interactive"}))

		cfg, err := Provider(SetupViper(dir, flags))
		require.NoError(t, err)
		assert.Equal(t, "other.json", cfg.Schema)
		assert.True(t, cfg.NonInteractive)
	})

	t.Run("malformed project file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ProjectFileName, `schema = [`)

		_, err := Provider(SetupViper(dir, nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ProjectFileName)
	})
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeFile(t, root, ProjectFileName, "")

	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.Chdir(nested))

	found, err := FindProjectRoot()
	require.NoError(t, err)

	// TempDir may sit behind a symlink (macOS /var -> /private/var)
	wantRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	gotRoot, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, wantRoot, gotRoot)
}

func TestSetupViperDefaults(t *testing.T) {
	v := SetupViper("/tmp/project", nil)
	assert.Equal(t, "/tmp/project", v.GetString("project_root"))
	assert.Equal(t, "30s", v.GetDuration("timeout").String())
	assert.False(t, v.GetBool("debug"))
}

func TestVersionString(t *testing.T) {
	prevVersion, prevCommit, prevDate := Version, Commit, Date
	t.Cleanup(func() { SetBuildFlags(prevVersion, prevCommit, prevDate) })

	SetBuildFlags("dev", "unknown", "unknown")
	assert.Equal(t, "dev", VersionString())

	SetBuildFlags("v0.3.0", "abc1234", "2026-10-01")
	assert.Equal(t, "v0.3.0 (commit abc1234, built 2026-10-01)", VersionString())
}
