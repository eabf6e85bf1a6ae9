package render

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/trebuchet-org/sorokit/internal/config"
	"github.com/trebuchet-org/sorokit/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// Render renders the configuration display
func (r *ConfigRenderer) Render(result *usecase.ShowConfigResult) error {
	cfg := result.Config
	if !result.Exists {
		fmt.Fprintf(r.out, "❌ No %s file found\n", config.ProjectFileName)
		fmt.Fprintf(r.out, "⚠️  Without config, commands require an explicit --schema flag\n\n")
	} else {
		fmt.Fprintf(r.out, "📁 config file: %s\n\n", getRelativePath(filepath.Join(cfg.ProjectRoot, result.ConfigPath)))
	}

	fmt.Fprintln(r.out, "📋 Current config:")
	fmt.Fprintf(r.out, "Project:   %s\n", getRelativePath(cfg.ProjectRoot))
	if cfg.Schema != "" {
		fmt.Fprintf(r.out, "Schema:    %s\n", cfg.Schema)
	} else {
		fmt.Fprintf(r.out, "Schema:    %s\n", "(not set)")
	}
	fmt.Fprintf(r.out, "Timeout:   %s\n", cfg.Timeout)

	r.renderTable("Contracts", cfg.Contracts)
	r.renderTable("Type aliases", cfg.TypeAliases)
	return nil
}

func (r *ConfigRenderer) renderTable(title string, entries map[string]string) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(r.out, "\n%s:\n", title)
	for _, name := range slices.Sorted(maps.Keys(entries)) {
		fmt.Fprintf(r.out, "  %s = %s\n", name, entries[name])
	}
}

var _ Renderer[*usecase.ShowConfigResult] = (*ConfigRenderer)(nil)
