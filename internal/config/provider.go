package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	loadEnvFiles(projectRoot)

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		Schema:         v.GetString("schema"),
		Contracts:      map[string]string{},
		TypeAliases:    map[string]string{},
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
	}

	file, err := loadProjectFile(projectRoot)
	if err != nil {
		return nil, err
	}
	if file != nil {
		cfg.ConfigSource = ProjectFileName
		if cfg.Schema == "" {
			cfg.Schema = file.Schema
		}
		for name, path := range file.Contracts {
			cfg.Contracts[name] = path
		}
		for name, target := range file.Types {
			cfg.TypeAliases[name] = target
		}
		if file.Output.JSON && !v.IsSet("json") {
			cfg.JSON = true
		}
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find sorokit.toml.
// Without one, the current directory is the project root.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, flags *pflag.FlagSet) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("SOROKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "30s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	if flags != nil {
		flags.VisitAll(func(f *pflag.Flag) {
			if !f.Changed {
				return
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}
