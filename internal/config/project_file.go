package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ProjectFileName is the name of the project configuration file
const ProjectFileName = "sorokit.toml"

// loadEnvFiles loads .env and .env.local from the project root. Values
// already present in the environment are not overridden.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadProjectFile loads and parses sorokit.toml if it exists.
// Returns (nil, nil) when the file does not exist.
func loadProjectFile(projectRoot string) (*ProjectFile, error) {
	path := filepath.Join(projectRoot, ProjectFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var file ProjectFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
	}

	file.Schema = os.ExpandEnv(file.Schema)
	for name, p := range file.Contracts {
		file.Contracts[name] = os.ExpandEnv(p)
	}

	return &file, nil
}
