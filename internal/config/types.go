package config

import "time"

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string `json:"projectRoot"`

	// Schema is the default contract interface file, relative to ProjectRoot
	Schema string `json:"schema,omitempty"`

	// Contracts maps contract names to interface files
	Contracts map[string]string `json:"contracts,omitempty"`

	// TypeAliases maps custom type names to wire primitive names (e.g. "i128")
	TypeAliases map[string]string `json:"types,omitempty"`

	// Execution settings
	Debug          bool          `json:"debug"`
	NonInteractive bool          `json:"nonInteractive"`
	JSON           bool          `json:"json"`
	Timeout        time.Duration `json:"timeout"`

	// ConfigSource is the project file the settings came from, empty when none
	ConfigSource string `json:"configSource,omitempty"`
}

// ProjectFile represents the raw sorokit.toml structure
type ProjectFile struct {
	Schema    string            `toml:"schema"`
	Contracts map[string]string `toml:"contracts"`
	Types     map[string]string `toml:"types"`
	Output    OutputConfig      `toml:"output"`
}

// OutputConfig holds output defaults
type OutputConfig struct {
	JSON bool `toml:"json"`
}
