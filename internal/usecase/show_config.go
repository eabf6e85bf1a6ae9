package usecase

import (
	"context"

	"github.com/trebuchet-org/sorokit/internal/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config *config.RuntimeConfig
	// ConfigPath is the project file the values came from, empty when none was found
	ConfigPath string
	Exists     bool
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	cfg *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{cfg: cfg}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	return &ShowConfigResult{
		Config:     uc.cfg,
		ConfigPath: uc.cfg.ConfigSource,
		Exists:     uc.cfg.ConfigSource != "",
	}, nil
}
