package app

import (
	"github.com/trebuchet-org/sorokit/internal/config"
	"github.com/trebuchet-org/sorokit/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	EncodeArguments *usecase.EncodeArguments
	DecodeResult    *usecase.DecodeResult
	ListFunctions   *usecase.ListFunctions
	InspectType     *usecase.InspectType
	ShowConfig      *usecase.ShowConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	encodeArguments *usecase.EncodeArguments,
	decodeResult *usecase.DecodeResult,
	listFunctions *usecase.ListFunctions,
	inspectType *usecase.InspectType,
	showConfig *usecase.ShowConfig,
) (*App, error) {
	return &App{
		Config:          cfg,
		EncodeArguments: encodeArguments,
		DecodeResult:    decodeResult,
		ListFunctions:   listFunctions,
		InspectType:     inspectType,
		ShowConfig:      showConfig,
	}, nil
}
