package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/sorokit/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelWarn,
		"bogus":   slog.LevelWarn,
	}
	for input, want := range tests {
		assert.Equal(t, want, ParseLevel(input), "input %q", input)
	}
}

func TestNewLoggerDebugFlag(t *testing.T) {
	t.Setenv("SOROKIT_LOG_LEVEL", "error")

	quiet := NewLogger(&config.RuntimeConfig{})
	assert.False(t, quiet.Enabled(context.Background(), slog.LevelWarn))

	loud := NewLogger(&config.RuntimeConfig{Debug: true})
	assert.True(t, loud.Enabled(context.Background(), slog.LevelDebug))
}
