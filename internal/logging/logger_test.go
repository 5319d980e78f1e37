package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG", slog.LevelWarn))
	assert.Equal(t, slog.LevelInfo, ParseLevel(" info ", slog.LevelWarn))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning", slog.LevelError))
	assert.Equal(t, slog.LevelError, ParseLevel("error", slog.LevelWarn))
	assert.Equal(t, slog.LevelWarn, ParseLevel("", slog.LevelWarn))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose", slog.LevelInfo))
}

func TestNewLogger_Debug(t *testing.T) {
	t.Setenv("RSVG_LOG_LEVEL", "")

	quiet := NewLogger(&config.RuntimeConfig{})
	assert.False(t, quiet.Enabled(context.Background(), slog.LevelInfo))

	debug := NewLogger(&config.RuntimeConfig{Debug: true})
	assert.True(t, debug.Enabled(context.Background(), slog.LevelDebug))
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/usecase/steps.go", shortPath("/home/dev/rsvg-deploy/internal/usecase/steps.go"))
	assert.Equal(t, "main.go", shortPath("/somewhere/else/main.go"))
}
