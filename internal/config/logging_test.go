package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_DisabledDiscards(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := NewLogger(LogConfig{}, &buf)
	require.NoError(t, err)
	defer closeFn()

	logger.Error("boom")
	assert.Empty(t, buf.String())
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := NewLogger(LogConfig{Level: "warn"}, &buf)
	require.NoError(t, err)
	defer closeFn()

	logger.Info("hidden")
	logger.Warn("shown", "tab", "timeline")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN msg=shown tab=timeline")
}

func TestNewLogger_NilFallbackDiscards(t *testing.T) {
	logger, closeFn, err := NewLogger(LogConfig{Level: "debug"}, nil)
	require.NoError(t, err)
	defer closeFn()
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "planview.log")
	var buf bytes.Buffer

	logger, closeFn, err := NewLogger(LogConfig{Level: "info", File: path}, &buf)
	require.NoError(t, err)
	logger.Info("to file")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=\"to file\"")
	assert.Empty(t, buf.String())
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LogConfig{Level: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LogConfig{Level: "info"}.SlogLevel())
	assert.Equal(t, slog.LevelError, LogConfig{Level: "error"}.SlogLevel())
}
