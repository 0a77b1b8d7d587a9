package logging

import (
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"WARN", slog.LevelWarn},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLogger_WritesFormattedEntry(t *testing.T) {
	home := t.TempDir()
	logger := New(home, slog.LevelInfo)
	logger.now = func() time.Time { return time.Date(2025, 12, 30, 9, 32, 51, 0, time.UTC) }
	defer func() { _ = logger.Close() }()

	logger.Info("storage", "test message")

	content, err := os.ReadFile(domain.LogPath(home))
	require.NoError(t, err)
	assert.Equal(t, "[2025-12-30 09:32:51] [INFO] [storage] test message\n", string(content))
}

func TestLogger_LevelFiltering(t *testing.T) {
	home := t.TempDir()
	logger := New(home, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Debug("checklist", "debug message")
	logger.Info("checklist", "info message")
	logger.Warn("checklist", "warn message")
	logger.Error("checklist", "error message")

	content, err := os.ReadFile(domain.LogPath(home))
	require.NoError(t, err)
	s := string(content)
	assert.NotContains(t, s, "debug message")
	assert.NotContains(t, s, "info message")
	assert.Contains(t, s, "[WARN] [checklist] warn message")
	assert.Contains(t, s, "[ERROR] [checklist] error message")
	assert.Equal(t, 2, strings.Count(s, "\n"))
}

func TestLogger_AppendsAcrossInstances(t *testing.T) {
	home := t.TempDir()

	first := New(home, slog.LevelInfo)
	first.Info("checklist", "one")
	require.NoError(t, first.Close())

	second := New(home, slog.LevelInfo)
	second.Info("checklist", "two")
	require.NoError(t, second.Close())

	content, err := os.ReadFile(domain.LogPath(home))
	require.NoError(t, err)
	assert.Contains(t, string(content), "one")
	assert.Contains(t, string(content), "two")
}

func TestLogger_Disabled(t *testing.T) {
	logger := New("", slog.LevelDebug)

	logger.Error("checklist", "dropped")

	assert.NoError(t, logger.Close())
}
