package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		value    string
		expected slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, levelFromEnv(tt.value))
		})
	}
}

func TestSetOutput(t *testing.T) {
	previous := Default()
	defer defaultLogger.Store(previous)

	var buf bytes.Buffer
	SetOutput(&buf, slog.LevelDebug)

	Debug("route matched", "url", "~/Product/List")
	assert.Contains(t, buf.String(), "route matched")
	assert.Contains(t, buf.String(), "url=~/Product/List")

	buf.Reset()
	SetOutput(&buf, slog.LevelError)
	Warn("hidden")
	Debug("hidden")
	assert.Empty(t, buf.String())

	SetOutput(&buf, slog.LevelWarn)
	Warn("context unsupported", "route", "checkout")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "route=checkout")
}
