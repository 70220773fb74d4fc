// Package logger provides the structured logger shared by actionspec packages.
//
// It wraps log/slog with a package-level DefaultLogger whose level is taken
// from the LOG_LEVEL environment variable (debug, info, warn, error). Route
// matching reports its decisions at debug level and contexts it cannot use
// at warn level. Assertion failures are never logged, they go to the test
// reporter.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[slog.Logger]

func init() {
	defaultLogger.Store(newLogger(os.Stderr, levelFromEnv(os.Getenv("LOG_LEVEL"))))
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func levelFromEnv(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Default returns the current package logger.
func Default() *slog.Logger {
	return defaultLogger.Load()
}

// SetLevel replaces the package logger with one writing to stderr at level.
func SetLevel(level slog.Level) {
	defaultLogger.Store(newLogger(os.Stderr, level))
}

// SetOutput replaces the package logger with one writing to w at level.
func SetOutput(w io.Writer, level slog.Level) {
	defaultLogger.Store(newLogger(w, level))
}

// SetVerbose switches between debug and info level.
func SetVerbose(verbose bool) {
	if verbose {
		SetLevel(slog.LevelDebug)
	} else {
		SetLevel(slog.LevelInfo)
	}
}

func Debug(msg string, args ...any) {
	Default().Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	Default().Warn(msg, args...)
}
