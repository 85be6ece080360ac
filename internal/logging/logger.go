// Package logging provides centralized logging functionality for the application.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// defaultLogger is the logger used by the package-level functions.
var defaultLogger *slog.Logger

// init sets up the default logger from the LOG_LEVEL environment variable,
// defaulting to info.
func init() {
	SetupLogger(os.Stdout, ParseLevel(os.Getenv("LOG_LEVEL")))
}

// ParseLevel converts a level name ("debug", "info", "warn", "error") to a
// slog level. Unknown or empty names default to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogger configures the logger with the specified output and level.
func SetupLogger(w io.Writer, level slog.Level) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// Debug logs a message at debug level.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Info logs a message at info level.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Warn logs a message at warn level.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs a message at error level.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// MaskSensitive masks sensitive data for logging.
func MaskSensitive(value string) string {
	if value == "" {
		return "<not set>"
	}
	if len(value) <= 4 {
		return "<set>"
	}
	return value[:4] + "..." + strings.Repeat("*", 3)
}
