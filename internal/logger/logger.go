// Package logger provides structured logging using Go's slog package.
// Records go to the writer passed to Init (stderr for the CLI) so stdout stays parseable.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// contextKey is a typed key for context values to avoid collisions.
type contextKey string

const commandKey contextKey = "command"

// Init installs the global logger.
//
// level is one of DEBUG, INFO, WARN, ERROR; format is "json" or "text".
// Empty values fall back to WARN and text.
func Init(w io.Writer, levelStr, format string) error {
	if format == "" {
		format = "text"
	}
	if levelStr == "" {
		levelStr = "WARN"
	}

	var level slog.Level
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid LOG_LEVEL: %s (must be DEBUG, INFO, WARN, or ERROR)", levelStr)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		return fmt.Errorf("invalid LOG_FORMAT: %s (must be json or text)", format)
	}

	slog.SetDefault(slog.New(handler))

	return nil
}

// WithCommand records the running command name in the context.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, commandKey, command)
}

// GetCommand retrieves the command name from context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if cmd, ok := ctx.Value(commandKey).(string); ok {
		return cmd
	}
	return ""
}

// FromContext returns a logger enriched with the command name from context.
func FromContext(ctx context.Context) *slog.Logger {
	if cmd := GetCommand(ctx); cmd != "" {
		return slog.Default().With("command", cmd)
	}
	return slog.Default()
}

// Info logs at INFO level with context enrichment.
func Info(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Info(msg, args...)
}

// Warn logs at WARN level with context enrichment.
func Warn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Warn(msg, args...)
}

// Debug logs at DEBUG level with context enrichment.
func Debug(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Debug(msg, args...)
}
