// Package logging wraps log/slog with the conventions used across the board:
// snake_case operation names and a component attribute on every logger.
package logging

import (
	"context"
	"io"
	"log/slog"

	"departureboard.org/internal/appconf"
)

type loggerKey struct{}

// NewLogger builds the process logger. Production writes JSON, everything
// else writes human-readable text. Verbose enables debug records.
func NewLogger(w io.Writer, env appconf.Environment, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if env == appconf.Production {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// LogOperation records a named step at info level.
func LogOperation(logger *slog.Logger, operation string, attrs ...slog.Attr) {
	logger.LogAttrs(context.Background(), slog.LevelInfo, operation, attrs...)
}

// LogError records a failure with its error attached.
func LogError(logger *slog.Logger, message string, err error, attrs ...slog.Attr) {
	attrs = append([]slog.Attr{slog.String("error", err.Error())}, attrs...)
	logger.LogAttrs(context.Background(), slog.LevelError, message, attrs...)
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
