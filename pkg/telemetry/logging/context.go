package logging

import (
	"context"
	"log/slog"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// loggerKey carries the request-scoped logger.
	loggerKey contextKey = "logger"

	// requestIDKey carries the request correlation ID.
	requestIDKey contextKey = "request_id"
)

// WithLogger returns a context carrying the given logger. Handlers retrieve
// it with FromContext so every log line for a request shares the same
// request-scoped fields.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the request-scoped logger from the context, or
// slog.Default when none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID retrieves the request ID from the context.
// Returns empty string if not found.
func RequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}
