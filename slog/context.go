package slog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// NewRequestID returns a fresh request identifier.
func NewRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request identifier stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// withRequest adds the request_id attribute when ctx carries one.
func withRequest(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if id := RequestID(ctx); id != "" {
		return logger.With("request_id", id)
	}
	return logger
}
