// Package ctxutil carries request-scoped identity through context.Context.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	requestIDKey struct{}
)

// WithUserID stores the authenticated caller.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx returns the authenticated caller.
// A missing or nil UUID reports false.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request ID, or "" if none was assigned.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// LogAttrs returns the request_id and user_id attributes present in ctx.
func LogAttrs(ctx context.Context) []slog.Attr {
	attrs := make([]slog.Attr, 0, 2)
	if id := RequestIDFromCtx(ctx); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	if id, ok := UserIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("user_id", id.String()))
	}
	return attrs
}
