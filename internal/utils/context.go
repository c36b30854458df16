package utils

import (
	"context"
)

type contextKey string

const ContextUsernameKey contextKey = "username"

// GetUsernameFromContext returns the authenticated username injected by the
// session middleware, if any.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username := ctx.Value(ContextUsernameKey)
	usernameStr, ok := username.(string)
	return usernameStr, ok
}

// WithUsername returns a child context carrying the authenticated username.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, ContextUsernameKey, username)
}
