// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values.
//
// Middleware sets the values; services read them for logging and audit
// without importing net/http:
//
//	actor := requestcontext.Username(ctx)
//	requestID := requestcontext.RequestID(ctx)
package requestcontext

import (
	"context"
)

type (
	usernameKey  struct{}
	roleKey      struct{}
	sessionIDKey struct{}
	requestIDKey struct{}
)

// Exported context keys for direct use in tests that need context.WithValue.
var (
	ContextKeyUsername  = usernameKey{}
	ContextKeyRole      = roleKey{}
	ContextKeySessionID = sessionIDKey{}
	ContextKeyRequestID = requestIDKey{}
)

// Username retrieves the authenticated operator's username.
func Username(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeyUsername).(string); ok {
		return v
	}
	return ""
}

// Role retrieves the authenticated operator's role name.
func Role(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeyRole).(string); ok {
		return v
	}
	return ""
}

// SessionID retrieves the active session id.
func SessionID(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeySessionID).(string); ok {
		return v
	}
	return ""
}

// WithSession injects the authenticated identity into ctx.
func WithSession(ctx context.Context, sessionID, username, role string) context.Context {
	ctx = context.WithValue(ctx, ContextKeySessionID, sessionID)
	ctx = context.WithValue(ctx, ContextKeyUsername, username)
	return context.WithValue(ctx, ContextKeyRole, role)
}

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}
