package ctxutil

import (
	"context"

	"github.com/martiny880/ooo-dashboard/internal/domain"
)

type ctxKey string

const (
	identityKey  ctxKey = "identity"
	requestIDKey ctxKey = "request_id"
)

// WithIdentity stores the acting user in the context.
func WithIdentity(ctx context.Context, id domain.UserIdentity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromCtx extracts the acting user from the context.
// Returns false if the value is missing, has no user ID, or is the wrong type.
func IdentityFromCtx(ctx context.Context) (domain.UserIdentity, bool) {
	id, ok := ctx.Value(identityKey).(domain.UserIdentity)
	if !ok || id.UserID == "" {
		return domain.UserIdentity{}, false
	}
	return id, true
}

// UserIDFromCtx returns the acting user's ID, or "" if absent.
func UserIDFromCtx(ctx context.Context) string {
	id, _ := IdentityFromCtx(ctx)
	return id.UserID
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
