package httpx

import (
	"context"

	"github.com/google/uuid"
)

// Identity describes the authenticated caller of the current request.
type Identity struct {
	UserID  uuid.UUID
	IsAdmin bool
}

type identityKey struct{}

// WithIdentity returns a context carrying the caller's identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom extracts the caller's identity set by the auth middleware.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
