package utils

import (
	"context"

	"movie-rating/pkg/apperror"

	"github.com/google/uuid"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the per-request session state. The zero value is Anonymous.
type Identity struct {
	UserID   int64
	Username string
	Token    uuid.UUID
}

// Anonymous returns the identity of a request with no valid session.
func Anonymous() Identity {
	return Identity{}
}

func (i Identity) Authenticated() bool {
	return i.UserID != 0
}

// Require fails with apperror.ErrUnauthorized while Anonymous.
func (i Identity) Require() error {
	if !i.Authenticated() {
		return apperror.ErrUnauthorized
	}
	return nil
}

func SetIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity returns the identity attached to ctx, or Anonymous.
func GetIdentity(ctx context.Context) Identity {
	identity, ok := ctx.Value(identityKey).(Identity)
	if !ok {
		return Anonymous()
	}
	return identity
}
