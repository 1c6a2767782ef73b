package port

import (
	"context"
	"errors"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("admin role required")
)

// CallerIdentity is the slice of the session the booking workflows need.
type CallerIdentity struct {
	UserID string
	Token  string
	Admin  bool
}

// IdentityProvider resolves the caller from the session layer. Absence of
// a usable identity is ErrNotAuthenticated, which callers keep distinct
// from network failures.
type IdentityProvider interface {
	RequireCaller(ctx context.Context, sessionID string) (CallerIdentity, error)
}
