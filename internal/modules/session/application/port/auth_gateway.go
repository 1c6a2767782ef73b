package port

import (
	"context"
	"errors"

	"cachetteWeb/internal/modules/session/domain"
)

var (
	ErrBadCredentials   = errors.New("invalid credentials")
	ErrEmailTaken       = errors.New("email already registered")
	ErrAuthUnavailable  = errors.New("authentication service unavailable")
	ErrMalformedAuthRes = errors.New("malformed authentication response")
)

// Credentials carries a login attempt.
type Credentials struct {
	Email    string
	Password string
}

// Registration carries a signup form. Name fields are canonical here; the
// gateway fans them out into the aliases the backend variants expect.
type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// AuthResult is the normalized outcome of a login or register call.
type AuthResult struct {
	Token string
	User  domain.UserRecord
}

// AuthGateway talks to the backend's auth endpoints.
type AuthGateway interface {
	Login(ctx context.Context, creds Credentials) (AuthResult, error)
	Register(ctx context.Context, reg Registration) (AuthResult, error)
}
