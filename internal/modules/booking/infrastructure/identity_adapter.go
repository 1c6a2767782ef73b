package infrastructure

import (
	"context"
	"errors"

	"cachetteWeb/internal/modules/booking/application/port"
	sessionusecase "cachetteWeb/internal/modules/session/application/usecase"
)

// SessionIdentityAdapter bridges the session module's resolver into the
// booking workflows' IdentityProvider port.
type SessionIdentityAdapter struct {
	Resolver *sessionusecase.IdentityResolver
}

func NewSessionIdentityAdapter(resolver *sessionusecase.IdentityResolver) *SessionIdentityAdapter {
	return &SessionIdentityAdapter{Resolver: resolver}
}

func (a *SessionIdentityAdapter) RequireCaller(ctx context.Context, sessionID string) (port.CallerIdentity, error) {
	identity, err := a.Resolver.RequireUser(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionusecase.ErrNotAuthenticated) {
			return port.CallerIdentity{}, port.ErrNotAuthenticated
		}
		return port.CallerIdentity{}, err
	}
	return port.CallerIdentity{
		UserID: identity.User.ID,
		Token:  identity.Token,
		Admin:  identity.Admin,
	}, nil
}

var _ port.IdentityProvider = (*SessionIdentityAdapter)(nil)
