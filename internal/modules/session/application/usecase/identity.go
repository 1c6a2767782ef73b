package usecase

import (
	"context"
	"errors"
	"log/slog"

	"cachetteWeb/internal/modules/session/application/port"
	"cachetteWeb/internal/modules/session/domain"
	"cachetteWeb/internal/shared/auth"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// Identity is the session-derived view every other workflow consumes.
type Identity struct {
	Token      string
	User       domain.UserRecord
	LoggedIn   bool
	Admin      bool
	Role       string
	AdminLabel string
}

// IdentityResolver reads both session slots and derives the capability
// flags. "Logged in" means a live token is present; the user slot may lag
// behind it. A token whose exp claim has passed is treated the same as no
// token at all, saving a round-trip the backend would reject anyway.
type IdentityResolver struct {
	Store     port.SessionStore
	Inspector *auth.Inspector
}

func NewIdentityResolver(store port.SessionStore, inspector *auth.Inspector) *IdentityResolver {
	return &IdentityResolver{Store: store, Inspector: inspector}
}

func (r *IdentityResolver) Resolve(ctx context.Context, sessionID string) (Identity, error) {
	token, err := r.Store.Token(ctx, sessionID)
	if err != nil && !errors.Is(err, port.ErrSessionNotFound) {
		return Identity{}, err
	}

	var claims *auth.Claims
	if token != "" && r.Inspector != nil {
		parsed, inspectErr := r.Inspector.Inspect(token)
		if inspectErr != nil {
			slog.Warn("stored token unreadable, treating session as anonymous", slog.Any("error", inspectErr))
			token = ""
		} else if r.Inspector.Expired(parsed) {
			slog.Info("stored token expired, treating session as anonymous")
			token = ""
		} else {
			claims = parsed
		}
	}

	identity := Identity{Token: token, LoggedIn: token != "", Role: domain.RoleUser}
	if !identity.LoggedIn {
		return identity, nil
	}

	user, err := r.Store.User(ctx, sessionID)
	if err != nil {
		if errors.Is(err, port.ErrSessionNotFound) {
			// Token slot present, user slot missing: the session is usable
			// for authenticated calls but carries no profile. The token's
			// role claim is the only role source left.
			if claims != nil && claims.Role != "" {
				identity.Role = claims.Role
				identity.Admin = claims.Role == domain.RoleAdmin
				if identity.Admin {
					identity.AdminLabel = domain.AdminDisplayLabel
				}
			}
			return identity, nil
		}
		return Identity{}, err
	}

	identity.User = user
	identity.Admin = user.IsAdmin()
	identity.Role = user.RoleOrDefault()
	identity.AdminLabel = user.AdminLabel()
	return identity, nil
}

// RequireUser resolves the identity and fails when no reservation owner id
// is available. Callers distinguish this from transport failures.
func (r *IdentityResolver) RequireUser(ctx context.Context, sessionID string) (Identity, error) {
	identity, err := r.Resolve(ctx, sessionID)
	if err != nil {
		return Identity{}, err
	}
	if !identity.LoggedIn || !identity.User.HasIdentity() {
		return Identity{}, ErrNotAuthenticated
	}
	return identity, nil
}
