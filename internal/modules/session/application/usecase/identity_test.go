package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cachetteWeb/internal/modules/session/application/port"
	"cachetteWeb/internal/modules/session/domain"
	"cachetteWeb/internal/modules/session/infrastructure"
	"cachetteWeb/internal/shared/auth"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	return signedTokenWithRole(t, "user", expiresAt)
}

func signedTokenWithRole(t *testing.T, role string, expiresAt time.Time) string {
	t.Helper()
	claims := auth.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestResolve_EmptySessionIsAnonymous(t *testing.T) {
	resolver := NewIdentityResolver(infrastructure.NewMemorySessionStore(), auth.NewInspector())

	identity, err := resolver.Resolve(context.Background(), "fresh-session")
	if err != nil {
		t.Fatalf("expected anonymous identity, got %v", err)
	}
	if identity.LoggedIn || identity.Admin {
		t.Fatalf("expected anonymous flags, got %+v", identity)
	}
	if identity.Role != domain.RoleUser {
		t.Fatalf("expected default role, got %q", identity.Role)
	}
}

func TestResolve_LiveTokenWithUser(t *testing.T) {
	store := infrastructure.NewMemorySessionStore()
	ctx := context.Background()
	if err := store.SaveToken(ctx, "s1", signedToken(t, time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("save token: %v", err)
	}
	if err := store.SaveUser(ctx, "s1", domain.UserRecord{ID: "7", FirstName: "Claire", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("save user: %v", err)
	}

	resolver := NewIdentityResolver(store, auth.NewInspector())
	identity, err := resolver.Resolve(ctx, "s1")
	if err != nil {
		t.Fatalf("expected resolution, got %v", err)
	}
	if !identity.LoggedIn || !identity.Admin {
		t.Fatalf("expected logged-in admin, got %+v", identity)
	}
	if identity.AdminLabel != domain.AdminDisplayLabel {
		t.Fatalf("expected display tier, got %q", identity.AdminLabel)
	}
}

func TestResolve_ExpiredTokenIsAnonymous(t *testing.T) {
	store := infrastructure.NewMemorySessionStore()
	ctx := context.Background()
	if err := store.SaveToken(ctx, "s1", signedToken(t, time.Now().Add(-time.Hour))); err != nil {
		t.Fatalf("save token: %v", err)
	}
	if err := store.SaveUser(ctx, "s1", domain.UserRecord{ID: "7"}); err != nil {
		t.Fatalf("save user: %v", err)
	}

	resolver := NewIdentityResolver(store, auth.NewInspector())
	identity, err := resolver.Resolve(ctx, "s1")
	if err != nil {
		t.Fatalf("expected resolution, got %v", err)
	}
	if identity.LoggedIn {
		t.Fatalf("expired token must read as anonymous, got %+v", identity)
	}
}

func TestResolve_MalformedTokenIsAnonymous(t *testing.T) {
	store := infrastructure.NewMemorySessionStore()
	ctx := context.Background()
	if err := store.SaveToken(ctx, "s1", "not-a-jwt"); err != nil {
		t.Fatalf("save token: %v", err)
	}

	resolver := NewIdentityResolver(store, auth.NewInspector())
	identity, err := resolver.Resolve(ctx, "s1")
	if err != nil {
		t.Fatalf("expected resolution, got %v", err)
	}
	if identity.LoggedIn {
		t.Fatalf("malformed token must read as anonymous")
	}
}

func TestResolve_TokenWithoutUserSlot(t *testing.T) {
	store := infrastructure.NewMemorySessionStore()
	ctx := context.Background()
	if err := store.SaveToken(ctx, "s1", signedToken(t, time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("save token: %v", err)
	}

	resolver := NewIdentityResolver(store, auth.NewInspector())
	identity, err := resolver.Resolve(ctx, "s1")
	if err != nil {
		t.Fatalf("expected resolution, got %v", err)
	}
	// The two slots are written independently; a token without a profile
	// is live but owns nothing.
	if !identity.LoggedIn {
		t.Fatalf("expected logged-in state, got %+v", identity)
	}
	if identity.User.HasIdentity() {
		t.Fatalf("expected empty profile, got %+v", identity.User)
	}

	if _, err := resolver.RequireUser(ctx, "s1"); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected RequireUser to reject profile-less session, got %v", err)
	}
}

func TestResolve_RoleClaimBackfillsProfilelessSession(t *testing.T) {
	store := infrastructure.NewMemorySessionStore()
	ctx := context.Background()
	if err := store.SaveToken(ctx, "s1", signedTokenWithRole(t, domain.RoleAdmin, time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("save token: %v", err)
	}

	resolver := NewIdentityResolver(store, auth.NewInspector())
	identity, err := resolver.Resolve(ctx, "s1")
	if err != nil {
		t.Fatalf("expected resolution, got %v", err)
	}
	if identity.Role != domain.RoleAdmin || !identity.Admin {
		t.Fatalf("expected role claim to fill in for the missing profile, got %+v", identity)
	}
	if identity.AdminLabel != domain.AdminDisplayLabel {
		t.Fatalf("expected display tier from claim role, got %q", identity.AdminLabel)
	}

	// The profile slot, once present, stays authoritative over the claim.
	if err := store.SaveUser(ctx, "s1", domain.UserRecord{ID: "7", Role: domain.RoleUser}); err != nil {
		t.Fatalf("save user: %v", err)
	}
	identity, err = resolver.Resolve(ctx, "s1")
	if err != nil {
		t.Fatalf("expected resolution, got %v", err)
	}
	if identity.Admin || identity.Role != domain.RoleUser {
		t.Fatalf("expected stored profile to win over claim, got %+v", identity)
	}
}

func TestRequireUser_FullSession(t *testing.T) {
	store := infrastructure.NewMemorySessionStore()
	ctx := context.Background()
	if err := store.SaveToken(ctx, "s1", signedToken(t, time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("save token: %v", err)
	}
	if err := store.SaveUser(ctx, "s1", domain.UserRecord{ID: "7", Role: domain.RoleUser}); err != nil {
		t.Fatalf("save user: %v", err)
	}

	resolver := NewIdentityResolver(store, auth.NewInspector())
	identity, err := resolver.RequireUser(ctx, "s1")
	if err != nil {
		t.Fatalf("expected identity, got %v", err)
	}
	if identity.User.ID != "7" {
		t.Fatalf("expected owner id 7, got %+v", identity.User)
	}
}

func TestLogoutThenResolve_ClearsBothSlots(t *testing.T) {
	store := infrastructure.NewMemorySessionStore()
	ctx := context.Background()
	if err := store.SaveToken(ctx, "s1", signedToken(t, time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("save token: %v", err)
	}
	if err := store.SaveUser(ctx, "s1", domain.UserRecord{ID: "1", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("save user: %v", err)
	}

	if err := NewLogoutUseCase(store).Execute(ctx, "s1"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	if _, err := store.Token(ctx, "s1"); !errors.Is(err, port.ErrSessionNotFound) {
		t.Fatalf("expected token slot cleared, got %v", err)
	}

	resolver := NewIdentityResolver(store, auth.NewInspector())
	identity, err := resolver.Resolve(ctx, "s1")
	if err != nil {
		t.Fatalf("expected resolution after logout, got %v", err)
	}
	if identity.LoggedIn || identity.Admin {
		t.Fatalf("expected anonymous identity after logout, got %+v", identity)
	}
}

func TestLogout_EmptySessionSucceeds(t *testing.T) {
	if err := NewLogoutUseCase(infrastructure.NewMemorySessionStore()).Execute(context.Background(), "never-seen"); err != nil {
		t.Fatalf("logging out an empty session must succeed, got %v", err)
	}
}
