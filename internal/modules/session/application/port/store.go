package port

import (
	"context"
	"errors"

	"cachetteWeb/internal/modules/session/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore is the single source of truth for "who is the current
// user". Token and user record live in two independent slots; the pair is
// never written atomically, so readers must tolerate one slot being
// present without the other. Writes are user driven and infrequent,
// last-writer-wins is acceptable.
type SessionStore interface {
	SaveToken(ctx context.Context, sessionID, token string) error
	Token(ctx context.Context, sessionID string) (string, error)
	SaveUser(ctx context.Context, sessionID string, user domain.UserRecord) error
	User(ctx context.Context, sessionID string) (domain.UserRecord, error)
	// Clear removes both slots. Clearing an unknown session is a no-op.
	Clear(ctx context.Context, sessionID string) error
}
