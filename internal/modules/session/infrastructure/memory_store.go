package infrastructure

import (
	"context"
	"sync"

	"cachetteWeb/internal/modules/session/application/port"
	"cachetteWeb/internal/modules/session/domain"
)

// MemorySessionStore is a process-local SessionStore used in tests and
// local development runs without redis. Slots mirror the redis layout.
type MemorySessionStore struct {
	mu     sync.RWMutex
	tokens map[string]string
	users  map[string]domain.UserRecord
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		tokens: make(map[string]string),
		users:  make(map[string]domain.UserRecord),
	}
}

func (s *MemorySessionStore) SaveToken(_ context.Context, sessionID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[sessionID] = token
	return nil
}

func (s *MemorySessionStore) Token(_ context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[sessionID]
	if !ok {
		return "", port.ErrSessionNotFound
	}
	return token, nil
}

func (s *MemorySessionStore) SaveUser(_ context.Context, sessionID string, user domain.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[sessionID] = user
	return nil
}

func (s *MemorySessionStore) User(_ context.Context, sessionID string) (domain.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[sessionID]
	if !ok {
		return domain.UserRecord{}, port.ErrSessionNotFound
	}
	return user, nil
}

func (s *MemorySessionStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, sessionID)
	delete(s.users, sessionID)
	return nil
}

var _ port.SessionStore = (*MemorySessionStore)(nil)
