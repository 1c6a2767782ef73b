package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"cachetteWeb/internal/modules/session/application/port"
	"cachetteWeb/internal/modules/session/domain"
)

// RedisSessionStore keeps each session as two independent keys, one for
// the token and one for the user json. The slots share a TTL but not a
// write: they can desynchronize, and readers tolerate that.
type RedisSessionStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedisSessionStore(client redis.UniversalClient, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &RedisSessionStore{client: client, prefix: "session:", ttl: ttl}
}

func (s *RedisSessionStore) tokenKey(sessionID string) string {
	return s.prefix + sessionID + ":token"
}

func (s *RedisSessionStore) userKey(sessionID string) string {
	return s.prefix + sessionID + ":user"
}

func (s *RedisSessionStore) SaveToken(ctx context.Context, sessionID, token string) error {
	if strings.TrimSpace(sessionID) == "" {
		return errors.New("session id cannot be empty")
	}
	return s.client.Set(ctx, s.tokenKey(sessionID), token, s.ttl).Err()
}

func (s *RedisSessionStore) Token(ctx context.Context, sessionID string) (string, error) {
	if strings.TrimSpace(sessionID) == "" {
		return "", port.ErrSessionNotFound
	}
	value, err := s.client.Get(ctx, s.tokenKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", port.ErrSessionNotFound
		}
		return "", fmt.Errorf("redis get token: %w", err)
	}
	return value, nil
}

func (s *RedisSessionStore) SaveUser(ctx context.Context, sessionID string, user domain.UserRecord) error {
	if strings.TrimSpace(sessionID) == "" {
		return errors.New("session id cannot be empty")
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user record: %w", err)
	}
	return s.client.Set(ctx, s.userKey(sessionID), data, s.ttl).Err()
}

func (s *RedisSessionStore) User(ctx context.Context, sessionID string) (domain.UserRecord, error) {
	if strings.TrimSpace(sessionID) == "" {
		return domain.UserRecord{}, port.ErrSessionNotFound
	}
	data, err := s.client.Get(ctx, s.userKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.UserRecord{}, port.ErrSessionNotFound
		}
		return domain.UserRecord{}, fmt.Errorf("redis get user: %w", err)
	}

	var record domain.UserRecord
	if unmarshalErr := json.Unmarshal([]byte(data), &record); unmarshalErr != nil {
		return domain.UserRecord{}, fmt.Errorf("unmarshal user record: %w", unmarshalErr)
	}
	return record, nil
}

func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	return s.client.Del(ctx, s.tokenKey(sessionID), s.userKey(sessionID)).Err()
}

var _ port.SessionStore = (*RedisSessionStore)(nil)
