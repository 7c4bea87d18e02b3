package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carelink/portal-api/internal/core/domain"
)

// SessionStore holds the single serialized session record under a fixed key,
// the server-side equivalent of the browser's one localStorage slot. A zero
// TTL means the record never expires.
type SessionStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, key string, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, key: key, ttl: ttl}
}

func (s *SessionStore) Get(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}
	return data, nil
}

func (s *SessionStore) Set(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}
