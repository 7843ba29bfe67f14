// Package auth holds the refresh-token store used by the admin login flow.
// One refresh token is tracked per user; issuing a new one invalidates the
// previous session.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TokenStore tracks the currently valid refresh token per user.
type TokenStore interface {
	// Save stores the refresh token for the user, replacing any previous one.
	Save(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error
	// Verify reports whether the token is the one currently stored for the
	// user and has not expired.
	Verify(ctx context.Context, userID uuid.UUID, token string) (bool, error)
	// Revoke drops the user's refresh token. Unknown users are a no-op.
	Revoke(ctx context.Context, userID uuid.UUID) error
}

func refreshKey(userID uuid.UUID) string {
	return fmt.Sprintf("refresh_token:%s", userID)
}

// RedisTokenStore keeps refresh tokens in Redis with a TTL; this is the
// production path so sessions survive process restarts.
type RedisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore creates a TokenStore backed by the given Redis client.
func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

var _ TokenStore = (*RedisTokenStore)(nil)

func (s *RedisTokenStore) Save(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, refreshKey(userID), token, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Verify(ctx context.Context, userID uuid.UUID, token string) (bool, error) {
	stored, err := s.client.Get(ctx, refreshKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read refresh token: %w", err)
	}
	return stored == token, nil
}

func (s *RedisTokenStore) Revoke(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, refreshKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

type memoryEntry struct {
	token     string
	expiresAt time.Time
}

// MemoryTokenStore is the in-process fallback used when Redis is not
// configured. Sessions do not survive restarts, which is acceptable for the
// demo setup the fallback exists for.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[uuid.UUID]memoryEntry
}

// NewMemoryTokenStore creates an empty in-process TokenStore.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[uuid.UUID]memoryEntry)}
}

var _ TokenStore = (*MemoryTokenStore)(nil)

func (s *MemoryTokenStore) Save(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[userID] = memoryEntry{token: token, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryTokenStore) Verify(ctx context.Context, userID uuid.UUID, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.tokens[userID]
	if !ok || time.Now().After(entry.expiresAt) {
		return false, nil
	}
	return entry.token == token, nil
}

func (s *MemoryTokenStore) Revoke(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, userID)
	return nil
}
