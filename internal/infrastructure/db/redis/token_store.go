package redis

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps one live refresh token per user with a TTL.
// Key format: refresh:<user_id>
type TokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTokenStore creates a TokenStore wrapping the given Redis client. Tokens
// expire after ttl, which bounds how long a session can be renewed without
// logging in again.
func NewTokenStore(client *redis.Client, ttl time.Duration) *TokenStore {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &TokenStore{client: client, ttl: ttl}
}

// Save replaces the live refresh token for userID, restarting the TTL.
func (s *TokenStore) Save(ctx context.Context, userID, token string) error {
	if err := s.client.Set(ctx, s.key(userID), token, s.ttl).Err(); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// Valid reports whether token is the live refresh token for userID. An
// expired or rotated-out token is simply not the stored value any more.
func (s *TokenStore) Valid(ctx context.Context, userID, token string) (bool, error) {
	stored, err := s.client.Get(ctx, s.key(userID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load refresh token: %w", err)
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(token)) == 1, nil
}

// Revoke drops the live refresh token for userID.
func (s *TokenStore) Revoke(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

func (s *TokenStore) key(userID string) string {
	return fmt.Sprintf("refresh:%s", userID)
}
