package service

import (
	"context"
	"time"

	"dermatriagem-api/internal/infrastructure/cache"

	"github.com/redis/go-redis/v9"
)

// Timeout for individual Redis operations
const redisTimeout = 5 * time.Second

// TokenStore tracks which issued tokens are still live. A token whose key is
// missing has been revoked or consumed.
type TokenStore struct {
	redis *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{redis: client}
}

// StoreSession registers an access/refresh token pair atomically.
func (s *TokenStore) StoreSession(ctx context.Context, userID uint, accessID string, accessTTL time.Duration, refreshID string, refreshTTL time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	pipe := s.redis.TxPipeline()
	pipe.Set(ctx, cache.AccessTokenKey(userID, accessID), "1", accessTTL)
	pipe.Set(ctx, cache.RefreshTokenKey(userID, refreshID), accessID, refreshTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *TokenStore) AccessTokenActive(ctx context.Context, userID uint, tokenID string) (bool, error) {
	return s.exists(ctx, cache.AccessTokenKey(userID, tokenID))
}

func (s *TokenStore) RefreshTokenActive(ctx context.Context, userID uint, tokenID string) (bool, error) {
	return s.exists(ctx, cache.RefreshTokenKey(userID, tokenID))
}

// RevokeSession deletes the given access and refresh tokens. Empty ids are
// skipped.
func (s *TokenStore) RevokeSession(ctx context.Context, userID uint, accessID, refreshID string) error {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	var keys []string
	if accessID != "" {
		keys = append(keys, cache.AccessTokenKey(userID, accessID))
	}
	if refreshID != "" {
		keys = append(keys, cache.RefreshTokenKey(userID, refreshID))
	}
	if len(keys) == 0 {
		return nil
	}
	return s.redis.Del(ctx, keys...).Err()
}

func (s *TokenStore) StoreInvite(ctx context.Context, email, tokenID string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	return s.redis.Set(ctx, cache.InviteTokenKey(email, tokenID), "1", ttl).Err()
}

func (s *TokenStore) InviteActive(ctx context.Context, email, tokenID string) (bool, error) {
	return s.exists(ctx, cache.InviteTokenKey(email, tokenID))
}

// ConsumeInvite deletes the invite key and reports whether it was still live.
// DEL is atomic, so only one of two concurrent consumers sees true.
func (s *TokenStore) ConsumeInvite(ctx context.Context, email, tokenID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	deleted, err := s.redis.Del(ctx, cache.InviteTokenKey(email, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return deleted == 1, nil
}

func (s *TokenStore) exists(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	n, err := s.redis.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
