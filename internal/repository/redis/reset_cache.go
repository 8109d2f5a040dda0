// Package redis stores short-lived password reset state in Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dtroode/auth-service/internal/model"
)

var _ model.ResetCache = (*ResetCache)(nil)

const (
	tokenKeyPrefix    = "reset_token:"
	attemptsKeyPrefix = "reset_attempts:"
)

// ResetCache keeps reset-issued markers and attempt counters.
//
// Keys:
//
//	reset_token:<email>     digest of the outstanding secret, expires with it
//	reset_attempts:<email>  request counter, window restarts on every increment
type ResetCache struct {
	client goredis.UniversalClient
}

func NewResetCache(client goredis.UniversalClient) *ResetCache {
	return &ResetCache{client: client}
}

// IncrementAttempts runs INCR and EXPIRE in one MULTI/EXEC.
func (c *ResetCache) IncrementAttempts(ctx context.Context, email string, window time.Duration) (int64, error) {
	key := attemptsKey(email)

	var incr *goredis.IntCmd
	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to increment reset attempts: %w", err)
	}

	return incr.Val(), nil
}

func (c *ResetCache) HasToken(ctx context.Context, email string) (bool, error) {
	n, err := c.client.Exists(ctx, tokenKey(email)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check reset token: %w", err)
	}
	return n > 0, nil
}

func (c *ResetCache) SetToken(ctx context.Context, email string, tokenHash string, ttl time.Duration) error {
	if err := c.client.Set(ctx, tokenKey(email), tokenHash, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}
	return nil
}

func (c *ResetCache) ClearToken(ctx context.Context, email string) error {
	if err := c.client.Del(ctx, tokenKey(email)).Err(); err != nil {
		return fmt.Errorf("failed to clear reset token: %w", err)
	}
	return nil
}

func tokenKey(email string) string {
	return tokenKeyPrefix + email
}

func attemptsKey(email string) string {
	return attemptsKeyPrefix + email
}
