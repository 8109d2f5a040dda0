package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dtroode/auth-service/internal/model"
)

var _ model.ResetCache = (*ResetCache)(nil)

type entry struct {
	value     string
	count     int64
	expiresAt time.Time
}

// ResetCache keeps reset markers and counters in process memory.
// It stands in for Redis when no Redis address is configured.
type ResetCache struct {
	mu       sync.Mutex
	tokens   map[string]entry
	attempts map[string]entry
	now      func() time.Time
}

func NewResetCache() *ResetCache {
	return &ResetCache{
		tokens:   make(map[string]entry),
		attempts: make(map[string]entry),
		now:      time.Now,
	}
}

func (c *ResetCache) IncrementAttempts(ctx context.Context, email string, window time.Duration) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	e, ok := c.attempts[email]
	if !ok || !now.Before(e.expiresAt) {
		e = entry{}
		sweep(c.attempts, now)
	}
	e.count++
	e.expiresAt = now.Add(window)
	c.attempts[email] = e
	return e.count, nil
}

func (c *ResetCache) HasToken(ctx context.Context, email string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.tokens[email]
	if !ok {
		return false, nil
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.tokens, email)
		return false, nil
	}
	return true, nil
}

func (c *ResetCache) SetToken(ctx context.Context, email string, tokenHash string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	sweep(c.tokens, now)
	c.tokens[email] = entry{value: tokenHash, expiresAt: now.Add(ttl)}
	return nil
}

func (c *ResetCache) ClearToken(ctx context.Context, email string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.tokens, email)
	return nil
}

// sweep drops entries whose expiry has passed. Callers hold c.mu.
func sweep(m map[string]entry, now time.Time) {
	for k, e := range m {
		if !now.Before(e.expiresAt) {
			delete(m, k)
		}
	}
}
