package model

import (
	"context"
	"time"
)

// ResetTokenStore persists password reset records.
type ResetTokenStore interface {
	// Create stores token, replacing any previous record for the same email.
	Create(ctx context.Context, token ResetToken) error
	Get(ctx context.Context, email string, tokenHash string) (ResetToken, error)
	// Delete removes the matching token, or returns ErrNotFound if there is none.
	Delete(ctx context.Context, email string, tokenHash string) error
}

// ResetCache holds short-lived reset state: attempt counters and issued markers.
type ResetCache interface {
	// IncrementAttempts bumps the attempt counter for email and returns the new count.
	// Every call restarts the window.
	IncrementAttempts(ctx context.Context, email string, window time.Duration) (int64, error)
	HasToken(ctx context.Context, email string) (bool, error)
	SetToken(ctx context.Context, email string, tokenHash string, ttl time.Duration) error
	ClearToken(ctx context.Context, email string) error
}

// ResetToken is a durable password reset record. Only the digest of the secret is kept.
type ResetToken struct {
	Email     string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the token is past its expiry at now.
func (t ResetToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// ResetRequestResult is returned when a reset token is issued.
type ResetRequestResult struct {
	Message           string
	ResetToken        string
	AttemptsRemaining int64
}
