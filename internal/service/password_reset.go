package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dtroode/auth-service/internal/logger"
	"github.com/dtroode/auth-service/internal/metrics"
	"github.com/dtroode/auth-service/internal/model"
)

const (
	MessageResetIssued   = "Password reset token generated"
	MessageResetRedeemed = "Password has been reset"

	resetSecretBytes = 32
)

// ResetConfig holds password reset limits.
type ResetConfig struct {
	TokenTTL      time.Duration
	AttemptWindow time.Duration
	MaxAttempts   int64
}

// DefaultResetConfig returns 15 minute tokens and 3 requests per 15 minutes.
func DefaultResetConfig() ResetConfig {
	return ResetConfig{
		TokenTTL:      15 * time.Minute,
		AttemptWindow: 15 * time.Minute,
		MaxAttempts:   3,
	}
}

type PasswordReset struct {
	accounts model.AccountStore
	tokens   model.ResetTokenStore
	cache    model.ResetCache
	hasher   model.PasswordHasher
	tx       model.Transactor
	config   ResetConfig
	metrics  *metrics.Metrics
	logger   *logger.Logger
	now      func() time.Time
	random   io.Reader
}

func NewPasswordReset(
	accounts model.AccountStore,
	tokens model.ResetTokenStore,
	cache model.ResetCache,
	hasher model.PasswordHasher,
	tx model.Transactor,
	config ResetConfig,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *PasswordReset {
	return &PasswordReset{
		accounts: accounts,
		tokens:   tokens,
		cache:    cache,
		hasher:   hasher,
		tx:       tx,
		config:   config,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
		random:   rand.Reader,
	}
}

// RequestReset issues a single-use reset secret for email. The attempt
// counter is checked before anything else, so unknown emails are limited too.
func (s *PasswordReset) RequestReset(ctx context.Context, email string) (result model.ResetRequestResult, err error) {
	defer func() { err = s.finish(ctx, metrics.OpRequestReset, err) }()

	email = normalizeEmail(email)

	attempts, err := s.cache.IncrementAttempts(ctx, email, s.config.AttemptWindow)
	if err != nil {
		return model.ResetRequestResult{}, fmt.Errorf("failed to count reset attempts: %w", err)
	}
	if attempts > s.config.MaxAttempts {
		s.logger.Info("Password reset service: too many requests", "email", email, "attempts", attempts)
		return model.ResetRequestResult{}, model.ErrTooManyRequests
	}

	issued, err := s.cache.HasToken(ctx, email)
	if err != nil {
		return model.ResetRequestResult{}, fmt.Errorf("failed to check issued reset token: %w", err)
	}
	if issued {
		return model.ResetRequestResult{}, model.ErrResetTokenAlreadyIssued
	}

	if _, err := s.accounts.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ResetRequestResult{}, model.ErrAccountNotFound
		}
		return model.ResetRequestResult{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	secret, err := s.newSecret()
	if err != nil {
		return model.ResetRequestResult{}, err
	}
	digest := hashResetSecret(secret)

	now := s.now()
	if err := s.tokens.Create(ctx, model.ResetToken{
		Email:     email,
		TokenHash: digest,
		ExpiresAt: now.Add(s.config.TokenTTL),
		CreatedAt: now,
	}); err != nil {
		return model.ResetRequestResult{}, fmt.Errorf("failed to store reset token: %w", err)
	}

	if err := s.cache.SetToken(ctx, email, digest, s.config.TokenTTL); err != nil {
		return model.ResetRequestResult{}, fmt.Errorf("failed to mark reset token issued: %w", err)
	}

	s.logger.Info("Password reset service: reset token issued", "email", email)

	return model.ResetRequestResult{
		Message:           MessageResetIssued,
		ResetToken:        secret,
		AttemptsRemaining: s.config.MaxAttempts - attempts,
	}, nil
}

// RedeemReset sets a new password if secret is the outstanding, unexpired
// token for email. Consuming the token and storing the password commit
// together, and only one concurrent redemption of a secret can succeed.
func (s *PasswordReset) RedeemReset(ctx context.Context, email, secret, newPassword string) (message string, err error) {
	defer func() { err = s.finish(ctx, metrics.OpRedeemReset, err) }()

	if secret == "" {
		return "", model.ErrNoTokenProvided
	}
	email = normalizeEmail(email)
	digest := hashResetSecret(secret)

	token, err := s.tokens.Get(ctx, email, digest)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.ErrInvalidToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to get reset token: %w", err)
	}

	if token.Expired(s.now()) {
		s.logger.Info("Password reset service: reset token expired", "email", email)
		return "", model.ErrTokenExpired
	}

	if _, err := s.accounts.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.ErrAccountNotFound
		}
		return "", fmt.Errorf("failed to get account by email: %w", err)
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context, stores model.TxStores) error {
		if err := stores.ResetTokens.Delete(ctx, email, digest); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrInvalidToken
			}
			return fmt.Errorf("failed to delete reset token: %w", err)
		}

		if err := stores.Accounts.UpdatePassword(ctx, email, hash); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrAccountNotFound
			}
			return fmt.Errorf("failed to update password: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if err := s.cache.ClearToken(ctx, email); err != nil {
		s.logger.Warn("Password reset service: failed to clear issued marker",
			"email", email,
			"error", err.Error())
	}

	s.logger.Info("Password reset service: password reset", "email", email)
	return MessageResetRedeemed, nil
}

func (s *PasswordReset) newSecret() (string, error) {
	buf := make([]byte, resetSecretBytes)
	if _, err := io.ReadFull(s.random, buf); err != nil {
		return "", fmt.Errorf("failed to generate reset secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (s *PasswordReset) finish(ctx context.Context, op string, err error) error {
	s.metrics.Record(ctx, op, err)
	return boundary(s.logger, "Password reset service", op, err)
}

func hashResetSecret(secret string) string {
	h := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(h[:])
}
