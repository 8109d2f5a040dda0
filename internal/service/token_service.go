package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/auth-service/internal/logger"
	"github.com/dtroode/auth-service/internal/model"
)

// TokenService issues, verifies and invalidates token pairs. A refresh token
// is valid only while its digest is the one stored on the account.
type TokenService struct {
	manager    model.TokenManager
	accounts   model.AccountStore
	refreshTTL time.Duration
	logger     *logger.Logger
	now        func() time.Time
}

func NewTokenService(manager model.TokenManager, accounts model.AccountStore, refreshTTL time.Duration, logger *logger.Logger) *TokenService {
	return &TokenService{
		manager:    manager,
		accounts:   accounts,
		refreshTTL: refreshTTL,
		logger:     logger,
		now:        time.Now,
	}
}

// IssueAccessToken signs an access token. Nothing is persisted.
func (s *TokenService) IssueAccessToken(claims model.Claims) (string, error) {
	access, err := s.manager.GenerateAccessToken(claims)
	if err != nil {
		return "", fmt.Errorf("issue access: %w", err)
	}
	return access, nil
}

// IssueRefreshToken signs a refresh token and stores its digest on the
// account, replacing any previous session.
func (s *TokenService) IssueRefreshToken(ctx context.Context, claims model.Claims) (string, error) {
	refresh, err := s.manager.GenerateRefreshToken(claims)
	if err != nil {
		return "", fmt.Errorf("issue refresh: %w", err)
	}

	expiresAt := s.now().Add(s.refreshTTL)
	if err := s.accounts.SetRefreshToken(ctx, claims.AccountID, hashRefresh(refresh), expiresAt); err != nil {
		return "", fmt.Errorf("persist refresh: %w", err)
	}

	return refresh, nil
}

// IssuePair issues an access token, then a refresh token.
func (s *TokenService) IssuePair(ctx context.Context, claims model.Claims) (model.TokenPair, error) {
	access, err := s.IssueAccessToken(claims)
	if err != nil {
		return model.TokenPair{}, err
	}

	refresh, err := s.IssueRefreshToken(ctx, claims)
	if err != nil {
		return model.TokenPair{}, err
	}

	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyRefreshToken checks the signature, then that the token is the one
// stored on its account and the stored session has not expired.
// It does not modify anything.
func (s *TokenService) VerifyRefreshToken(ctx context.Context, presented string) (model.Claims, error) {
	claims, err := s.manager.ParseRefreshToken(presented)
	if err != nil {
		s.logger.Debug("Token service: refresh token rejected", "error", err.Error())
		return model.Claims{}, model.ErrInvalidToken
	}

	account, err := s.accounts.GetByEmail(ctx, claims.Email)
	if errors.Is(err, model.ErrNotFound) {
		return model.Claims{}, model.ErrInvalidToken
	}
	if err != nil {
		return model.Claims{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	if err := validateSession(account, claims.AccountID, hashRefresh(presented), s.now()); err != nil {
		s.logger.Info("Token service: refresh token does not match session",
			"account_id", account.ID.String())
		return model.Claims{}, err
	}

	return model.Claims{AccountID: account.ID, Email: account.Email}, nil
}

// InvalidateRefreshToken ends the session holding presented, if any.
// Unknown or malformed tokens are not an error.
func (s *TokenService) InvalidateRefreshToken(ctx context.Context, presented string) error {
	if err := s.accounts.ClearRefreshToken(ctx, hashRefresh(presented)); err != nil {
		return fmt.Errorf("clear refresh: %w", err)
	}
	return nil
}

// VerifyAccessToken validates an access token and returns its claims.
func (s *TokenService) VerifyAccessToken(token string) (model.Claims, error) {
	claims, err := s.manager.ParseAccessToken(token)
	if err != nil {
		return model.Claims{}, model.ErrInvalidToken
	}
	return claims, nil
}

// GetAccountID resolves the account ID carried by an access token.
func (s *TokenService) GetAccountID(_ context.Context, token string) (uuid.UUID, error) {
	claims, err := s.VerifyAccessToken(token)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.AccountID, nil
}

func hashRefresh(token string) []byte {
	h := sha256.Sum256([]byte(token))
	return h[:]
}

func validateSession(account model.Account, tokenAccountID uuid.UUID, presentedHash []byte, now time.Time) error {
	if account.ID != tokenAccountID {
		return model.ErrInvalidToken
	}
	if !account.HasActiveSession(now) {
		return model.ErrInvalidToken
	}
	if subtle.ConstantTimeCompare(account.RefreshTokenHash, presentedHash) != 1 {
		return model.ErrInvalidToken
	}
	return nil
}
