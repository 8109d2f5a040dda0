package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dtroode/auth-service/internal/model"
)

var _ model.ResetTokenStore = (*ResetTokenRepository)(nil)

type ResetTokenRepository struct {
	db DBTX
}

func NewResetTokenRepository(db DBTX) *ResetTokenRepository {
	return &ResetTokenRepository{db: db}
}

func (r *ResetTokenRepository) Create(ctx context.Context, token model.ResetToken) error {
	const query = `INSERT INTO password_reset_tokens (email, token_hash, expires_at, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO UPDATE
SET token_hash = EXCLUDED.token_hash, expires_at = EXCLUDED.expires_at, created_at = EXCLUDED.created_at`

	if _, err := r.db.ExecContext(ctx, query, token.Email, token.TokenHash, token.ExpiresAt, token.CreatedAt); err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}

	return nil
}

func (r *ResetTokenRepository) Get(ctx context.Context, email string, tokenHash string) (model.ResetToken, error) {
	const query = `SELECT email, token_hash, expires_at, created_at
FROM password_reset_tokens WHERE email = $1 AND token_hash = $2`

	var token model.ResetToken
	err := r.db.QueryRowContext(ctx, query, email, tokenHash).Scan(
		&token.Email, &token.TokenHash, &token.ExpiresAt, &token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ResetToken{}, model.ErrNotFound
		}
		return model.ResetToken{}, fmt.Errorf("failed to get reset token: %w", err)
	}

	return token, nil
}

// Delete removes the matching token. Inside a transaction the row stays
// locked until commit, so a concurrent Delete of the same token finds nothing.
func (r *ResetTokenRepository) Delete(ctx context.Context, email string, tokenHash string) error {
	const query = `DELETE FROM password_reset_tokens WHERE email = $1 AND token_hash = $2`

	res, err := r.db.ExecContext(ctx, query, email, tokenHash)
	if err != nil {
		return fmt.Errorf("failed to delete reset token: %w", err)
	}

	return requireAffected(res)
}
