package memory

import (
	"context"
	"sync"

	"github.com/dtroode/auth-service/internal/model"
)

var _ model.ResetTokenStore = (*ResetTokenRepository)(nil)

type ResetTokenRepository struct {
	mu     sync.Mutex
	tokens map[string]model.ResetToken
}

func NewResetTokenRepository() *ResetTokenRepository {
	return &ResetTokenRepository{tokens: make(map[string]model.ResetToken)}
}

func (r *ResetTokenRepository) Create(ctx context.Context, token model.ResetToken) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[token.Email] = token
	return nil
}

func (r *ResetTokenRepository) Get(ctx context.Context, email string, tokenHash string) (model.ResetToken, error) {
	if err := ctx.Err(); err != nil {
		return model.ResetToken{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[email]
	if !ok || t.TokenHash != tokenHash {
		return model.ResetToken{}, model.ErrNotFound
	}
	return t, nil
}

func (r *ResetTokenRepository) Delete(ctx context.Context, email string, tokenHash string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[email]
	if !ok || t.TokenHash != tokenHash {
		return model.ErrNotFound
	}
	delete(r.tokens, email)
	return nil
}
