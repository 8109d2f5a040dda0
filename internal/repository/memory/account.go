// Package memory provides in-process stores used by the memory database driver and tests.
package memory

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/auth-service/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

type AccountRepository struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]model.Account
	byEmail  map[string]uuid.UUID
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[uuid.UUID]model.Account),
		byEmail:  make(map[string]uuid.UUID),
	}
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	if err := ctx.Err(); err != nil {
		return model.Account{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[email]
	if !ok {
		return model.Account{}, model.ErrNotFound
	}
	return clone(r.accounts[id]), nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Account, error) {
	if err := ctx.Err(); err != nil {
		return model.Account{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return model.Account{}, model.ErrNotFound
	}
	return clone(a), nil
}

func (r *AccountRepository) Create(ctx context.Context, account model.Account) (model.Account, error) {
	if err := ctx.Err(); err != nil {
		return model.Account{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[account.Email]; ok {
		return model.Account{}, model.ErrAlreadyExists
	}
	if _, ok := r.accounts[account.ID]; ok {
		return model.Account{}, model.ErrAlreadyExists
	}

	stored := clone(account)
	r.accounts[account.ID] = stored
	r.byEmail[account.Email] = account.ID
	return clone(stored), nil
}

func (r *AccountRepository) SetRefreshToken(ctx context.Context, id uuid.UUID, tokenHash []byte, expiresAt time.Time) error {
	return r.update(ctx, func(a *model.Account) bool {
		if a.ID != id {
			return false
		}
		a.RefreshTokenHash = bytes.Clone(tokenHash)
		a.RefreshTokenExpiresAt = &expiresAt
		return true
	}, true)
}

func (r *AccountRepository) ClearRefreshToken(ctx context.Context, tokenHash []byte) error {
	return r.update(ctx, func(a *model.Account) bool {
		if len(a.RefreshTokenHash) == 0 || !bytes.Equal(a.RefreshTokenHash, tokenHash) {
			return false
		}
		a.RefreshTokenHash = nil
		a.RefreshTokenExpiresAt = nil
		return true
	}, false)
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, email string, passwordHash string) error {
	return r.update(ctx, func(a *model.Account) bool {
		if a.Email != email {
			return false
		}
		a.PasswordHash = passwordHash
		a.RefreshTokenHash = nil
		a.RefreshTokenExpiresAt = nil
		return true
	}, true)
}

func (r *AccountRepository) LinkExternalIdentity(ctx context.Context, id uuid.UUID, subject string) error {
	return r.update(ctx, func(a *model.Account) bool {
		if a.ID != id {
			return false
		}
		a.RegistrationMethod = model.RegistrationMethodExternal
		a.ExternalSubject = &subject
		return true
	}, true)
}

// update applies fn to every account under the lock, like an UPDATE ... WHERE.
func (r *AccountRepository) update(ctx context.Context, fn func(*model.Account) bool, mustMatch bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var matched int
	for id, a := range r.accounts {
		if fn(&a) {
			a.UpdatedAt = time.Now()
			r.accounts[id] = a
			matched++
		}
	}

	if mustMatch && matched == 0 {
		return model.ErrNotFound
	}
	return nil
}

func clone(a model.Account) model.Account {
	a.RefreshTokenHash = bytes.Clone(a.RefreshTokenHash)
	if a.RefreshTokenExpiresAt != nil {
		t := *a.RefreshTokenExpiresAt
		a.RefreshTokenExpiresAt = &t
	}
	if a.ExternalSubject != nil {
		s := *a.ExternalSubject
		a.ExternalSubject = &s
	}
	return a
}
