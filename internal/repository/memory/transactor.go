package memory

import (
	"context"
	"sync"

	"github.com/dtroode/auth-service/internal/model"
)

var _ model.Transactor = (*Transactor)(nil)

// Transactor serializes WithinTx calls over the memory stores. Writes made
// before fn fails are not undone.
type Transactor struct {
	mu     sync.Mutex
	stores model.TxStores
}

func NewTransactor(accounts *AccountRepository, resets *ResetTokenRepository) *Transactor {
	return &Transactor{stores: model.TxStores{Accounts: accounts, ResetTokens: resets}}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context, stores model.TxStores) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return fn(ctx, t.stores)
}
