package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dtroode/auth-service/internal/model"
)

var _ model.Transactor = (*Transactor)(nil)

// Transactor opens database transactions and binds repositories to them.
type Transactor struct {
	db *sql.DB
}

func NewTransactor(db *sql.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTx commits when fn succeeds and rolls back on error or panic.
// Panics are rethrown after the rollback.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context, stores model.TxStores) error) (err error) {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", cerr)
		}
	}()

	return fn(ctx, model.TxStores{
		Accounts:    NewAccountRepository(tx),
		ResetTokens: NewResetTokenRepository(tx),
	})
}
