package model

import "context"

// TxStores are stores bound to a single transaction.
type TxStores struct {
	Accounts    AccountStore
	ResetTokens ResetTokenStore
}

// Transactor runs fn against stores that commit together. An error returned
// by fn rolls the transaction back.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, stores TxStores) error) error
}
