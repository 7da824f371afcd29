package storage

import (
	"context"

	"gorm.io/gorm"
)

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation without changing callers.
type ITransactionTable interface {
	Insert(ctx context.Context, row *Transaction) error
	ListByAccount(ctx context.Context, accountID int64) ([]*Transaction, error)
}

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	db *gorm.DB
}

var _ ITransactionTable = (*TransactionsTable)(nil)

// NewTransactionsTable creates a TransactionsTable for the given database.
func NewTransactionsTable(db *gorm.DB) *TransactionsTable {
	return &TransactionsTable{db: db}
}

// Insert creates a new transaction and fills in its generated id.
func (t *TransactionsTable) Insert(ctx context.Context, row *Transaction) error {
	return t.db.WithContext(ctx).Create(row).Error
}

// ListByAccount returns the transactions belonging to the given account,
// ordered by primary key.
func (t *TransactionsTable) ListByAccount(ctx context.Context, accountID int64) ([]*Transaction, error) {
	var rows []*Transaction
	err := t.db.WithContext(ctx).Where("account_id = ?", accountID).Order("transaction_id").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
