package storage

import (
	"context"

	"gorm.io/gorm"
)

// IAccountTable defines the interface for account storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IAccountTable interface {
	FindByID(ctx context.Context, id int64) (*Account, error)
	Insert(ctx context.Context, row *Account) error
	List(ctx context.Context) ([]*Account, error)
	Update(ctx context.Context, row *Account) error
	DeleteWithTransactions(ctx context.Context, id int64) error
}

// AccountsTable provides access to the accounts table.
type AccountsTable struct {
	db *gorm.DB
}

// Ensure AccountsTable implements IAccountTable at compile time.
var _ IAccountTable = (*AccountsTable)(nil)

// NewAccountsTable creates an AccountsTable for the given database.
func NewAccountsTable(db *gorm.DB) *AccountsTable {
	return &AccountsTable{db: db}
}

// FindByID retrieves an account by primary key. Returns ErrNotFound when no
// row matches.
func (t *AccountsTable) FindByID(ctx context.Context, id int64) (*Account, error) {
	var row Account
	err := t.db.WithContext(ctx).Where("account_id = ?", id).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new account with the caller-supplied primary key.
func (t *AccountsTable) Insert(ctx context.Context, row *Account) error {
	return t.db.WithContext(ctx).Create(row).Error
}

// List returns every account ordered by primary key.
func (t *AccountsTable) List(ctx context.Context) ([]*Account, error) {
	var rows []*Account
	err := t.db.WithContext(ctx).Order("account_id").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Update overwrites the stored row with the given one, matched by primary key.
func (t *AccountsTable) Update(ctx context.Context, row *Account) error {
	return t.db.WithContext(ctx).Save(row).Error
}

// DeleteWithTransactions removes the account and every transaction belonging
// to it in a single database transaction.
func (t *AccountsTable) DeleteWithTransactions(ctx context.Context, id int64) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&Transaction{}).Error; err != nil {
			return err
		}
		return tx.Where("account_id = ?", id).Delete(&Account{}).Error
	})
}
