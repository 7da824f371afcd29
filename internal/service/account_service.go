package service

import (
	"context"
	"errors"

	"github.com/carson-networks/account-server/internal/storage"
)

// AccountService handles account business logic.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// ListAccounts returns every account ordered by account id.
func (s *AccountService) ListAccounts(ctx context.Context) ([]Account, error) {
	rows, err := s.storage.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]Account, len(rows))
	for i, row := range rows {
		accounts[i] = accountFromStorage(row)
	}
	return accounts, nil
}

// GetAccount retrieves an account by id. Returns ErrAccountNotFound when no
// account matches.
func (s *AccountService) GetAccount(ctx context.Context, id int64) (*Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	account := accountFromStorage(row)
	return &account, nil
}

// CreateAccount inserts a new account under its caller-supplied id. Returns
// ErrAccountExists when the id is already taken.
func (s *AccountService) CreateAccount(ctx context.Context, account Account) error {
	_, err := s.storage.Accounts.FindByID(ctx, account.AccountID)
	if err == nil {
		return ErrAccountExists
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	return s.storage.Accounts.Insert(ctx, accountToStorage(&account))
}

// UpdateAccount applies a partial update to the account: only fields set in
// the update change, the rest keep their stored values. Returns
// ErrAccountNotFound when no account matches.
func (s *AccountService) UpdateAccount(ctx context.Context, id int64, update AccountUpdate) error {
	row, err := s.storage.Accounts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	if update.AccountTypeCode != nil {
		row.AccountTypeCode = *update.AccountTypeCode
	}
	if update.CustomerID != nil {
		row.CustomerID = *update.CustomerID
	}
	if update.AccountName != nil {
		row.AccountName = *update.AccountName
	}
	if update.DateOpened != nil {
		row.DateOpened = *update.DateOpened
	}
	if update.CurrentBalance != nil {
		row.CurrentBalance = *update.CurrentBalance
	}

	return s.storage.Accounts.Update(ctx, row)
}

// DeleteAccount removes the account and its transactions. Returns
// ErrAccountNotFound when no account matches; an account without transactions
// deletes the same way.
func (s *AccountService) DeleteAccount(ctx context.Context, id int64) error {
	if _, err := s.storage.Accounts.FindByID(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	return s.storage.Accounts.DeleteWithTransactions(ctx, id)
}
