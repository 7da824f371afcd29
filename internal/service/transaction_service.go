package service

import (
	"context"
	"errors"
	"time"

	"github.com/carson-networks/account-server/internal/storage"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// CreateTransaction inserts a transaction under an existing account and
// returns its generated id. The transaction date defaults to today (UTC) when
// left empty. Returns ErrAccountNotFound when the account does not exist.
//
// The account balance is not adjusted; transactions are a plain record.
func (s *TransactionService) CreateTransaction(ctx context.Context, transaction Transaction) (int64, error) {
	if err := s.checkAccountExists(ctx, transaction.AccountID); err != nil {
		return 0, err
	}

	row := transactionToStorage(&transaction)
	if row.TransactionDate == "" {
		row.TransactionDate = time.Now().UTC().Format(time.DateOnly)
	}

	if err := s.storage.Transactions.Insert(ctx, row); err != nil {
		return 0, err
	}
	return row.TransactionID, nil
}

// ListTransactions returns the transactions of an existing account ordered by
// transaction id. Returns ErrAccountNotFound when the account does not exist.
func (s *TransactionService) ListTransactions(ctx context.Context, accountID int64) ([]Transaction, error) {
	if err := s.checkAccountExists(ctx, accountID); err != nil {
		return nil, err
	}

	rows, err := s.storage.Transactions.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}
	return transactions, nil
}

func (s *TransactionService) checkAccountExists(ctx context.Context, accountID int64) error {
	_, err := s.storage.Accounts.FindByID(ctx, accountID)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrAccountNotFound
	}
	return err
}
