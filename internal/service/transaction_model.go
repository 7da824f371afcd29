package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/account-server/internal/storage"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	TransactionID       int64
	AccountID           int64
	TransactionTypeCode int
	Amount              decimal.Decimal
	TransactionDate     string
}

func transactionFromStorage(row *storage.Transaction) Transaction {
	return Transaction{
		TransactionID:       row.TransactionID,
		AccountID:           row.AccountID,
		TransactionTypeCode: row.TransactionTypeCode,
		Amount:              row.Amount,
		TransactionDate:     row.TransactionDate,
	}
}

func transactionToStorage(transaction *Transaction) *storage.Transaction {
	return &storage.Transaction{
		AccountID:           transaction.AccountID,
		TransactionTypeCode: transaction.TransactionTypeCode,
		Amount:              transaction.Amount,
		TransactionDate:     transaction.TransactionDate,
	}
}
