package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/account-server/internal/storage"
)

// Account represents an account in the service layer.
type Account struct {
	AccountID       int64
	AccountTypeCode int
	CustomerID      int64
	AccountName     string
	DateOpened      string
	CurrentBalance  decimal.Decimal
}

// AccountUpdate carries a partial update: nil fields are left untouched, set
// fields overwrite the stored value.
type AccountUpdate struct {
	AccountTypeCode *int
	CustomerID      *int64
	AccountName     *string
	DateOpened      *string
	CurrentBalance  *decimal.Decimal
}

func accountFromStorage(row *storage.Account) Account {
	return Account{
		AccountID:       row.AccountID,
		AccountTypeCode: row.AccountTypeCode,
		CustomerID:      row.CustomerID,
		AccountName:     row.AccountName,
		DateOpened:      row.DateOpened,
		CurrentBalance:  row.CurrentBalance,
	}
}

func accountToStorage(account *Account) *storage.Account {
	return &storage.Account{
		AccountID:       account.AccountID,
		AccountTypeCode: account.AccountTypeCode,
		CustomerID:      account.CustomerID,
		AccountName:     account.AccountName,
		DateOpened:      account.DateOpened,
		CurrentBalance:  account.CurrentBalance,
	}
}
