package storage

import (
	"github.com/shopspring/decimal"
)

// Account is a row in the accounts table. The primary key is supplied by the
// caller; there is no generated id for accounts.
type Account struct {
	AccountID       int64           `gorm:"column:account_id;primaryKey;autoIncrement:false"`
	AccountTypeCode int             `gorm:"column:account_type_code;not null"`
	CustomerID      int64           `gorm:"column:customer_id;not null"`
	AccountName     string          `gorm:"column:account_name;type:text;not null"`
	DateOpened      string          `gorm:"column:date_opened;type:text;not null"`
	CurrentBalance  decimal.Decimal `gorm:"column:current_balance;type:numeric(15,2);not null"`
}

func (Account) TableName() string {
	return "accounts"
}

// Transaction is a row in the transactions table. Rows belong to an account
// and are removed with it.
type Transaction struct {
	TransactionID       int64           `gorm:"column:transaction_id;primaryKey;autoIncrement"`
	AccountID           int64           `gorm:"column:account_id;not null;index:idx_transactions_account_id"`
	TransactionTypeCode int             `gorm:"column:transaction_type_code;not null"`
	Amount              decimal.Decimal `gorm:"column:amount;type:numeric(15,2);not null"`
	TransactionDate     string          `gorm:"column:transaction_date;type:text;not null"`
}

func (Transaction) TableName() string {
	return "transactions"
}
