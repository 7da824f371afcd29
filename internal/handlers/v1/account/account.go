package account

import "github.com/carson-networks/account-server/internal/service"

// Account is the API response model for an account.
type Account struct {
	AccountID       int64   `json:"account_id" doc:"Caller-assigned account identifier"`
	AccountTypeCode int     `json:"account_type_code" doc:"Account type classification code"`
	CustomerID      int64   `json:"customer_id" doc:"Identifier of the owning customer"`
	AccountName     string  `json:"account_name" doc:"Account name"`
	DateOpened      string  `json:"date_opened" doc:"Date the account was opened, YYYY-MM-DD"`
	CurrentBalance  float64 `json:"current_balance" doc:"Current balance"`
}

// MessageResponse is the confirmation body returned by the write operations.
type MessageResponse struct {
	Message string `json:"message" doc:"Human-readable result of the operation"`
}

func accountFromService(acc service.Account) Account {
	return Account{
		AccountID:       acc.AccountID,
		AccountTypeCode: acc.AccountTypeCode,
		CustomerID:      acc.CustomerID,
		AccountName:     acc.AccountName,
		DateOpened:      acc.DateOpened,
		CurrentBalance:  acc.CurrentBalance.InexactFloat64(),
	}
}
