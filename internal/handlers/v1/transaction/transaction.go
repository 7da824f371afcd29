package transaction

import "github.com/carson-networks/account-server/internal/service"

// Transaction is the API response model for a transaction.
type Transaction struct {
	TransactionID       int64   `json:"transaction_id" doc:"Generated transaction identifier"`
	AccountID           int64   `json:"account_id" doc:"Account the transaction belongs to"`
	TransactionTypeCode int     `json:"transaction_type_code" doc:"Transaction type classification code"`
	Amount              float64 `json:"amount" doc:"Transaction amount"`
	TransactionDate     string  `json:"transaction_date" doc:"Transaction date, YYYY-MM-DD"`
}

func transactionFromService(tx service.Transaction) Transaction {
	return Transaction{
		TransactionID:       tx.TransactionID,
		AccountID:           tx.AccountID,
		TransactionTypeCode: tx.TransactionTypeCode,
		Amount:              tx.Amount.InexactFloat64(),
		TransactionDate:     tx.TransactionDate,
	}
}
