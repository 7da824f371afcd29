package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/account-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/account-server/internal/logging"
	"github.com/carson-networks/account-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing an account's
// transactions.
type ListTransactionsInput struct {
	AccountID int64 `path:"id" doc:"Account identifier"`
}

// ListTransactionsOutput is the Huma output for listing transactions. The
// body is the bare JSON array of transactions.
type ListTransactionsOutput struct {
	Body []Transaction
}

// transactionLister is the interface for listing an account's transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, accountID int64) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /accounts/{id}/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-account-transactions",
		Method:      http.MethodGet,
		Path:        "/accounts/{id}/transactions",
		Summary:     "List an account's transactions",
		Description: "Returns the account's transactions ordered by transaction_id.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("accountID", input.AccountID)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListTransactions(ctx, input.AccountID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return nil, apierr.NotFound("Account not found")
		}
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, apierr.Internal("failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := make([]Transaction, len(transactions))
	for i, tx := range transactions {
		resp[i] = transactionFromService(tx)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
