package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/account-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/account-server/internal/logging"
	"github.com/carson-networks/account-server/internal/service"
)

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	AccountID int64 `path:"id" doc:"Account identifier"`
	Body      CreateTransactionBody
}

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	TransactionTypeCode int     `json:"transaction_type_code" doc:"Transaction type classification code"`
	Amount              float64 `json:"amount" doc:"Transaction amount"`
	TransactionDate     string  `json:"transaction_date,omitempty" format:"date" doc:"Transaction date, YYYY-MM-DD; defaults to today (UTC)"`
}

// CreateTransactionResponse is the response body for creating a transaction.
type CreateTransactionResponse struct {
	Message       string `json:"message" doc:"Human-readable result of the operation"`
	TransactionID int64  `json:"transaction_id" doc:"Generated transaction identifier"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, transaction service.Transaction) (int64, error)
}

// CreateTransactionHandler handles POST /accounts/{id}/transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account-transaction",
		Method:      http.MethodPost,
		Path:        "/accounts/{id}/transactions",
		Summary:     "Create a transaction",
		Description: "Records a transaction against the account.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseCreateTransactionInput converts the request to the service model. The
// transaction date may be empty; the service fills in today's date.
func parseCreateTransactionInput(input *CreateTransactionInput) service.Transaction {
	return service.Transaction{
		AccountID:           input.AccountID,
		TransactionTypeCode: input.Body.TransactionTypeCode,
		Amount:              decimal.NewFromFloat(input.Body.Amount),
		TransactionDate:     input.Body.TransactionDate,
	}
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("accountID", input.AccountID)
	}

	transaction := parseCreateTransactionInput(input)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	transactionID, err := h.TransactionService.CreateTransaction(ctx, transaction)
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
		return nil, apierr.Internal("failed to create transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", transactionID)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body: CreateTransactionResponse{
			Message:       "Transaction created successfully",
			TransactionID: transactionID,
		},
	}, nil
}
