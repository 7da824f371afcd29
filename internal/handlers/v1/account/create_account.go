package account

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

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountBody is the request body for creating an account. Only
// account_id is required; omitted fields keep their zero values.
type CreateAccountBody struct {
	AccountID       int64   `json:"account_id" doc:"Caller-assigned account identifier"`
	AccountTypeCode int     `json:"account_type_code,omitempty" doc:"Account type classification code"`
	CustomerID      int64   `json:"customer_id,omitempty" doc:"Identifier of the owning customer"`
	AccountName     string  `json:"account_name,omitempty" doc:"Account name"`
	DateOpened      string  `json:"date_opened,omitempty" format:"date" doc:"Date the account was opened, YYYY-MM-DD"`
	CurrentBalance  float64 `json:"current_balance,omitempty" doc:"Opening balance"`
}

// CreateAccountOutput is the Huma output for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   MessageResponse
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, account service.Account) error
}

// CreateAccountHandler handles POST /accounts.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/accounts",
		Summary:     "Create an account",
		Description: "Creates a new account with the caller-supplied account_id.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

// parseCreateAccountInput converts the request body to the service model.
func parseCreateAccountInput(input *CreateAccountInput) service.Account {
	return service.Account{
		AccountID:       input.Body.AccountID,
		AccountTypeCode: input.Body.AccountTypeCode,
		CustomerID:      input.Body.CustomerID,
		AccountName:     input.Body.AccountName,
		DateOpened:      input.Body.DateOpened,
		CurrentBalance:  decimal.NewFromFloat(input.Body.CurrentBalance),
	}
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("accountID", input.Body.AccountID)
	}

	account := parseCreateAccountInput(input)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	err := h.AccountService.CreateAccount(ctx, account)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, service.ErrAccountExists) {
			return nil, apierr.Conflict("Account already exists")
		}
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, apierr.Internal("failed to create account")
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   MessageResponse{Message: "Account created successfully"},
	}, nil
}
