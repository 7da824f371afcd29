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

// UpdateAccountInput is the Huma input for updating an account.
type UpdateAccountInput struct {
	AccountID int64 `path:"id" doc:"Account identifier"`
	Body      UpdateAccountBody
}

// UpdateAccountBody is the request body for updating an account. All fields
// are optional; only fields present in the request are written.
type UpdateAccountBody struct {
	AccountID       *int64   `json:"account_id,omitempty" doc:"Ignored; the path id identifies the account"`
	AccountTypeCode *int     `json:"account_type_code,omitempty" doc:"Account type classification code"`
	CustomerID      *int64   `json:"customer_id,omitempty" doc:"Identifier of the owning customer"`
	AccountName     *string  `json:"account_name,omitempty" doc:"Account name"`
	DateOpened      *string  `json:"date_opened,omitempty" format:"date" doc:"Date the account was opened, YYYY-MM-DD"`
	CurrentBalance  *float64 `json:"current_balance,omitempty" doc:"Current balance"`
}

// UpdateAccountOutput is the Huma output for updating an account.
type UpdateAccountOutput struct {
	Body MessageResponse
}

// accountUpdater is the interface for updating accounts.
type accountUpdater interface {
	UpdateAccount(ctx context.Context, accountID int64, update service.AccountUpdate) error
}

// UpdateAccountHandler handles PUT /accounts/{id}.
type UpdateAccountHandler struct {
	AccountService accountUpdater
}

// NewUpdateAccountHandler creates a new UpdateAccountHandler.
func NewUpdateAccountHandler(svc accountUpdater) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

// Register registers the update account endpoint with the Huma API.
func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPut,
		Path:        "/accounts/{id}",
		Summary:     "Update an account",
		Description: "Overwrites the fields present in the request body; other fields keep their stored values.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

// parseUpdateAccountInput converts the request body to the service update,
// carrying over only the fields present in the request. A body account_id is
// accepted and ignored; the path id names the account.
func parseUpdateAccountInput(input *UpdateAccountInput) service.AccountUpdate {
	update := service.AccountUpdate{
		AccountTypeCode: input.Body.AccountTypeCode,
		CustomerID:      input.Body.CustomerID,
		AccountName:     input.Body.AccountName,
		DateOpened:      input.Body.DateOpened,
	}

	if input.Body.CurrentBalance != nil {
		balance := decimal.NewFromFloat(*input.Body.CurrentBalance)
		update.CurrentBalance = &balance
	}

	return update
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("accountID", input.AccountID)
	}

	update := parseUpdateAccountInput(input)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateAccountMs")
	}
	err := h.AccountService.UpdateAccount(ctx, input.AccountID, update)
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
		return nil, apierr.Internal("failed to update account")
	}

	return &UpdateAccountOutput{
		Body: MessageResponse{Message: "Account updated successfully"},
	}, nil
}
