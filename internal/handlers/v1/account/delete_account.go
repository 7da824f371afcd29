package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/account-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/account-server/internal/logging"
	"github.com/carson-networks/account-server/internal/service"
)

// DeleteAccountInput is the Huma input for deleting an account.
type DeleteAccountInput struct {
	AccountID int64 `path:"id" doc:"Account identifier"`
}

// DeleteAccountOutput is the Huma output for deleting an account.
type DeleteAccountOutput struct {
	Body MessageResponse
}

// accountDeleter is the interface for deleting accounts.
type accountDeleter interface {
	DeleteAccount(ctx context.Context, accountID int64) error
}

// DeleteAccountHandler handles DELETE /accounts/{id}.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

// NewDeleteAccountHandler creates a new DeleteAccountHandler.
func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

// Register registers the delete account endpoint with the Huma API.
func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-account",
		Method:      http.MethodDelete,
		Path:        "/accounts/{id}",
		Summary:     "Delete an account",
		Description: "Deletes the account and every transaction recorded against it.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *DeleteAccountInput) (*DeleteAccountOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("accountID", input.AccountID)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteAccountMs")
	}
	err := h.AccountService.DeleteAccount(ctx, input.AccountID)
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
		return nil, apierr.Internal("failed to delete account")
	}

	return &DeleteAccountOutput{
		Body: MessageResponse{Message: "Account and related transactions deleted successfully"},
	}, nil
}
