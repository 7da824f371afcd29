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

// GetAccountInput is the Huma input for fetching a single account.
type GetAccountInput struct {
	AccountID int64 `path:"id" doc:"Account identifier"`
}

// GetAccountOutput is the Huma output for fetching a single account.
type GetAccountOutput struct {
	Body Account
}

// accountGetter is the interface for fetching a single account.
type accountGetter interface {
	GetAccount(ctx context.Context, accountID int64) (*service.Account, error)
}

// GetAccountHandler handles GET /accounts/{id}.
type GetAccountHandler struct {
	AccountService accountGetter
}

// NewGetAccountHandler creates a new GetAccountHandler.
func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

// Register registers the get account endpoint with the Huma API.
func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/accounts/{id}",
		Summary:     "Fetch an account",
		Description: "Returns the account with the given id.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("accountID", input.AccountID)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getAccountMs")
	}
	account, err := h.AccountService.GetAccount(ctx, input.AccountID)
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
		return nil, apierr.Internal("failed to fetch account")
	}

	return &GetAccountOutput{Body: accountFromService(*account)}, nil
}
