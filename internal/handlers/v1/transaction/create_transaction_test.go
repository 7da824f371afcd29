package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/account-server/internal/service"
)

type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, transaction service.Transaction) (int64, error) {
	args := m.Called(ctx, transaction)
	id, _ := args.Get(0).(int64)
	return id, args.Error(1)
}

// newTestAPI registers the handler against a humatest API and returns it.
func newTestAPI(t *testing.T, svc transactionCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	return api
}

// -- parseCreateTransactionInput unit tests --

func TestParseCreateTransactionInput_AllFields(t *testing.T) {
	input := &CreateTransactionInput{
		AccountID: 1,
		Body: CreateTransactionBody{
			TransactionTypeCode: 2,
			Amount:              50.25,
			TransactionDate:     "2024-02-01",
		},
	}

	tx := parseCreateTransactionInput(input)
	assert.Equal(t, int64(1), tx.AccountID)
	assert.Equal(t, 2, tx.TransactionTypeCode)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("50.25")))
	assert.Equal(t, "2024-02-01", tx.TransactionDate)
}

func TestParseCreateTransactionInput_WithoutDate(t *testing.T) {
	input := &CreateTransactionInput{
		AccountID: 1,
		Body: CreateTransactionBody{
			TransactionTypeCode: 1,
			Amount:              -99.99,
		},
	}

	tx := parseCreateTransactionInput(input)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("-99.99")))
	assert.Empty(t, tx.TransactionDate, "empty date is left for the service to default")
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(tx service.Transaction) bool {
		return tx.AccountID == 1 &&
			tx.TransactionTypeCode == 2 &&
			tx.Amount.Equal(decimal.RequireFromString("50.25")) &&
			tx.TransactionDate == "2024-02-01"
	})).Return(int64(7), nil)

	resp := newTestAPI(t, mockSvc).Post("/accounts/1/transactions", CreateTransactionBody{
		TransactionTypeCode: 2,
		Amount:              50.25,
		TransactionDate:     "2024-02-01",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Transaction created successfully", body.Message)
	assert.Equal(t, int64(7), body.TransactionID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_AccountNotFound(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(int64(0), service.ErrAccountNotFound)

	resp := newTestAPI(t, mockSvc).Post("/accounts/999/transactions", CreateTransactionBody{
		TransactionTypeCode: 1,
		Amount:              10.00,
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	var body map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Account not found", body["error"])
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/accounts/1/transactions", map[string]any{})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidDate(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma's format:"date" schema validation rejects this before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/accounts/1/transactions", CreateTransactionBody{
		TransactionTypeCode: 1,
		Amount:              10.00,
		TransactionDate:     "not-a-date",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidAccountID(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/accounts/not-a-number/transactions", CreateTransactionBody{
		TransactionTypeCode: 1,
		Amount:              10.00,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Post("/accounts/1/transactions", CreateTransactionBody{
		TransactionTypeCode: 1,
		Amount:              10.00,
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
