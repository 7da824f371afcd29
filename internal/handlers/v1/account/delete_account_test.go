package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/account-server/internal/service"
)

type mockAccountDeleter struct {
	mock.Mock
}

func (m *mockAccountDeleter) DeleteAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func newDeleteTestAPI(t *testing.T, svc accountDeleter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDeleteAccountHandler(svc).Register(api)
	return api
}

func TestHTTP_DeleteAccount_Success(t *testing.T) {
	mockSvc := new(mockAccountDeleter)
	mockSvc.On("DeleteAccount", mock.Anything, int64(1)).Return(nil)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/accounts/1")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MessageResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Account and related transactions deleted successfully", body.Message)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteAccount_NotFound(t *testing.T) {
	mockSvc := new(mockAccountDeleter)
	mockSvc.On("DeleteAccount", mock.Anything, int64(999)).
		Return(service.ErrAccountNotFound)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/accounts/999")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	var body map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Account not found", body["error"])
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteAccount_InvalidID(t *testing.T) {
	mockSvc := new(mockAccountDeleter)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/accounts/not-a-number")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "DeleteAccount")
}

func TestHTTP_DeleteAccount_ServiceError(t *testing.T) {
	mockSvc := new(mockAccountDeleter)
	mockSvc.On("DeleteAccount", mock.Anything, int64(1)).
		Return(errors.New("database unavailable"))

	resp := newDeleteTestAPI(t, mockSvc).Delete("/accounts/1")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
