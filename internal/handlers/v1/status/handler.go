package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/account-server/internal/logging"
)

type statusResponse struct {
	Status string `json:"status"`
}

type Handler struct{}

func NewHandler() Handler {
	return Handler{}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(statusResponse{Status: "ok"})
}
