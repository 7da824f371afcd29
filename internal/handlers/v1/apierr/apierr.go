package apierr

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Error is an API error whose JSON body is the wire shape
// {"error": "<message>"}. Handlers return it directly and Huma writes it
// with the carried status code.
type Error struct {
	status  int
	Message string `json:"error" doc:"Description of what went wrong"`
}

var _ huma.StatusError = (*Error)(nil)

// New creates an Error with the given status code and message.
func New(status int, message string) *Error {
	return &Error{status: status, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.status
}

// NotFound creates a 404 error.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Conflict creates a 409 error.
func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// Internal creates a 500 error.
func Internal(message string) *Error {
	return New(http.StatusInternalServerError, message)
}
