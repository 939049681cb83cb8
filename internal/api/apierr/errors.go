package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pulsedash/pulsedash-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError, with per-field details for validation
// failures
type ErrorResponse struct {
	Error   APIError `json:"error"`
	Details []string `json:"details,omitempty"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeStoreWriteFailed = "STORE_WRITE_FAILED"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
	details  []string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer.
// Validation failures carry every violated field; persistence and unexpected
// failures are opaque, internal detail stays in the server log.
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError, Details: he.details})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	if ve, ok := model.AsValidationError(err); ok {
		return &httpError{
			status:   http.StatusBadRequest,
			apiError: APIError{CodeValidationFailed, "Validation failed"},
			details:  ve.Details,
		}
	}

	if errors.Is(err, model.ErrStoreWrite) {
		return &httpError{http.StatusInternalServerError,
			APIError{CodeStoreWriteFailed, "Failed to persist analytics data"}, nil}
	}

	return &httpError{http.StatusInternalServerError,
		APIError{CodeInternalError, "Internal server error"}, nil}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}, nil}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}, nil}
}
