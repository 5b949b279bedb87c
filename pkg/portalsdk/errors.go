package portalsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/educonnect/portal/pkg/httpx"
)

// API error codes returned in the error envelope.
const (
	ErrorCodeUnauthenticated      = "unauthenticated"
	ErrorCodeForbidden            = "forbidden"
	ErrorCodeNotFound             = "not_found"
	ErrorCodeInvalidInput         = "invalid_input"
	ErrorCodeInvalidState         = "invalid_state"
	ErrorCodeInvalidOrExpiredCode = "invalid_or_expired_code"
	ErrorCodeRateLimitExceeded    = "rate_limit_exceeded"
	ErrorCodeServerError          = "server_error"
)

// APIError is the error half of the response envelope. It implements the
// error interface and is used both by the server (to write HTTP responses)
// and by the SDK client (to surface failures to callers).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	Success bool   `json:"success"`
	Code    string `json:"error"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithMessage returns a copy of the error with a more specific message.
func (e *APIError) WithMessage(message string) *APIError {
	clone := *e
	clone.Message = message
	return &clone
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

var (
	// ErrUnauthenticated is returned when no valid session token accompanies
	// the request.
	ErrUnauthenticated = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeUnauthenticated,
		Message:    "authentication required",
	}

	// ErrForbidden is returned when the caller's role does not permit the
	// operation.
	ErrForbidden = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeForbidden,
		Message:    "insufficient role",
	}

	// ErrNotFound is returned when the resource does not exist or belongs to
	// another user.
	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "resource not found",
	}

	// ErrInvalidInput is returned when the request body is malformed or fails
	// validation.
	ErrInvalidInput = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidInput,
		Message:    "the request is malformed or missing required fields",
	}

	// ErrInvalidState is returned when the resource's lifecycle state forbids
	// the operation, e.g. editing a non-draft solution.
	ErrInvalidState = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeInvalidState,
		Message:    "the resource state does not permit this operation",
	}

	// ErrInvalidOrExpiredCode is returned when OTP verification fails.
	ErrInvalidOrExpiredCode = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidOrExpiredCode,
		Message:    "invalid or expired verification code",
	}

	// ErrRateLimitExceeded is returned when the caller exceeds a rate limit.
	ErrRateLimitExceeded = &APIError{
		StatusCode: http.StatusTooManyRequests,
		Code:       ErrorCodeRateLimitExceeded,
		Message:    "too many requests, please try again later",
	}

	// ErrServerError is returned for unexpected internal failures.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "an unexpected error occurred",
	}
)
