package errors

import "net/http"

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Fixed errors for the reservation endpoint. The config message is generic on
// purpose; the missing variable names only go to the server log.
var (
	ErrEmailNotConfigured = NewHTTPError(http.StatusInternalServerError, "Email not configured")
	ErrMethodNotAllowed   = NewHTTPError(http.StatusMethodNotAllowed, "Method not allowed")
)
