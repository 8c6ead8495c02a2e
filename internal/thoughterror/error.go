package thoughterror

import "net/http"

// An Error carries the HTTP outcome of a failed operation and the message
// rendered to the caller as `{"success":false,"message":...}`.
type Error struct {
	HTTPCode int    `json:"-"`
	Success  bool   `json:"success"`
	Message  string `json:"message"`
}

// StatusCode returns the HTTP status code.
func StatusCode(err error) int {
	if terr, ok := err.(*Error); ok {
		return terr.HTTPCode
	}
	return http.StatusInternalServerError
}

// New returns a new Error with the given code and message.
func New(code int, message string) *Error {
	return &Error{HTTPCode: code, Message: message}
}

// NewValidation returns the error used when a record's fields are rejected.
func NewValidation(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// NewInvalidReference returns the error used when an identifier does not
// match the store's key format.
func NewInvalidReference() *Error {
	return New(http.StatusBadRequest, "Invalid thought ID format")
}

// NewNotFound returns the error used when no record matches a well-formed identifier.
func NewNotFound() *Error {
	return New(http.StatusNotFound, "Thought not found")
}

// NewUnauthenticated returns the error used when no caller identity can be resolved.
func NewUnauthenticated() *Error {
	return New(http.StatusUnauthorized, "Unauthorized")
}

// Error implements error interface.
func (e *Error) Error() string {
	return e.Message
}
