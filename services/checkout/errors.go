package checkout

import "net/http"

// Error is a checkout failure with the HTTP status it maps to at the boundary.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func validationError(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func conflictError(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// ErrSessionNotFound covers both unknown and expired session ids; callers are
// not told which.
var ErrSessionNotFound = &Error{Status: http.StatusNotFound, Message: "checkout session not found"}
