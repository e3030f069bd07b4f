// internal/util/errors.go
package util

import (
	"errors"
	"fmt"
	"net/http"
)

// Common application-specific errors.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrDuplicateEntry   = errors.New("duplicate entry") // e.g. creating a user with an existing userName
	ErrInvalidReference = errors.New("referenced resource does not exist")
	ErrInvalidInput     = errors.New("invalid input provided")
)

// IsError reports whether err matches the given sentinel error.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}

// RequestError is a validation or domain failure carrying the HTTP status
// code and the user-facing message to render. Anything that is not a
// RequestError (or one of the sentinel errors above) is treated as internal
// and never exposed to the caller.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// NewBadRequest builds a 400 RequestError with a formatted message.
func NewBadRequest(format string, args ...any) *RequestError {
	return &RequestError{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf(format, args...),
	}
}
