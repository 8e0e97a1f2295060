package activities

import (
	"errors"
	"fmt"
)

// ErrUnreachable wraps every failure where the request never got a response.
var ErrUnreachable = errors.New("activities server unreachable")

// APIError is a non-2xx response from the activities server.
type APIError struct {
	StatusCode int
	// Detail is empty when the server did not send a string detail.
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("activities server responded with status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("activities server responded with status code: %d: %s", e.StatusCode, e.Detail)
}

// IsRejection reports whether err is an application-level rejection and returns it.
func IsRejection(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
