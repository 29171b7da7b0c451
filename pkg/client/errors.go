package client

import (
	"errors"
	"fmt"
)

// HTTPError represents a non-2xx response from an upstream.
type HTTPError struct {
	Upstream   string
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Upstream == "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: HTTP %d: %s", e.Upstream, e.StatusCode, e.Message)
}

// IsStatus returns true if err (or any wrapped error) is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}
