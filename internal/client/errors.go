package client

import (
	"errors"
	"fmt"
)

// GenerateFailedMessage is the only failure text shown to users.
const GenerateFailedMessage = "Failed to generate bracket. Please try again."

// ErrGenerateFailed is wrapped by every error Fetch returns.
var ErrGenerateFailed = errors.New("failed to generate bracket")

// StatusError reports a non-2xx response from the service.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("bracket service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("bracket service returned status %d: %s", e.StatusCode, e.Body)
}

// fetchError carries the underlying cause while matching ErrGenerateFailed.
type fetchError struct {
	cause error
}

func (e *fetchError) Error() string {
	return ErrGenerateFailed.Error() + ": " + e.cause.Error()
}

func (e *fetchError) Unwrap() []error {
	return []error{ErrGenerateFailed, e.cause}
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return &fetchError{cause: err}
}

// UserMessage collapses any fetch error into the fixed user-facing text.
// Transport failures, timeouts and server errors are not distinguished.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return GenerateFailedMessage
}
