package common

import (
	"errors"
	"fmt"
)

// Common sentinel errors used for classification with errors.Is.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrStorage      = errors.New("storage error")
)

// FetchError means the source page could not be retrieved: the domain is not
// on the allow-list, the request timed out, or the reader returned a bad
// status. It is surfaced to callers as-is and never retried by the core.
type FetchError struct {
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *FetchError) Unwrap() error { return e.Cause }

func NewFetchError(message string, cause error) *FetchError {
	return &FetchError{Message: message, Cause: cause}
}

// ExtractionError is the single error type callers see for every "could not
// produce a record" condition: quota exceeded, empty input, all providers
// failed, or an unusable model reply. Message is user-facing and must never
// leak raw model output.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string { return e.Message }

func (e *ExtractionError) Unwrap() error { return e.Cause }

func NewExtractionError(message string, cause error) *ExtractionError {
	return &ExtractionError{Message: message, Cause: cause}
}

// WrapError adds a call-site prefix while preserving the chain.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
