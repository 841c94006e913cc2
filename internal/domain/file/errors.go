package file

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("file not found")
	ErrPayloadTooLarge    = errors.New("file exceeds the maximum allowed size")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError reports a single rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
