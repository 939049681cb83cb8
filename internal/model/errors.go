package model

import (
	"errors"
	"strings"
)

// Common errors used across the application
var (
	// Storage errors
	ErrStoreWrite = errors.New("failed to persist analytics entries")
)

// ValidationError reports every violated field of a write request in one
// error value
type ValidationError struct {
	Details []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// AsValidationError unwraps err as a *ValidationError if it is one
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
