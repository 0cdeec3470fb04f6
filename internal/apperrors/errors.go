// Package apperrors defines the error taxonomy shared by repositories,
// services and handlers. Callers classify failures with errors.Is against
// the sentinels; the handler layer maps them to HTTP status codes.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks an id or email lookup miss.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks a rejected request (missing/invalid fields, or a
	// state conflict such as deleting a shelter that still has pets).
	ErrValidation = errors.New("validation failed")
	// ErrStorage marks an underlying persistence failure.
	ErrStorage = errors.New("storage failure")
	// ErrAuthentication marks a credential mismatch or missing account.
	ErrAuthentication = errors.New("invalid credentials")
)

// NotFound wraps ErrNotFound with context about what was looked up.
func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// Validation wraps ErrValidation with the rejected condition.
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

// Storage wraps a driver error in ErrStorage, keeping the cause in the chain.
func Storage(cause error, format string, args ...interface{}) error {
	return fmt.Errorf(format+": %v: %w", append(args, cause, ErrStorage)...)
}
