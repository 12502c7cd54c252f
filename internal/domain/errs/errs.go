// Package errs holds the error taxonomy shared by all domain packages.
// Callers classify failures with errors.Is against the sentinels below.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed or out-of-range input. Caller's fault,
	// never retried.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a reference to an absent record.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientStock marks a fuel draw larger than the tank balance.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrStorageUnavailable marks an unreachable backing store. The caller
	// may retry with backoff; the core never retries on its own.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Storage wraps a backend error so both the taxonomy sentinel and the
// original error survive errors.Is / errors.As.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}
