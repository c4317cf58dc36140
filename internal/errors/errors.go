package errors

import (
	"errors"
	"fmt"
)

// Common error types for the practice server
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoToken            = errors.New("no auth token found")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenMalformed     = errors.New("malformed token")
	ErrSignatureInvalid   = errors.New("invalid token signature")

	// Authorization errors
	ErrForbidden = errors.New("forbidden")

	// Resource errors
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")

	// Store errors
	ErrStoreUnavailable = errors.New("store unavailable")

	// General errors
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
