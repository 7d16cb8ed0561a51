package errors

import (
	"errors"
	"fmt"
)

// Error taxonomy for the auth bridge. Every failure a user can hit maps to
// one of these; all are recoverable (request a new link, retry, contact
// support), none is fatal to the process.
var (
	// Session establishment errors
	ErrInvalidOrExpiredCode = errors.New("invalid or expired code")
	ErrVerificationFailed   = errors.New("verification failed")
	ErrNoSessionAvailable   = errors.New("no session available")

	// Password reset errors (local validation, no network call)
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password too short")

	// Transport / classification errors
	ErrNetwork     = errors.New("network error")
	ErrUnknownFlow = errors.New("unknown authentication flow")
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
