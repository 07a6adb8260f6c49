package errors

import (
	"errors"
	"fmt"
)

// Common error types for the RF Online client
var (
	// Token errors
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Session errors
	ErrInvalidSession       = errors.New("invalid session")
	ErrNoSession            = errors.New("no session")
	ErrAuthenticationFailed = errors.New("authentication failed")

	// Authorization errors
	ErrAuthorizationDenied = errors.New("not authorized")

	// General errors
	ErrNotFound    = errors.New("not found")
	ErrInternal    = errors.New("internal error")
	ErrUnsupported = errors.New("unsupported operation")
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
