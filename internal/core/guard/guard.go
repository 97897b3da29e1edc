// Package guard holds the result type shared by the pure guard functions of
// the core packages. Guards evaluate preconditions without side effects; a
// denied result carries a sentinel cause so callers can branch with errors.Is.
package guard

import (
	"errors"
	"fmt"
)

// Denial causes. Every failed command maps to exactly one of these.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrNotFound          = errors.New("not found")
)

// Result represents the outcome of a guard evaluation.
type Result struct {
	Allowed bool
	Reason  string
	Cause   error
}

// Allow returns an allowed result.
func Allow() Result {
	return Result{Allowed: true}
}

// Deny returns a denied result with the given cause and a formatted reason.
func Deny(cause error, format string, args ...any) Result {
	return Result{
		Allowed: false,
		Reason:  fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Error converts the guard result to an error if not allowed.
// The returned error wraps Cause.
func (r Result) Error() error {
	if r.Allowed {
		return nil
	}
	if r.Cause == nil {
		return fmt.Errorf("%s", r.Reason)
	}
	return fmt.Errorf("%w: %s", r.Cause, r.Reason)
}
