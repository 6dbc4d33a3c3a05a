package utils

import (
	"errors"
	"fmt"
	"strings"
)

var ErrorRecordNotFound = errors.New("record not found")

// ErrorProtectedRecord is returned when a delete is blocked by records that
// still reference the target.
var ErrorProtectedRecord = errors.New("record is referenced by other records")

// ValidationError is a client-caused rule violation. Code is a stable
// machine-readable identifier, Message is for humans. Surfaced as 400,
// never retried.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(code string, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsDuplicate reports whether the violation is a uniqueness conflict, which
// surfaces as 409 rather than 400.
func (e *ValidationError) IsDuplicate() bool {
	return strings.HasPrefix(e.Code, "duplicate_")
}

// IsValidationError reports whether err (or anything it wraps) is a
// ValidationError, and returns it.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ReactorError marks a failure inside a derivation reactor: the triggering
// write was valid but a data-integrity precondition for the derived write did
// not hold (e.g. a treatment completed with no recovery on file). Surfaced as
// an internal error and logged for manual reconciliation, never silently
// swallowed.
type ReactorError struct {
	Reactor string
	Err     error
}

func (e *ReactorError) Error() string {
	return fmt.Sprintf("%s reactor: %v", e.Reactor, e.Err)
}

func (e *ReactorError) Unwrap() error {
	return e.Err
}

func NewReactorError(reactor string, err error) *ReactorError {
	return &ReactorError{Reactor: reactor, Err: err}
}

func IsReactorError(err error) (*ReactorError, bool) {
	var re *ReactorError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
