package errs

import (
	"errors"
	"fmt"
)

// Code classifies an error for transport mapping, shared across layers.
type Code string

const (
	CodeInvalid      Code = "INVALID"
	CodeNotFound     Code = "NOT_FOUND"
	CodeConflict     Code = "CONFLICT"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeUnavailable  Code = "UNAVAILABLE"
)

// Error is a domain-level error with a semantic code.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Common errors shared by the store, reconciler and sweeper.
var (
	ErrUserNotFound       = New(CodeNotFound, "user not found")
	ErrInvalidPrincipal   = New(CodeInvalid, "principal is missing an external id")
	ErrDuplicateUser      = New(CodeConflict, "user already exists for external id")
	ErrStoreNotConfigured = New(CodeUnavailable, "user store is not configured")
	ErrUnauthorized       = New(CodeUnauthorized, "unauthorized")
)

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
