// Package errors provides standardized domain errors with codes for the BookClub client.
//
// Every operation in the SDK reports failure through a *Error so callers can
// branch on a machine-readable code instead of string matching:
//
//	// In containers - return typed errors
//	if userID == "" {
//	    return errors.Unauthorized("you must be logged in to vote")
//	}
//
//	// In callers - check with errors.Is
//	if errors.Is(err, errors.ErrUnavailable) {
//	    // backend unreachable, keep cached state
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the client.
const (
	// CodeUnavailable means the transport failed before a response arrived.
	CodeUnavailable Code = "UNAVAILABLE"
	// CodeBadResponse means the backend answered with something the client
	// could not decode, or an acknowledgment missing required fields.
	CodeBadResponse Code = "BAD_RESPONSE"
	// CodeRemote carries an error message reported by the backend itself.
	CodeRemote       Code = "REMOTE"
	CodeNotFound     Code = "NOT_FOUND"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeValidation   Code = "VALIDATION"
	CodeRateLimited  Code = "RATE_LIMITED"
	CodeNoSession    Code = "NO_SESSION"
)

// FromStatus maps an HTTP response status to the closest error code.
func FromStatus(status int) Code {
	switch status {
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return CodeUnauthorized
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return CodeValidation
	case http.StatusTooManyRequests:
		return CodeRateLimited
	default:
		return CodeRemote
	}
}

// Error is a domain error with a code, message, and optional wrapped cause.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	cause   error  // unexported, for wrapping
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		cause:   err,
	}
}

// Sentinel errors for use with errors.Is().
var (
	ErrUnavailable  = &Error{Code: CodeUnavailable, Message: "backend unavailable"}
	ErrBadResponse  = &Error{Code: CodeBadResponse, Message: "malformed response"}
	ErrRemote       = &Error{Code: CodeRemote, Message: "backend error"}
	ErrNotFound     = &Error{Code: CodeNotFound, Message: "not found"}
	ErrUnauthorized = &Error{Code: CodeUnauthorized, Message: "unauthorized"}
	ErrValidation   = &Error{Code: CodeValidation, Message: "validation error"}
	ErrRateLimited  = &Error{Code: CodeRateLimited, Message: "rate limited"}
	ErrNoSession    = &Error{Code: CodeNoSession, Message: "no stored session"}
)

// Constructor functions for creating errors with custom messages.

// Unavailable creates a transport-failure error.
func Unavailable(msg string) *Error {
	return &Error{Code: CodeUnavailable, Message: msg}
}

// BadResponse creates a malformed-response error.
func BadResponse(msg string) *Error {
	return &Error{Code: CodeBadResponse, Message: msg}
}

// BadResponsef creates a malformed-response error with formatted message.
func BadResponsef(format string, args ...any) *Error {
	return &Error{Code: CodeBadResponse, Message: fmt.Sprintf(format, args...)}
}

// Remote creates an error carrying a backend-supplied message.
func Remote(msg string) *Error {
	return &Error{Code: CodeRemote, Message: msg}
}

// NotFound creates a not found error.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// NotFoundf creates a not found error with formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized creates an unauthorized error.
func Unauthorized(msg string) *Error {
	return &Error{Code: CodeUnauthorized, Message: msg}
}

// Validation creates a validation error.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// Validationf creates a validation error with formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// NoSession creates a missing-stored-session error.
func NoSession(msg string) *Error {
	return &Error{Code: CodeNoSession, Message: msg}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, cause: err}
}

// Wrapf wraps an error with a code and formatted message.
func Wrapf(err error, code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), cause: err}
}
