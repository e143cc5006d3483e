// Package domainerrors defines the coded error values shared by services and
// the HTTP layer. Services wrap infrastructure errors into these, so handlers
// can map codes to HTTP statuses without inspecting storage internals.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	// CodeValidation marks structurally invalid input. Always recoverable by
	// the caller; never causes a partial write.
	CodeValidation Code = "validation"
	// CodeBadRequest marks malformed requests (bad JSON, missing parameters).
	CodeBadRequest Code = "bad_request"
	// CodeUnauthorized marks missing or invalid credentials.
	CodeUnauthorized Code = "unauthorized"
	// CodeNotFound marks a lookup miss that the caller asked about directly.
	CodeNotFound Code = "not_found"
	// CodeConflict marks a state conflict (duplicate, invalid transition).
	CodeConflict Code = "conflict"
	// CodeUnavailable marks transport or storage faults. Surfaced to users as
	// a retry-later condition.
	CodeUnavailable Code = "unavailable"
	// CodeInternal marks unexpected internal failures.
	CodeInternal Code = "internal"
)

// Error carries a code alongside a human-readable message and an optional
// wrapped cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a coded error with no underlying cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error, preserving the
// cause for errors.Is / errors.As chains.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ToHTTPStatus maps a code to its HTTP status. Unknown codes map to 500.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
