// Package errors provides structured error handling for the application.
// Domain and use-case failures are returned as typed values; only
// infrastructure faults travel as wrapped driver errors.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies a failure kind with a stable machine-readable code.
type ErrorCode string

// Kind classifies an error for transport mapping at the HTTP edge.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindAuthorization
	KindAuthentication
	KindConflict
	KindInternal
)

// AppError is the single error carrier for domain and use-case failures.
// Instances declared as package-level vars act as identity singletons and
// are comparable with errors.Is.
type AppError struct {
	Code    ErrorCode
	Message string
	Kind    Kind
	Cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches any AppError carrying the same code, so wrapped copies still
// compare equal to the package-level singleton.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// WithCause returns a copy of the error annotated with its cause. The
// original singleton is never mutated.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

// StatusCode maps the error kind to an HTTP status code. The mapping lives
// here so handlers stay a thin pass-through.
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthorization:
		return http.StatusForbidden
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// New creates an application error of the given kind.
func New(code ErrorCode, kind Kind, message string) *AppError {
	return &AppError{Code: code, Message: message, Kind: kind}
}

// NewValidation creates a validation failure.
func NewValidation(code ErrorCode, message string) *AppError {
	return New(code, KindValidation, message)
}

// NewNotFound creates a not-found failure.
func NewNotFound(code ErrorCode, message string) *AppError {
	return New(code, KindNotFound, message)
}

// NewAuthorization creates an authorization failure.
func NewAuthorization(code ErrorCode, message string) *AppError {
	return New(code, KindAuthorization, message)
}

// NewAuthentication creates an authentication failure.
func NewAuthentication(code ErrorCode, message string) *AppError {
	return New(code, KindAuthentication, message)
}

// NewConflict creates a conflict failure.
func NewConflict(code ErrorCode, message string) *AppError {
	return New(code, KindConflict, message)
}

// NewInternal wraps an infrastructure fault. The cause is preserved for
// logging but never serialized to clients.
func NewInternal(operation string, cause error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: fmt.Sprintf("failed to %s", operation),
		Kind:    KindInternal,
		Cause:   cause,
	}
}

// GetCode extracts the error code, defaulting to INTERNAL_ERROR for
// non-application errors.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "INTERNAL_ERROR"
}

// StatusOf resolves the HTTP status for any error value.
func StatusOf(err error) int {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.StatusCode()
	}
	return http.StatusInternalServerError
}
