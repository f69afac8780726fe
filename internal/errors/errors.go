// Package errors provides the tagged error kinds surfaced by the book catalog
// and reading interval services.
//
// Services return *Error values; handlers map them to HTTP responses:
//
//	var domainErr *errors.Error
//	if errors.As(err, &domainErr) {
//	    respondWithError(w, domainErr.HTTPStatus(), domainErr)
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	Is = errors.Is
	As = errors.As
)

// Code is a machine-readable error kind.
type Code string

const (
	CodeNotFound     Code = "NOT_FOUND"
	CodeConflict     Code = "CONFLICT"
	CodeValidation   Code = "VALIDATION"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeForbidden    Code = "FORBIDDEN"
	CodeInternal     Code = "INTERNAL"
)

// HTTPStatus returns the status code a handler responds with for c.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeValidation:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error carrying the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func (e *Error) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// WithCause returns a copy of e wrapping err.
func (e *Error) WithCause(err error) *Error {
	return &Error{Code: e.Code, Message: e.Message, cause: err}
}

var ErrInternal = &Error{Code: CodeInternal, Message: "internal server error"}

func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Code: CodeConflict, Message: msg}
}

func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Code: CodeUnauthorized, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Code: CodeForbidden, Message: msg}
}

// Internal wraps err behind a generic message so store details never reach clients.
func Internal(err error) *Error {
	return ErrInternal.WithCause(err)
}
