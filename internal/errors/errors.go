package errors

import (
	"errors"
	"net/http"
)

// Kind classifies a domain error so the transport layer can map it to a
// status code without knowing about individual failures.
type Kind int

const (
	// KindInternal is an unexpected store or infrastructure failure.
	KindInternal Kind = iota
	// KindValidation is malformed or missing input.
	KindValidation
	// KindAuth is a missing, invalid or expired token, or bad credentials.
	KindAuth
	// KindForbidden means authenticated but not permitted for this role or ownership.
	KindForbidden
	// KindNotFound means a referenced entity is absent.
	KindNotFound
	// KindConflict is a uniqueness or duplicate violation.
	KindConflict
)

// Error is a domain error carrying a kind and a user-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Validation builds a KindValidation error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Auth builds a KindAuth error.
func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

// Forbidden builds a KindForbidden error.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NotFound builds a KindNotFound error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict builds a KindConflict error.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Internal builds a KindInternal error.
func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindInternal
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

var kindStatus = map[Kind]int{
	KindValidation: http.StatusBadRequest,
	KindAuth:       http.StatusUnauthorized,
	KindForbidden:  http.StatusForbidden,
	KindNotFound:   http.StatusNotFound,
	KindConflict:   http.StatusConflict,
	KindInternal:   http.StatusInternalServerError,
}

// MapErrorToHTTP maps a domain error to an HTTP error. Unclassified errors
// become a generic 500 so internal details never leak to the caller.
func MapErrorToHTTP(err error) *HTTPError {
	kind := KindOf(err)
	if kind == KindInternal {
		return &HTTPError{StatusCode: http.StatusInternalServerError, Message: "internal server error"}
	}
	return &HTTPError{StatusCode: kindStatus[kind], Message: err.Error()}
}
