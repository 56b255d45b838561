// Package apperr defines the structured error taxonomy surfaced by the
// service layer. Every failure a caller can act on carries a Kind; the HTTP
// layer maps kinds to status codes.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for callers.
type Kind string

const (
	KindValidation         Kind = "validation"
	KindReference          Kind = "reference"
	KindNotFound           Kind = "not_found"
	KindConflict           Kind = "conflict"
	KindUnauthenticated    Kind = "unauthenticated"
	KindUnauthorized       Kind = "unauthorized"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindUpstream           Kind = "upstream"
)

// Error is a structured failure with a kind and message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the kind of err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Validation reports a missing or malformed required field.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Reference reports a foreign key target that does not exist.
func Reference(format string, args ...any) *Error {
	return &Error{Kind: KindReference, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports an id that does not resolve to a row.
func NotFound(entity string, id int) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %d not found", entity, id)}
}

// Conflict reports a unique constraint violation.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Unauthenticated reports a missing, invalid or expired token.
func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

// Unauthorized reports a valid identity that does not own the resource.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// InvalidCredentials reports a login failure. The message deliberately does
// not distinguish unknown email from wrong password.
func InvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Message: "invalid credentials"}
}

// Upstream reports a third-party API failure.
func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}
