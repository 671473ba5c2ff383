// Package apperr defines the error taxonomy shared by services and
// controllers. Every error that crosses the service boundary is either an
// *Error or is treated as internal.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the caller.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindUnauthenticated
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// Error is a classified application error.
type Error struct {
	Kind    Kind
	Message string
	// Fields carries per-field messages for validation failures.
	Fields map[string]string
	err    error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.err }

// Validation reports malformed or out-of-range input.
func Validation(message string, fields map[string]string) error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// Field is shorthand for a single-field validation failure.
func Field(field, message string) error {
	return Validation("Validation failed", map[string]string{field: message})
}

// Conflict reports a uniqueness violation.
func Conflict(message string, cause error) error {
	return &Error{Kind: KindConflict, Message: message, err: cause}
}

// NotFound reports a missing referenced entity.
func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Unauthenticated reports a missing or invalid identity.
func Unauthenticated() error {
	return &Error{Kind: KindUnauthenticated, Message: "Unauthorized"}
}

// Forbidden reports an identity whose role does not cover the request.
// The message never says which check failed.
func Forbidden() error {
	return &Error{Kind: KindForbidden, Message: "Forbidden"}
}

// Internal wraps an infrastructure failure. The cause is kept for logs only.
func Internal(cause error) error {
	if cause == nil {
		cause = errors.New("unknown")
	}
	return &Error{Kind: KindInternal, Message: "Internal Server Error", err: cause}
}

// KindOf returns the Kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// FieldsOf returns the validation field map carried by err, if any.
func FieldsOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsConflict(err error) bool   { return KindOf(err) == KindConflict }
func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }

// IsAuth reports both unauthenticated and forbidden errors.
func IsAuth(err error) bool {
	k := KindOf(err)
	return k == KindUnauthenticated || k == KindForbidden
}
