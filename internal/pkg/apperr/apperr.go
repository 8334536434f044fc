// Package apperr defines the error taxonomy shared by every domain package.
// Domain packages declare sentinel errors from these kinds in their errors.go;
// the HTTP layer maps kinds to status codes.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindResource
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindResource:
		return "resource"
	default:
		return "internal"
	}
}

// Error is a domain error with a machine readable code and a message that is
// safe to show to the caller.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches errors of the same kind and code, so a wrapped copy of a
// sentinel still satisfies errors.Is against the sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) *Error {
	return New(KindValidation, code, message)
}

func Authentication(code, message string) *Error {
	return New(KindAuthentication, code, message)
}

func Authorization(code, message string) *Error {
	return New(KindAuthorization, code, message)
}

func NotFound(code, message string) *Error {
	return New(KindNotFound, code, message)
}

func Resource(code, message string) *Error {
	return New(KindResource, code, message)
}

// Wrap returns a copy of sentinel carrying cause.
func Wrap(sentinel *Error, cause error) *Error {
	cp := *sentinel
	cp.Err = cause
	return &cp
}

// WithMessage returns a copy of sentinel with a more specific message.
func WithMessage(sentinel *Error, message string) *Error {
	cp := *sentinel
	cp.Message = message
	return &cp
}

// WithDetails returns a copy of sentinel with per-field details attached.
func WithDetails(sentinel *Error, details map[string]string) *Error {
	cp := *sentinel
	cp.Details = details
	return &cp
}

// KindOf reports the kind of err, KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
