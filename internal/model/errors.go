package model

import (
	"errors"
	"net/http"
)

// ErrorKind classifies failures that surface to API callers.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindAuth
	KindForbidden
	KindNotFound
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// HTTPStatus maps a kind onto the response code. Conflicts are reported as
// 400, which is what registration clients already expect.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so callers can write
// errors.Is(err, model.ErrForbidden).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

// Kind-only targets for errors.Is.
var (
	ErrValidation = &Error{Kind: KindValidation}
	ErrAuth       = &Error{Kind: KindAuth}
	ErrForbidden  = &Error{Kind: KindForbidden}
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrConflict   = &Error{Kind: KindConflict}
)

func ValidationError(msg string) error { return &Error{Kind: KindValidation, Message: msg} }
func AuthError(msg string) error       { return &Error{Kind: KindAuth, Message: msg} }
func ForbiddenError(msg string) error  { return &Error{Kind: KindForbidden, Message: msg} }
func NotFoundError(msg string) error   { return &Error{Kind: KindNotFound, Message: msg} }
func ConflictError(msg string) error   { return &Error{Kind: KindConflict, Message: msg} }

// Wrap attaches a kind and public message to an underlying cause.
func Wrap(kind ErrorKind, msg string, err error) error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf returns KindInternal for anything that is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// PublicMessage is the text safe to return to a client.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal && e.Message != "" {
		return e.Message
	}
	return "internal error"
}
