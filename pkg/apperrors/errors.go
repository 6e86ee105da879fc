package apperrors

import (
	"errors"
	"net/http"
)

// Kind is the closed set of failure classes the controllers know how to map
// onto HTTP statuses. Every error that reaches a controller boundary carries
// one of these.
type Kind int

const (
	KindInternal   Kind = iota // unexpected
	KindValidation             // missing/invalid request fields
	KindNotFound               // missing resource
	KindAuth                   // missing/invalid/expired token
	KindForbidden              // resource ownership mismatch
	KindConflict               // duplicate resource
	KindUpstream               // external service failure
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func Validation(msg string) *Error { return New(KindValidation, msg) }
func NotFound(msg string) *Error   { return New(KindNotFound, msg) }
func Auth(msg string) *Error       { return New(KindAuth, msg) }
func Forbidden(msg string) *Error  { return New(KindForbidden, msg) }
func Conflict(msg string) *Error   { return New(KindConflict, msg) }

func Upstream(msg string, err error) *Error { return Wrap(KindUpstream, msg, err) }

// KindOf returns the kind carried by err, or KindInternal for anything else.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Status maps an error to its HTTP status. Conflict answers 400, not 409,
// matching the duplicate-resource behavior of the rest of the API.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
