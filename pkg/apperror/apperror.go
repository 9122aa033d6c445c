package apperror

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Kind classifies an error so handlers can pick an HTTP status for it.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindUpstream
)

// Error carries a client-safe message plus an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the error's kind, defaulting to KindInternal for
// anything that did not come out of this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the client-safe message. Internal errors always map to
// a generic message so no persistence or network detail leaks out.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return "internal server error"
}

// FromBinding converts a gin binding failure into a validation error
// carrying the first failing field's message.
func FromBinding(err error) *Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return New(KindValidation, verrs[0].Error())
	}
	return New(KindValidation, err.Error())
}
