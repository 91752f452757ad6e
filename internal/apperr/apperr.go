// Package apperr defines the error type shared by all pulse packages.
package apperr

import "fmt"

// Error is an application error. Package-level sentinel values are declared
// with a Message (which may contain fmt verbs) and specialized at the call
// site with Fmt or Wrap. Specialized copies still match their sentinel
// through errors.Is.
type Error struct {
	Message string
	Cause   error

	base *Error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Fmt returns a copy of the error with its message verbs filled in.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
		base:    e.root(),
	}
}

// Wrap returns a copy of the error with an underlying cause attached.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		base:    e.root(),
	}
}

// WithMessage returns a new error that carries its own message but still
// matches the receiver through errors.Is.
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		Message: message,
		base:    e.root(),
	}
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

// Is reports whether target derives from the same sentinel value.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.root() == e.root()
}
