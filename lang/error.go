package lang

import (
	"errors"
	"log/slog"
	"slices"
)

var (
	ErrUnrecognizedNode  = NewError("unrecognized node")
	ErrUnsupportedValue  = NewError("unsupported value")
	ErrMissingSink       = NewError("no output sink configured")
	ErrInvalidIdentifier = NewError("invalid identifier")
	ErrWriteOutput       = NewError("failed to write output")
)

// Error is an error that logs as a group of attributes. Sentinels are
// refined with [Error.With] and [Error.Wrap] and still match under
// [errors.Is].
type Error struct {
	msg   string
	err   error // cause
	attrs []slog.Attr
	base  *Error // nil for sentinels
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError returns the first *Error in err's chain, or err wrapped in a
// new Error without a message.
func WrapError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return &Error{err: err}
}

// Error joins the message and the wrapped cause with ": ", omitting
// whichever is empty.
func (e *Error) Error() string {
	switch {
	case e.err == nil:
		return e.msg
	case e.msg == "":
		return e.err.Error()
	default:
		return e.msg + ": " + e.err.Error()
	}
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from, so that
// errors refined with [Error.With] or [Error.Wrap] still match it.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || (e.base != nil && e.base == t)
}

// Attrs returns the structured logging attributes attached to e.
func (e *Error) Attrs() []slog.Attr { return e.attrs }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
		base:  e.root(),
	}
}

// With returns a copy of e carrying attrs in addition to its own.
func (e *Error) With(attrs ...slog.Attr) *Error {
	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: append(slices.Clip(e.attrs), attrs...),
		base:  e.root(),
	}
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}
