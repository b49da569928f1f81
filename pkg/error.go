package pkg

import (
	"errors"
	"log/slog"
	"strings"
)

// Sentinel errors shared by every puzzle and command.
// Errors derived from them with [Error.Wrap] or [Error.With] still match
// with [errors.Is].
var (
	ErrReadInput       = NewError("failed to read input")
	ErrParseInput      = NewError("failed to parse input")
	ErrTrailingInput   = NewError("unconsumed input after parse")
	ErrInvalidPuzzleID = NewError("invalid puzzle identifier")
	ErrUnknownPuzzle   = NewError("unknown puzzle")
	ErrDuplicatePuzzle = NewError("puzzle already registered")
	ErrSolve           = NewError("failed to solve puzzle")
	ErrExpect          = NewError("invalid answer expectation")
	ErrAnswerMismatch  = NewError("answer does not satisfy expectation")
	ErrCheckFailed     = NewError("sample check failed")
	ErrLoadSamples     = NewError("failed to load samples")
	ErrWriteOutput     = NewError("failed to write output")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	kind  *Error      // Sentinel this error derives from
	msg   string      // Base message
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new sentinel Error with a message.
func NewError(msg string) *Error {
	e := &Error{msg: msg}
	e.kind = e

	return e
}

// WrapError converts a standard error into an Error.
// If err already is (or wraps) an Error, that Error is returned.
func WrapError(err error) *Error {
	var ee *Error
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether e derives from the same sentinel as target.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && e.kind != nil && e.kind == t.kind
}

// Attrs returns a copy of the structured logging attributes.
func (e *Error) Attrs() []slog.Attr {
	return append([]slog.Attr(nil), e.attrs...)
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		var lv slog.LogValuer
		if errors.As(e.err, &lv) {
			attrs = append(attrs, slog.Any("cause", lv))
		} else {
			attrs = append(attrs, slog.String("cause", e.err.Error()))
		}
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		kind:  e.kind,
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		kind:  e.kind,
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}
