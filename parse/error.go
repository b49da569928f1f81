package parse

import (
	"errors"
	"log/slog"
	"slices"
	"strings"
)

// Causes of parse failures, testable with [errors.Is].
var (
	ErrNoMatch    = errors.New("no match")
	ErrOverflow   = errors.New("number out of range")
	ErrNoProgress = errors.New("repetition consumed no input")
	ErrTrailing   = errors.New("unconsumed input")
	ErrCount      = errors.New("negative repetition count")
)

// Error describes why a parser failed and where.
//
// The line and column of a failure are computed only when requested, since
// most failures are recovered from by [Alt] or ended repetitions.
type Error struct {
	Expected string
	Cause    error

	at    Cursor
	fatal bool
}

// fail returns a non-fatal failure located at in.
func fail(in Cursor, expected string, cause error) *Error {
	return &Error{
		Expected: expected,
		Cause:    cause,
		at:       in,
	}
}

// Offset returns the byte offset of the failure.
func (e *Error) Offset() int { return e.at.Offset() }

// Position returns the location of the failure.
func (e *Error) Position() Position { return e.at.Position() }

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString("parse error at ")
	sb.WriteString(e.Position().String())

	if e.Expected != "" {
		sb.WriteString(": expected ")
		sb.WriteString(e.Expected)
	}

	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}

	return sb.String()
}

// Unwrap returns the cause of the failure.
func (e *Error) Unwrap() error { return e.Cause }

// Fatal reports whether the failure must not be recovered from by trying
// alternatives or ending a repetition.
func (e *Error) Fatal() bool { return e.fatal }

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	pos := e.Position()
	attrs := []slog.Attr{
		slog.Int("line", pos.Line),
		slog.Int("column", pos.Column),
	}

	if e.Expected != "" {
		attrs = append(attrs, slog.String("expected", e.Expected))
	}

	if e.Cause != nil {
		attrs = append(attrs, slog.String("cause", e.Cause.Error()))
	}

	if e.fatal {
		attrs = append(attrs, slog.Bool("fatal", true))
	}

	return slog.GroupValue(attrs...)
}

// IsFatal reports whether err is a fatal parse failure.
func IsFatal(err error) bool {
	var pe *Error

	return errors.As(err, &pe) && pe.fatal
}

// asError converts any failure into an *Error located at in.
// Errors that are already *Error keep their own position.
func asError(in Cursor, err error) *Error {
	var pe *Error
	if errors.As(err, &pe) {
		return pe
	}

	return fail(in, "", err)
}

// furthest picks the failure that got furthest into the input, merging the
// expected labels of failures at the same offset.
func furthest(a, b *Error) *Error {
	switch {
	case a == nil:
		return b
	case b == nil, a.Offset() > b.Offset():
		return a
	case b.Offset() > a.Offset():
		return b
	}

	merged := *a
	merged.Expected = mergeExpected(a.Expected, b.Expected)

	return &merged
}

// expectedSep joins the labels of failures at the same offset.
const expectedSep = " or "

// mergeExpected appends the labels of b to a, skipping labels a already
// lists.
func mergeExpected(a, b string) string {
	if a == "" {
		return b
	}

	if b == "" {
		return a
	}

	labels := strings.Split(a, expectedSep)

	for _, label := range strings.Split(b, expectedSep) {
		if !slices.Contains(labels, label) {
			labels = append(labels, label)
		}
	}

	return strings.Join(labels, expectedSep)
}
