package parse

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Cursor is an immutable view of the input remaining to be parsed.
//
// A Cursor is never modified in place. Operations that consume input return
// a new Cursor, so saving a Cursor in a variable is all that is needed to
// backtrack to it later.
type Cursor struct {
	src string
	off int
}

// NewCursor returns a Cursor positioned at the start of src.
func NewCursor(src string) Cursor {
	return Cursor{src: src}
}

// Rest returns the input that has not yet been consumed.
func (c Cursor) Rest() string { return c.src[c.off:] }

// Len returns the number of unconsumed bytes.
func (c Cursor) Len() int { return len(c.src) - c.off }

// EOF reports whether the whole input has been consumed.
func (c Cursor) EOF() bool { return c.off >= len(c.src) }

// Offset returns the byte offset of the first unconsumed byte.
func (c Cursor) Offset() int { return c.off }

// Source returns the complete input the cursor was created from.
func (c Cursor) Source() string { return c.src }

// Advance returns a cursor moved n bytes forward, clamped to the end of the
// input. Negative n is treated as zero.
func (c Cursor) Advance(n int) Cursor {
	if n <= 0 {
		return c
	}

	c.off = min(c.off+n, len(c.src))

	return c
}

// Consumed returns the text between from and c.
// It returns the empty string if from does not precede c in the same input.
func (c Cursor) Consumed(from Cursor) string {
	if from.src != c.src || from.off > c.off {
		return ""
	}

	return c.src[from.off:c.off]
}

// peek decodes the next rune without consuming it.
func (c Cursor) peek() (rune, int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}

	return utf8.DecodeRuneInString(c.src[c.off:])
}

// Position returns the human-readable location of the cursor.
func (c Cursor) Position() Position {
	consumed := c.src[:c.off]
	tail := consumed[strings.LastIndexByte(consumed, '\n')+1:]

	return Position{
		Offset: c.off,
		Line:   1 + strings.Count(consumed, "\n"),
		Column: 1 + utf8.RuneCountInString(tail),
	}
}

// String returns the cursor position followed by a short preview of the
// remaining input.
func (c Cursor) String() string {
	const preview = 16

	rest := c.Rest()
	if len(rest) > preview {
		rest = rest[:preview] + "…"
	}

	return c.Position().String() + " " + strconv.Quote(rest)
}

// Position is a location within the input.
// Line and Column are 1-based; Column counts runes.
type Position struct {
	Offset int `json:"offset" yaml:"offset"`
	Line   int `json:"line"   yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// String formats the position as "line:column".
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}
