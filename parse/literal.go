package parse

import (
	"strconv"
	"strings"
	"unicode"
)

// Tag matches the literal s.
func Tag(s string) Parser[string] {
	expected := strconv.Quote(s)

	return func(in Cursor) (string, Cursor, error) {
		if !strings.HasPrefix(in.Rest(), s) {
			return "", in, fail(in, expected, ErrNoMatch)
		}

		return s, in.Advance(len(s)), nil
	}
}

// Char matches the single rune r.
func Char(r rune) Parser[rune] {
	return Satisfy(strconv.QuoteRune(r), func(c rune) bool { return c == r })
}

// OneOf matches any single rune contained in set.
func OneOf(set string) Parser[rune] {
	return Satisfy("one of "+strconv.Quote(set), func(c rune) bool {
		return strings.ContainsRune(set, c)
	})
}

// NoneOf matches any single rune not contained in set.
func NoneOf(set string) Parser[rune] {
	return Satisfy("none of "+strconv.Quote(set), func(c rune) bool {
		return !strings.ContainsRune(set, c)
	})
}

// AnyChar matches any single rune.
func AnyChar() Parser[rune] {
	return Satisfy("any character", func(rune) bool { return true })
}

// Satisfy matches a single rune for which pred returns true.
// The label describes the rune in failure messages.
func Satisfy(label string, pred func(rune) bool) Parser[rune] {
	return func(in Cursor) (rune, Cursor, error) {
		r, size := in.peek()
		if size == 0 || !pred(r) {
			return 0, in, fail(in, label, ErrNoMatch)
		}

		return r, in.Advance(size), nil
	}
}

// TakeWhile0 matches the longest, possibly empty, run of runes for which
// pred returns true.
func TakeWhile0(pred func(rune) bool) Parser[string] {
	return func(in Cursor) (string, Cursor, error) {
		rest := in.Rest()

		n := strings.IndexFunc(rest, func(r rune) bool { return !pred(r) })
		if n < 0 {
			n = len(rest)
		}

		return rest[:n], in.Advance(n), nil
	}
}

// TakeWhile1 is like [TakeWhile0] but requires at least one rune.
func TakeWhile1(label string, pred func(rune) bool) Parser[string] {
	take := TakeWhile0(pred)

	return func(in Cursor) (string, Cursor, error) {
		s, rest, _ := take(in)
		if s == "" {
			return "", in, fail(in, label, ErrNoMatch)
		}

		return s, rest, nil
	}
}

func isHspace(r rune) bool { return r == ' ' || r == '\t' }

// Space0 matches optional spaces and tabs.
func Space0() Parser[string] { return TakeWhile0(isHspace) }

// Space1 matches one or more spaces and tabs.
func Space1() Parser[string] { return TakeWhile1("whitespace", isHspace) }

// Multispace0 matches optional whitespace, including line breaks.
func Multispace0() Parser[string] { return TakeWhile0(unicode.IsSpace) }

// LineEnding matches "\n" or "\r\n".
func LineEnding() Parser[string] {
	return Named("line ending", Alt(Tag("\n"), Tag("\r\n")))
}

// EOF succeeds only at the end of the input.
func EOF() Parser[struct{}] {
	return func(in Cursor) (struct{}, Cursor, error) {
		if !in.EOF() {
			return struct{}{}, in, fail(in, "end of input", ErrNoMatch)
		}

		return struct{}{}, in, nil
	}
}
