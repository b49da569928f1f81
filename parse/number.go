package parse

import (
	"errors"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// Digits matches a non-empty run of ASCII decimal digits.
func Digits() Parser[string] { return TakeWhile1("digits", isDigit) }

// Natural matches a run of decimal digits without sign and converts it to T.
// The run must fit T; larger values fail with [ErrOverflow].
func Natural[T constraints.Integer]() Parser[T] {
	return number[T](false)
}

// Uint matches a run of decimal digits as an unsigned integer.
func Uint[T constraints.Unsigned]() Parser[T] {
	return number[T](false)
}

// Int matches a decimal integer with an optional leading '+' or '-'.
func Int[T constraints.Signed]() Parser[T] {
	return number[T](true)
}

func number[T constraints.Integer](signed bool) Parser[T] {
	var zero T

	bits := int(unsafe.Sizeof(zero)) * 8
	unsigned := ^zero > 0
	digits := Digits()

	label := "integer"
	if signed {
		label = "signed integer"
	}

	return func(in Cursor) (T, Cursor, error) {
		start := in

		if signed {
			if _, after, err := OneOf("+-")(in); err == nil {
				in = after
			}
		}

		_, in, err := digits(in)
		if err != nil {
			return 0, start, fail(start, label, ErrNoMatch)
		}

		text := in.Consumed(start)

		var val T

		if unsigned {
			var u uint64

			u, err = strconv.ParseUint(text, 10, bits)
			val = T(u)
		} else {
			var s int64

			s, err = strconv.ParseInt(text, 10, bits)
			val = T(s)
		}

		switch {
		case errors.Is(err, strconv.ErrRange):
			return 0, start, fail(start, label, ErrOverflow)
		case err != nil:
			return 0, start, fail(start, label, err)
		}

		return val, in, nil
	}
}
