package parse

// Parser recognizes a prefix of the input at a cursor.
//
// On success it returns the parsed value and the cursor following the
// consumed text. On failure it returns the zero value, the cursor it was
// given, and a non-nil error (normally an [*Error]).
type Parser[T any] func(in Cursor) (T, Cursor, error)

// Run applies p to the start of input.
func Run[T any](p Parser[T], input string) (T, Cursor, error) {
	return p(NewCursor(input))
}

// Complete applies p to input and requires that all input is consumed.
// Leftover text is reported as an [*Error] wrapping [ErrTrailing].
func Complete[T any](p Parser[T], input string) (T, error) {
	val, rest, err := Run(p, input)
	if err != nil {
		var zero T

		return zero, err
	}

	if !rest.EOF() {
		var zero T

		return zero, fail(rest, "end of input", ErrTrailing)
	}

	return val, nil
}
