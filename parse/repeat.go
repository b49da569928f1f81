package parse

// Many0 applies p until it fails and collects the results in order.
// It always succeeds, returning an empty slice and the original cursor when
// p does not match at all.
//
// A success of p that consumes no input would repeat forever, so it is
// reported as a fatal failure wrapping [ErrNoProgress].
func Many0[T any](p Parser[T]) Parser[[]T] {
	return func(in Cursor) ([]T, Cursor, error) {
		out, rest, err := repeat(p, in, 0)
		if err != nil {
			return nil, in, err
		}

		return out, rest, nil
	}
}

// Many1 is like [Many0] but requires at least one match.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return func(in Cursor) ([]T, Cursor, error) {
		out, rest, err := repeat(p, in, 1)
		if err != nil {
			return nil, in, err
		}

		return out, rest, nil
	}
}

// repeat applies p at least atLeast times and then as long as it matches.
func repeat[T any](p Parser[T], in Cursor, atLeast int) ([]T, Cursor, error) {
	var out []T

	at := in

	for {
		v, rest, err := p(at)
		if err != nil {
			if IsFatal(err) || len(out) < atLeast {
				return nil, in, err
			}

			if out == nil {
				out = []T{}
			}

			return out, at, nil
		}

		if rest.Offset() <= at.Offset() {
			return nil, in, noProgress(at)
		}

		out = append(out, v)
		at = rest
	}
}

func noProgress(at Cursor) *Error {
	e := fail(at, "", ErrNoProgress)
	e.fatal = true

	return e
}

// SeparatedList0 matches zero or more p separated by sep.
// A trailing separator is not consumed.
func SeparatedList0[T, S any](sep Parser[S], p Parser[T]) Parser[[]T] {
	list := SeparatedList1(sep, p)

	return func(in Cursor) ([]T, Cursor, error) {
		out, rest, err := list(in)
		if err != nil {
			if IsFatal(err) {
				return nil, in, err
			}

			return []T{}, in, nil
		}

		return out, rest, nil
	}
}

// SeparatedList1 matches one or more p separated by sep.
// A trailing separator is not consumed.
func SeparatedList1[T, S any](sep Parser[S], p Parser[T]) Parser[[]T] {
	next := Preceded(sep, p)

	return func(in Cursor) ([]T, Cursor, error) {
		first, at, err := p(in)
		if err != nil {
			return nil, in, err
		}

		out := []T{first}

		for {
			v, rest, err := next(at)
			if err != nil {
				if IsFatal(err) {
					return nil, in, err
				}

				return out, at, nil
			}

			if rest.Offset() <= at.Offset() {
				return nil, in, noProgress(at)
			}

			out = append(out, v)
			at = rest
		}
	}
}

// Count applies p exactly n times.
// A negative n is a grammar error and fails fatally with [ErrCount].
func Count[T any](n int, p Parser[T]) Parser[[]T] {
	return func(in Cursor) ([]T, Cursor, error) {
		if n < 0 {
			e := fail(in, "", ErrCount)
			e.fatal = true

			return nil, in, e
		}

		out := make([]T, n)
		at := in

		for i := range n {
			if err := step(p, &at, &out[i]); err != nil {
				return nil, in, err
			}
		}

		return out, at, nil
	}
}

// Lines matches one p per line. Lines are separated by [LineEnding], and
// a final line ending after the last p is consumed if present.
func Lines[T any](p Parser[T]) Parser[[]T] {
	return Terminated(SeparatedList1(LineEnding(), p), Opt(LineEnding()))
}
