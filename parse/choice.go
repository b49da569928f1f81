package parse

// Alt tries each parser against the same cursor and returns the first
// success.
//
// Alternatives are tried strictly in order; there is no longest-match
// selection, so a literal that is a prefix of another must come after it.
// If every alternative fails, the failure that reached furthest into the
// input is returned. A fatal failure is returned immediately.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(in Cursor) (T, Cursor, error) {
		var best *Error

		for _, p := range ps {
			v, rest, err := p(in)
			if err == nil {
				return v, rest, nil
			}

			pe := asError(in, err)
			if pe.fatal {
				var zero T

				return zero, in, pe
			}

			best = furthest(best, pe)
		}

		if best == nil {
			best = fail(in, "", ErrNoMatch)
		}

		var zero T

		return zero, in, best
	}
}

// Opt applies p and returns its value, or the zero value without consuming
// input if p fails. Fatal failures are not suppressed.
func Opt[T any](p Parser[T]) Parser[T] {
	return func(in Cursor) (T, Cursor, error) {
		v, rest, err := p(in)
		if err != nil {
			if IsFatal(err) {
				return v, in, err
			}

			var zero T

			return zero, in, nil
		}

		return v, rest, nil
	}
}
