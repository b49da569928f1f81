package parse

import "sync"

// Map applies p and transforms its value with fn.
func Map[T, U any](p Parser[T], fn func(T) U) Parser[U] {
	return func(in Cursor) (U, Cursor, error) {
		v, rest, err := p(in)
		if err != nil {
			var zero U

			return zero, in, err
		}

		return fn(v), rest, nil
	}
}

// MapErr applies p and transforms its value with fn.
// An error from fn becomes a failure located where p started.
func MapErr[T, U any](p Parser[T], fn func(T) (U, error)) Parser[U] {
	return func(in Cursor) (U, Cursor, error) {
		var zero U

		v, rest, err := p(in)
		if err != nil {
			return zero, in, err
		}

		u, err := fn(v)
		if err != nil {
			return zero, in, asError(in, err)
		}

		return u, rest, nil
	}
}

// Value applies p and replaces its value with v.
func Value[T, U any](v U, p Parser[T]) Parser[U] {
	return Map(p, func(T) U { return v })
}

// Recognize applies p and returns the text it consumed.
func Recognize[T any](p Parser[T]) Parser[string] {
	return func(in Cursor) (string, Cursor, error) {
		_, rest, err := p(in)
		if err != nil {
			return "", in, err
		}

		return rest.Consumed(in), rest, nil
	}
}

// Build recognizes the input with shape and constructs a T from the
// recognized value.
//
// Grammars typically describe the layout of a record with [Tuple2] …
// [Tuple5] and hand the resulting tuple to build, keeping recognition and
// construction separate.
func Build[S, T any](shape Parser[S], build func(S) (T, error)) Parser[T] {
	return MapErr(shape, build)
}

// Lazy defers obtaining a parser until it is first applied.
// It allows grammars to refer to rules that are defined later, which is
// needed for recursive rules.
func Lazy[T any](get func() Parser[T]) Parser[T] {
	p := sync.OnceValue(get)

	return func(in Cursor) (T, Cursor, error) {
		return p()(in)
	}
}

// Cut makes every failure of p fatal, committing the enclosing [Alt] or
// repetition to the current branch.
func Cut[T any](p Parser[T]) Parser[T] {
	return func(in Cursor) (T, Cursor, error) {
		v, rest, err := p(in)
		if err != nil {
			pe := *asError(in, err)
			pe.fatal = true

			return v, in, &pe
		}

		return v, rest, nil
	}
}

// Named replaces the expected label of p's failures with label, unless the
// failure happened past the point where p started.
func Named[T any](label string, p Parser[T]) Parser[T] {
	return func(in Cursor) (T, Cursor, error) {
		v, rest, err := p(in)
		if err != nil {
			pe := *asError(in, err)
			if pe.Offset() == in.Offset() {
				pe.Expected = label
			}

			return v, in, &pe
		}

		return v, rest, nil
	}
}
