package parse

// T2 holds the results of [Tuple2].
type T2[A, B any] struct {
	V1 A
	V2 B
}

// T3 holds the results of [Tuple3].
type T3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// T4 holds the results of [Tuple4].
type T4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// T5 holds the results of [Tuple5].
type T5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

// step applies p at *at, advancing *at on success.
func step[T any](p Parser[T], at *Cursor, dst *T) error {
	v, rest, err := p(*at)
	if err != nil {
		return err
	}

	*at, *dst = rest, v

	return nil
}

// Tuple2 applies a then b.
func Tuple2[A, B any](a Parser[A], b Parser[B]) Parser[T2[A, B]] {
	return func(in Cursor) (t T2[A, B], _ Cursor, err error) {
		at := in

		if err = step(a, &at, &t.V1); err != nil {
			return T2[A, B]{}, in, err
		}

		if err = step(b, &at, &t.V2); err != nil {
			return T2[A, B]{}, in, err
		}

		return t, at, nil
	}
}

// Tuple3 applies a, b and c in order.
func Tuple3[A, B, C any](
	a Parser[A],
	b Parser[B],
	c Parser[C],
) Parser[T3[A, B, C]] {
	return func(in Cursor) (t T3[A, B, C], _ Cursor, err error) {
		at := in

		if err = step(a, &at, &t.V1); err != nil {
			return T3[A, B, C]{}, in, err
		}

		if err = step(b, &at, &t.V2); err != nil {
			return T3[A, B, C]{}, in, err
		}

		if err = step(c, &at, &t.V3); err != nil {
			return T3[A, B, C]{}, in, err
		}

		return t, at, nil
	}
}

// Tuple4 applies a, b, c and d in order.
func Tuple4[A, B, C, D any](
	a Parser[A],
	b Parser[B],
	c Parser[C],
	d Parser[D],
) Parser[T4[A, B, C, D]] {
	return func(in Cursor) (t T4[A, B, C, D], _ Cursor, err error) {
		at := in

		if err = step(a, &at, &t.V1); err != nil {
			return T4[A, B, C, D]{}, in, err
		}

		if err = step(b, &at, &t.V2); err != nil {
			return T4[A, B, C, D]{}, in, err
		}

		if err = step(c, &at, &t.V3); err != nil {
			return T4[A, B, C, D]{}, in, err
		}

		if err = step(d, &at, &t.V4); err != nil {
			return T4[A, B, C, D]{}, in, err
		}

		return t, at, nil
	}
}

// Tuple5 applies a, b, c, d and e in order.
func Tuple5[A, B, C, D, E any](
	a Parser[A],
	b Parser[B],
	c Parser[C],
	d Parser[D],
	e Parser[E],
) Parser[T5[A, B, C, D, E]] {
	return func(in Cursor) (t T5[A, B, C, D, E], _ Cursor, err error) {
		at := in

		if err = step(a, &at, &t.V1); err != nil {
			return T5[A, B, C, D, E]{}, in, err
		}

		if err = step(b, &at, &t.V2); err != nil {
			return T5[A, B, C, D, E]{}, in, err
		}

		if err = step(c, &at, &t.V3); err != nil {
			return T5[A, B, C, D, E]{}, in, err
		}

		if err = step(d, &at, &t.V4); err != nil {
			return T5[A, B, C, D, E]{}, in, err
		}

		if err = step(e, &at, &t.V5); err != nil {
			return T5[A, B, C, D, E]{}, in, err
		}

		return t, at, nil
	}
}

// Sequence applies each parser in order and collects the results.
func Sequence[T any](ps ...Parser[T]) Parser[[]T] {
	return func(in Cursor) ([]T, Cursor, error) {
		at := in
		out := make([]T, len(ps))

		for i, p := range ps {
			if err := step(p, &at, &out[i]); err != nil {
				return nil, in, err
			}
		}

		return out, at, nil
	}
}

// Pair is [Tuple2] under a shorter name.
func Pair[A, B any](a Parser[A], b Parser[B]) Parser[T2[A, B]] {
	return Tuple2(a, b)
}

// Preceded applies first and then p, keeping only p's result.
func Preceded[A, T any](first Parser[A], p Parser[T]) Parser[T] {
	return Map(Tuple2(first, p), func(t T2[A, T]) T { return t.V2 })
}

// Terminated applies p and then last, keeping only p's result.
func Terminated[T, B any](p Parser[T], last Parser[B]) Parser[T] {
	return Map(Tuple2(p, last), func(t T2[T, B]) T { return t.V1 })
}

// Delimited applies left, p and right, keeping only p's result.
func Delimited[A, T, B any](
	left Parser[A],
	p Parser[T],
	right Parser[B],
) Parser[T] {
	return Map(Tuple3(left, p, right), func(t T3[A, T, B]) T { return t.V2 })
}
