package parse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag(t *testing.T) {
	tests := map[string]struct {
		tag       string
		input     string
		result    string
		remaining string
		err       error
	}{
		"prefix": {
			tag:       "x",
			input:     "xyz",
			result:    "x",
			remaining: "yz",
		},
		"whole input": {
			tag:    "turn on",
			input:  "turn on",
			result: "turn on",
		},
		"empty literal": {
			tag:       "",
			input:     "abc",
			remaining: "abc",
		},
		"empty literal on empty input": {},
		"literal longer than input": {
			tag:       "abcd",
			input:     "abc",
			remaining: "abc",
			err:       ErrNoMatch,
		},
		"mismatch": {
			tag:       "x",
			input:     "yx",
			remaining: "yx",
			err:       ErrNoMatch,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			res, rest, err := Tag(test.tag)(NewCursor(test.input))
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, test.result, res, "Result")
			assert.Equal(t, test.remaining, rest.Rest(), "Remaining")
		})
	}
}

func TestTag_RoundTrip(t *testing.T) {
	for _, tc := range []struct{ lit, suffix string }{
		{"", ""},
		{"a", ""},
		{"", "rest"},
		{"héllo", " wörld"},
		{"3x", "4x5\n"},
	} {
		start := NewCursor(tc.lit + tc.suffix)

		_, rest, err := Tag(tc.lit)(start)
		require.NoError(t, err)
		assert.Equal(t, tc.suffix, rest.Rest())
		assert.Equal(t, tc.lit, rest.Consumed(start))
		assert.Equal(t, start.Rest(), rest.Consumed(start)+rest.Rest())
	}
}

func TestNatural(t *testing.T) {
	tests := map[string]struct {
		input     string
		result    int
		remaining string
		err       error
	}{
		"digits":           {input: "123", result: 123},
		"digits then text": {input: "42abc", result: 42, remaining: "abc"},
		"leading zeros":    {input: "007", result: 7},
		"no digits":        {err: ErrNoMatch},
		"letters":          {input: "abc", remaining: "abc", err: ErrNoMatch},
		"sign is not a digit": {
			input:     "-5",
			remaining: "-5",
			err:       ErrNoMatch,
		},
		"overflow": {
			input:     "9223372036854775808",
			remaining: "9223372036854775808",
			err:       ErrOverflow,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			res, rest, err := Natural[int]()(NewCursor(test.input))
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, test.result, res, "Result")
			assert.Equal(t, test.remaining, rest.Rest(), "Remaining")
		})
	}
}

func TestNumber_TypeRange(t *testing.T) {
	t.Run("int8 max", func(t *testing.T) {
		v, _, err := Natural[int8]()(NewCursor("127"))
		require.NoError(t, err)
		assert.Equal(t, int8(127), v)
	})

	t.Run("int8 overflow", func(t *testing.T) {
		_, rest, err := Natural[int8]()(NewCursor("128"))
		require.ErrorIs(t, err, ErrOverflow)
		assert.Equal(t, "128", rest.Rest())
	})

	t.Run("uint64 max", func(t *testing.T) {
		v, _, err := Uint[uint64]()(NewCursor("18446744073709551615"))
		require.NoError(t, err)
		assert.Equal(t, uint64(18446744073709551615), v)
	})

	t.Run("uint64 overflow", func(t *testing.T) {
		_, _, err := Uint[uint64]()(NewCursor("18446744073709551616"))
		require.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("uint16 overflow", func(t *testing.T) {
		_, _, err := Uint[uint16]()(NewCursor("65536"))
		require.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("signed min", func(t *testing.T) {
		v, _, err := Int[int8]()(NewCursor("-128"))
		require.NoError(t, err)
		assert.Equal(t, int8(-128), v)
	})

	t.Run("signed below min", func(t *testing.T) {
		_, _, err := Int[int8]()(NewCursor("-129"))
		require.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("explicit plus", func(t *testing.T) {
		v, rest, err := Int[int]()(NewCursor("+7,"))
		require.NoError(t, err)
		assert.Equal(t, 7, v)
		assert.Equal(t, ",", rest.Rest())
	})

	t.Run("sign without digits", func(t *testing.T) {
		_, rest, err := Int[int]()(NewCursor("-x"))
		require.ErrorIs(t, err, ErrNoMatch)
		assert.Equal(t, "-x", rest.Rest())
	})
}

func boxGrammar() Parser[T5[int, string, int, string, int]] {
	return Tuple5(
		Natural[int](), Tag("x"),
		Natural[int](), Tag("x"),
		Natural[int](),
	)
}

func TestTuple_EndToEnd(t *testing.T) {
	box, rest, err := Run(Terminated(boxGrammar(), LineEnding()), "3x4x5\n")
	require.NoError(t, err)

	assert.Equal(t, T5[int, string, int, string, int]{3, "x", 4, "x", 5}, box)
	assert.True(t, rest.EOF())
}

func TestTuple_FailureKeepsCursor(t *testing.T) {
	in := NewCursor("3x4y5")

	box, rest, err := boxGrammar()(in)
	require.ErrorIs(t, err, ErrNoMatch)

	assert.Zero(t, box)
	assert.Equal(t, in, rest)

	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Offset())
	assert.Equal(t, `"x"`, pe.Expected)
}

func TestSequence(t *testing.T) {
	out, rest, err := Sequence(Tag("a"), Tag("b"), Tag("c"))(NewCursor("abcd"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, out)
	assert.Equal(t, "d", rest.Rest())

	_, rest, err = Sequence(Tag("a"), Tag("c"))(NewCursor("abcd"))
	require.Error(t, err)
	assert.Equal(t, "abcd", rest.Rest())
}

func TestAlt(t *testing.T) {
	first := Value("first", Tag("a"))
	second := Value("second", Tag("a"))
	other := Value("other", Tag("b"))

	tests := map[string]struct {
		parser    Parser[string]
		input     string
		result    string
		remaining string
		err       error
	}{
		"first fails second succeeds": {
			parser:    Alt(other, first),
			input:     "a!",
			result:    "first",
			remaining: "!",
		},
		"both succeed first wins": {
			parser:    Alt(first, second),
			input:     "a",
			result:    "first",
			remaining: "",
		},
		"shorter prefix listed first wins": {
			parser:    Alt(Tag("turn"), Tag("turn on")),
			input:     "turn on",
			result:    "turn",
			remaining: " on",
		},
		"longer literal listed first": {
			parser: Alt(Tag("turn on"), Tag("turn")),
			input:  "turn on",
			result: "turn on",
		},
		"all fail": {
			parser:    Alt(first, other),
			input:     "c",
			remaining: "c",
			err:       ErrNoMatch,
		},
		"no alternatives": {
			parser:    Alt[string](),
			input:     "c",
			remaining: "c",
			err:       ErrNoMatch,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			res, rest, err := test.parser(NewCursor(test.input))
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, test.result, res, "Result")
			assert.Equal(t, test.remaining, rest.Rest(), "Remaining")
		})
	}
}

func TestAlt_ReportsFurthestFailure(t *testing.T) {
	ab := Recognize(Tuple2(Tag("a"), Tag("b")))

	_, _, err := Alt(ab, Tag("c"))(NewCursor("ax"))

	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Offset())
	assert.Equal(t, `"b"`, pe.Expected)
}

func TestAlt_MergesExpectedAtSameOffset(t *testing.T) {
	_, _, err := Alt(Tag("a"), Tag("b"))(NewCursor("c"))

	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, `"a" or "b"`, pe.Expected)
}

func TestAlt_MergedExpectedHasNoDuplicates(t *testing.T) {
	_, _, err := Alt(Tag("a"), Tag("b"), Tag("a"), Alt(Tag("b"), Tag("c")))(NewCursor("x"))

	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, `"a" or "b" or "c"`, pe.Expected)
}

func TestError_PositionOnDemand(t *testing.T) {
	_, err := Complete(Many0(OneOf("a\n")), "aa\naab")

	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 5, pe.Offset())
	assert.Equal(t, Position{Offset: 5, Line: 2, Column: 3}, pe.Position())
	assert.Contains(t, err.Error(), "2:3")
}

func TestOpt(t *testing.T) {
	v, rest, err := Opt(Natural[int]())(NewCursor("x"))
	require.NoError(t, err)
	assert.Zero(t, v)
	assert.Equal(t, "x", rest.Rest())

	v, rest, err = Opt(Natural[int]())(NewCursor("12x"))
	require.NoError(t, err)
	assert.Equal(t, 12, v)
	assert.Equal(t, "x", rest.Rest())
}

func TestMany0(t *testing.T) {
	t.Run("zero matches", func(t *testing.T) {
		in := NewCursor("bbb")

		out, rest, err := Many0(Char('a'))(in)
		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)
		assert.Equal(t, in, rest)
	})

	t.Run("several matches", func(t *testing.T) {
		out, rest, err := Many0(Char('a'))(NewCursor("aab"))
		require.NoError(t, err)
		assert.Equal(t, []rune{'a', 'a'}, out)
		assert.Equal(t, "b", rest.Rest())
	})

	t.Run("whole input", func(t *testing.T) {
		out, rest, err := Many0(Char('a'))(NewCursor("aaa"))
		require.NoError(t, err)
		assert.Len(t, out, 3)
		assert.True(t, rest.EOF())
	})

	t.Run("zero-width parser", func(t *testing.T) {
		in := NewCursor("abc")

		out, rest, err := Many0(Tag(""))(in)
		require.ErrorIs(t, err, ErrNoProgress)
		assert.True(t, IsFatal(err))
		assert.Nil(t, out)
		assert.Equal(t, in, rest)
	})
}

func TestMany1(t *testing.T) {
	_, rest, err := Many1(Char('a'))(NewCursor("b"))
	require.ErrorIs(t, err, ErrNoMatch)
	assert.Equal(t, "b", rest.Rest())

	out, rest, err := Many1(Char('a'))(NewCursor("ab"))
	require.NoError(t, err)
	assert.Equal(t, []rune{'a'}, out)
	assert.Equal(t, "b", rest.Rest())
}

func TestSeparatedList(t *testing.T) {
	list := SeparatedList1(Tag(", "), Natural[int]())

	out, rest, err := list(NewCursor("1, 2, 3, x"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, out)
	assert.Equal(t, ", x", rest.Rest())

	_, _, err = list(NewCursor("x"))
	require.ErrorIs(t, err, ErrNoMatch)

	out, rest, err = SeparatedList0(Tag(", "), Natural[int]())(NewCursor("x"))
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "x", rest.Rest())
}

func TestCount(t *testing.T) {
	out, rest, err := Count(3, Char('a'))(NewCursor("aaaa"))
	require.NoError(t, err)
	assert.Equal(t, []rune{'a', 'a', 'a'}, out)
	assert.Equal(t, "a", rest.Rest())

	_, rest, err = Count(3, Char('a'))(NewCursor("aab"))
	require.ErrorIs(t, err, ErrNoMatch)
	assert.Equal(t, "aab", rest.Rest())

	out, rest, err = Count(0, Char('a'))(NewCursor("aa"))
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "aa", rest.Rest())

	_, rest, err = Count(-1, Char('a'))(NewCursor("aa"))
	require.ErrorIs(t, err, ErrCount)
	assert.True(t, IsFatal(err))
	assert.Equal(t, "aa", rest.Rest())
}

func TestLines(t *testing.T) {
	tests := map[string]struct {
		input string
		want  []int
	}{
		"trailing newline":    {input: "1\n2\n3\n", want: []int{1, 2, 3}},
		"no trailing newline": {input: "1\n2", want: []int{1, 2}},
		"crlf":                {input: "1\r\n2\r\n", want: []int{1, 2}},
		"single line":         {input: "7", want: []int{7}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := Complete(Lines(Natural[int]()), test.input)
			require.NoError(t, err)
			assert.Equal(t, test.want, out)
		})
	}
}

func TestMapAndValue(t *testing.T) {
	double := Map(Natural[int](), func(n int) int { return n * 2 })

	v, _, err := double(NewCursor("21"))
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	b, rest, err := Value(true, Char('#'))(NewCursor("#."))
	require.NoError(t, err)
	assert.True(t, b)
	assert.Equal(t, ".", rest.Rest())
}

func TestBuild(t *testing.T) {
	type box struct{ l, w, h int }

	errDegenerate := errors.New("degenerate box")

	build := Build(boxGrammar(), func(dims T5[int, string, int, string, int]) (box, error) {
		if dims.V1 == 0 || dims.V3 == 0 || dims.V5 == 0 {
			return box{}, errDegenerate
		}

		return box{dims.V1, dims.V3, dims.V5}, nil
	})

	b, _, err := build(NewCursor("2x3x4"))
	require.NoError(t, err)
	assert.Equal(t, box{2, 3, 4}, b)

	in := NewCursor("2x0x4")

	_, rest, err := build(in)
	require.ErrorIs(t, err, errDegenerate)
	assert.Equal(t, in, rest)

	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 0, pe.Offset())
}

func TestRecognize(t *testing.T) {
	start := NewCursor("12x34 tail")

	text, rest, err := Recognize(Tuple3(Natural[int](), Tag("x"), Natural[int]()))(start)
	require.NoError(t, err)
	assert.Equal(t, "12x34", text)
	assert.Equal(t, start.Rest(), text+rest.Rest())
}

func TestLazy_Recursive(t *testing.T) {
	var nest Parser[int]

	nest = Alt(
		Map(
			Delimited(Char('('), Lazy(func() Parser[int] { return nest }), Char(')')),
			func(depth int) int { return depth + 1 },
		),
		Value(0, Tag("")),
	)

	depth, err := Complete(nest, "((()))")
	require.NoError(t, err)
	assert.Equal(t, 3, depth)

	_, err = Complete(nest, "(()")
	require.Error(t, err)
}

func TestCut(t *testing.T) {
	pair := Preceded(Char('<'), Char('>'))

	v, _, err := Alt(pair, AnyChar())(NewCursor("<x"))
	require.NoError(t, err)
	assert.Equal(t, '<', v)

	_, rest, err := Alt(Cut(pair), AnyChar())(NewCursor("<x"))
	require.ErrorIs(t, err, ErrNoMatch)
	assert.True(t, IsFatal(err))
	assert.Equal(t, "<x", rest.Rest())

	_, _, err = Many0(Cut(pair))(NewCursor("<><x"))
	assert.True(t, IsFatal(err))
}

func TestNamed(t *testing.T) {
	_, _, err := Named("box", boxGrammar())(NewCursor("y"))

	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "box", pe.Expected)

	_, _, err = Named("box", boxGrammar())(NewCursor("1x2y"))
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, `"x"`, pe.Expected)
}

func TestComplete(t *testing.T) {
	v, err := Complete(Natural[int](), "12")
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	_, err = Complete(Natural[int](), "12 ")
	require.ErrorIs(t, err, ErrTrailing)

	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, Position{Offset: 2, Line: 1, Column: 3}, pe.Position())
	assert.Equal(t, "parse error at 1:3: expected end of input: unconsumed input", err.Error())
}

func TestLayout(t *testing.T) {
	s, rest, err := Space0()(NewCursor(" \t x"))
	require.NoError(t, err)
	assert.Equal(t, " \t ", s)
	assert.Equal(t, "x", rest.Rest())

	_, _, err = Space1()(NewCursor("x"))
	require.ErrorIs(t, err, ErrNoMatch)

	s, _, err = Multispace0()(NewCursor("\n \r\nx"))
	require.NoError(t, err)
	assert.Equal(t, "\n \r\n", s)

	s, _, err = LineEnding()(NewCursor("\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "\r\n", s)

	_, _, err = EOF()(NewCursor(""))
	require.NoError(t, err)

	_, _, err = EOF()(NewCursor("x"))
	require.ErrorIs(t, err, ErrNoMatch)
}

func TestSatisfy_Unicode(t *testing.T) {
	r, rest, err := NoneOf(">")(NewCursor("éx"))
	require.NoError(t, err)
	assert.Equal(t, 'é', r)
	assert.Equal(t, "x", rest.Rest())

	_, _, err = AnyChar()(NewCursor(""))
	require.ErrorIs(t, err, ErrNoMatch)
}

func TestCursor(t *testing.T) {
	c := NewCursor("ab\ncd")

	assert.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, c.Position())
	assert.Equal(t, Position{Offset: 4, Line: 2, Column: 2}, c.Advance(4).Position())
	assert.Equal(t, 5, c.Advance(99).Offset())
	assert.True(t, c.Advance(99).EOF())
	assert.Equal(t, c, c.Advance(-1))
	assert.Equal(t, "", c.Consumed(c.Advance(2)))
	assert.Equal(t, "ab\n", c.Advance(3).Consumed(c))
	assert.Equal(t, 2, c.Advance(3).Len())
}
