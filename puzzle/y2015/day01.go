package y2015

import (
	"context"
	"errors"

	"github.com/ardnew/aoc/parse"
	"github.com/ardnew/aoc/puzzle"
)

var day01 = puzzle.Define(
	puzzle.ID{Year: 2015, Day: 1}, "Not Quite Lisp",
	puzzle.Line(parse.Many0(parse.Alt(
		parse.Value(1, parse.Char('(')),
		parse.Value(-1, parse.Char(')')),
	))),
	floor,
	basement,
	puzzle.Sample{Part: puzzle.Part1, Input: "(())", Want: "0"},
	puzzle.Sample{Part: puzzle.Part1, Input: "))(((((", Want: "3"},
	puzzle.Sample{Part: puzzle.Part1, Input: ")())())", Want: "-3"},
	puzzle.Sample{Part: puzzle.Part2, Input: ")", Want: "1"},
	puzzle.Sample{Part: puzzle.Part2, Input: "()())", Want: "5"},
)

var errNoBasement = errors.New("never enters the basement")

// floor is the floor reached after following every step.
func floor(_ context.Context, steps []int) (int, error) {
	at := 0
	for _, s := range steps {
		at += s
	}

	return at, nil
}

// basement is the 1-based position of the first step that reaches floor -1.
func basement(_ context.Context, steps []int) (int, error) {
	at := 0
	for i, s := range steps {
		if at += s; at < 0 {
			return i + 1, nil
		}
	}

	return 0, errNoBasement
}
