package y2016

import (
	"context"
	"errors"

	"github.com/ardnew/aoc/parse"
	"github.com/ardnew/aoc/puzzle"
)

var errNoElves = errors.New("at least one elf is required")

var day19 = puzzle.Define(
	puzzle.ID{Year: 2016, Day: 19}, "An Elephant Named Joseph",
	puzzle.Line(parse.MapErr(parse.Natural[int](), func(n int) (int, error) {
		if n < 1 {
			return 0, errNoElves
		}

		return n, nil
	})),
	func(_ context.Context, n int) (int, error) { return stealLeft(n), nil },
	func(_ context.Context, n int) (int, error) { return stealAcross(n), nil },
	puzzle.Sample{Input: "5\n", Want: "part1 == 3 && part2 == 2"},
)

// stealLeft is the winning position when each elf takes the presents of
// the elf to its left: the Josephus problem with every second elf removed.
func stealLeft(n int) int {
	p := 1
	for p*2 <= n {
		p *= 2
	}

	return 2*(n-p) + 1
}

// stealAcross is the winning position when each elf takes the presents of
// the elf directly across the circle.
func stealAcross(n int) int {
	p := 1
	for p*3 <= n {
		p *= 3
	}

	switch {
	case n == p:
		return n
	case n-p <= p:
		return n - p
	default:
		return 2*n - 3*p
	}
}
