// Package y2015 registers the solutions to the 2015 puzzles.
package y2015

import "github.com/ardnew/aoc/puzzle"

func init() {
	puzzle.MustRegister(
		day01,
		day02,
		day04,
		day06,
	)
}
