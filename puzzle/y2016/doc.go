// Package y2016 registers the solutions to the 2016 puzzles.
package y2016

import "github.com/ardnew/aoc/puzzle"

func init() {
	puzzle.MustRegister(
		day01,
		day18,
		day19,
	)
}
