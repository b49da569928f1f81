// Package y2017 registers the solutions to the 2017 puzzles.
package y2017

import "github.com/ardnew/aoc/puzzle"

func init() {
	puzzle.MustRegister(
		day09,
		day15,
	)
}
