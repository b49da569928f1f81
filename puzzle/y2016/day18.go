package y2016

import (
	"context"

	"github.com/ardnew/aoc/parse"
	"github.com/ardnew/aoc/puzzle"
)

// Row is one row of tiles; true marks a trap.
type Row []bool

var day18 = puzzle.Define(
	puzzle.ID{Year: 2016, Day: 18}, "Like a Rogue",
	puzzle.Line(parse.Map(
		parse.Many1(parse.Alt(
			parse.Value(false, parse.Char('.')),
			parse.Value(true, parse.Char('^')),
		)),
		func(tiles []bool) Row { return tiles },
	)),
	func(_ context.Context, r Row) (int, error) { return countSafe(r, 40), nil },
	func(_ context.Context, r Row) (int, error) { return countSafe(r, 400000), nil },
)

// countSafe returns the number of safe tiles in the first n rows, starting
// with first. A tile is a trap exactly when its left and right neighbors in
// the row above differ; tiles beyond the edges are safe.
func countSafe(first Row, n int) int {
	row := append(Row(nil), first...)
	next := make(Row, len(row))
	safe := 0

	for range n {
		for i, trap := range row {
			if !trap {
				safe++
			}

			left := i > 0 && row[i-1]
			right := i+1 < len(row) && row[i+1]
			next[i] = left != right
		}

		row, next = next, row
	}

	return safe
}

// String renders the row with '.' for safe tiles and '^' for traps.
func (r Row) String() string {
	b := make([]byte, len(r))
	for i, trap := range r {
		b[i] = '.'
		if trap {
			b[i] = '^'
		}
	}

	return string(b)
}
