package y2015

import (
	"context"
	"errors"
	"slices"

	"github.com/ardnew/aoc/parse"
	"github.com/ardnew/aoc/puzzle"
)

// Box is a present's dimensions.
type Box struct {
	L int `json:"l" yaml:"l"`
	W int `json:"w" yaml:"w"`
	H int `json:"h" yaml:"h"`
}

var errFlatBox = errors.New("box has a zero dimension")

var day02 = puzzle.Define(
	puzzle.ID{Year: 2015, Day: 2}, "I Was Told There Would Be No Math",
	parse.Lines(parse.Build(
		parse.Tuple5(
			parse.Natural[int](), parse.Tag("x"),
			parse.Natural[int](), parse.Tag("x"),
			parse.Natural[int](),
		),
		func(t parse.T5[int, string, int, string, int]) (Box, error) {
			if t.V1 == 0 || t.V3 == 0 || t.V5 == 0 {
				return Box{}, errFlatBox
			}

			return Box{L: t.V1, W: t.V3, H: t.V5}, nil
		},
	)),
	func(_ context.Context, boxes []Box) (int, error) {
		return total(boxes, Box.paper), nil
	},
	func(_ context.Context, boxes []Box) (int, error) {
		return total(boxes, Box.ribbon), nil
	},
	puzzle.Sample{Input: "2x3x4\n", Want: "part1 == 58 && part2 == 34"},
	puzzle.Sample{Input: "1x1x10\n", Want: "part1 == 43 && part2 == 14"},
)

// sides returns the box dimensions in ascending order.
func (b Box) sides() (int, int, int) {
	s := []int{b.L, b.W, b.H}
	slices.Sort(s)

	return s[0], s[1], s[2]
}

// paper is the surface area plus the area of the smallest side.
func (b Box) paper() int {
	x, y, _ := b.sides()

	return 2*(b.L*b.W+b.W*b.H+b.H*b.L) + x*y
}

// ribbon is the smallest perimeter of any face plus the volume.
func (b Box) ribbon() int {
	x, y, _ := b.sides()

	return 2*(x+y) + b.L*b.W*b.H
}

func total(boxes []Box, measure func(Box) int) int {
	sum := 0
	for _, b := range boxes {
		sum += measure(b)
	}

	return sum
}
