package y2016

import (
	"context"
	"errors"

	"github.com/ardnew/aoc/parse"
	"github.com/ardnew/aoc/puzzle"
)

// Step turns left or right, then walks forward.
type Step struct {
	Turn   string `json:"turn"   yaml:"turn"`
	Blocks int    `json:"blocks" yaml:"blocks"`
}

type vec struct{ x, y int }

func (v vec) add(o vec) vec { return vec{v.x + o.x, v.y + o.y} }

func (v vec) dist() int { return abs(v.x) + abs(v.y) }

// rotate turns v a quarter left or right.
func (v vec) rotate(turn string) vec {
	if turn == "L" {
		return vec{-v.y, v.x}
	}

	return vec{v.y, -v.x}
}

var errNoRevisit = errors.New("no location is visited twice")

var day01 = puzzle.Define(
	puzzle.ID{Year: 2016, Day: 1}, "No Time for a Taxicab",
	puzzle.Line(parse.SeparatedList1(
		parse.Tag(", "),
		parse.Build(
			parse.Tuple2(parse.OneOf("LR"), parse.Natural[int]()),
			func(t parse.T2[rune, int]) (Step, error) {
				return Step{Turn: string(t.V1), Blocks: t.V2}, nil
			},
		),
	)),
	func(_ context.Context, steps []Step) (int, error) {
		var at vec

		walk(steps, func(p vec) bool {
			at = p

			return true
		})

		return at.dist(), nil
	},
	func(_ context.Context, steps []Step) (int, error) {
		seen := map[vec]bool{{}: true}
		found := false

		var at vec

		walk(steps, func(p vec) bool {
			at = p
			if seen[p] {
				found = true

				return false
			}

			seen[p] = true

			return true
		})

		if !found {
			return 0, errNoRevisit
		}

		return at.dist(), nil
	},
	puzzle.Sample{Part: puzzle.Part1, Input: "R2, L3", Want: "5"},
	puzzle.Sample{Part: puzzle.Part1, Input: "R2, R2, R2", Want: "2"},
	puzzle.Sample{Part: puzzle.Part1, Input: "R5, L5, R5, R3\n", Want: "12"},
	puzzle.Sample{Part: puzzle.Part2, Input: "R8, R4, R4, R8\n", Want: "4"},
)

// walk follows steps from the origin facing north, calling visit with every
// block reached until visit returns false.
func walk(steps []Step, visit func(vec) bool) {
	var at vec

	dir := vec{0, 1}

	for _, s := range steps {
		dir = dir.rotate(s.Turn)
		for range s.Blocks {
			at = at.add(dir)
			if !visit(at) {
				return
			}
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
