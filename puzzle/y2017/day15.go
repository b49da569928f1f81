package y2017

import (
	"context"

	"github.com/ardnew/aoc/parse"
	"github.com/ardnew/aoc/puzzle"
)

const (
	factorA    = 16807
	factorB    = 48271
	modulus    = 2147483647
	lowBits    = 0xffff
	checkEvery = 1 << 20
)

// Generators holds the starting values of generators A and B.
type Generators struct {
	A uint64 `json:"a" yaml:"a"`
	B uint64 `json:"b" yaml:"b"`
}

var day15 = puzzle.Define(
	puzzle.ID{Year: 2017, Day: 15}, "Dueling Generators",
	parse.Build(
		parse.Tuple2(
			parse.Terminated(seed("A"), parse.LineEnding()),
			puzzle.Line(seed("B")),
		),
		func(t parse.T2[uint64, uint64]) (Generators, error) {
			// Seeds beyond the modulus would overflow the first product.
			return Generators{A: t.V1 % modulus, B: t.V2 % modulus}, nil
		},
	),
	func(ctx context.Context, g Generators) (int, error) {
		return judge(ctx, g, 40_000_000, 1, 1)
	},
	func(ctx context.Context, g Generators) (int, error) {
		return judge(ctx, g, 5_000_000, 4, 8)
	},
	puzzle.Sample{
		Input: "Generator A starts with 65\nGenerator B starts with 8921\n",
		Want:  "part1 == 588 && part2 == 309",
	},
)

// seed recognizes "Generator <name> starts with <n>".
func seed(name string) parse.Parser[uint64] {
	return parse.Preceded(
		parse.Tag("Generator "+name+" starts with "),
		parse.Natural[uint64](),
	)
}

// judge counts how many of the first pairs values agree in their lowest 16
// bits. Each generator only offers values that are multiples of its
// criterion.
func judge(ctx context.Context, g Generators, pairs int, multA, multB uint64) (int, error) {
	a, b := g.A, g.B
	matches := 0

	for i := range pairs {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		a = next(a, factorA, multA)
		b = next(b, factorB, multB)

		if a&lowBits == b&lowBits {
			matches++
		}
	}

	return matches, nil
}

func next(v, factor, mult uint64) uint64 {
	for {
		v = v * factor % modulus
		if v%mult == 0 {
			return v
		}
	}
}
