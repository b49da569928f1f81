package y2015

import (
	"context"
	"errors"
	"fmt"

	"github.com/ardnew/aoc/parse"
	"github.com/ardnew/aoc/puzzle"
)

// gridSize is the width and height of the light grid.
const gridSize = 1000

// Action is what an instruction does to each light in its rectangle.
type Action int

const (
	TurnOn Action = iota
	TurnOff
	Toggle
)

func (a Action) String() string {
	switch a {
	case TurnOn:
		return "turn on"
	case TurnOff:
		return "turn off"
	case Toggle:
		return "toggle"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Action) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// Point is a light's position in the grid.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Instruction applies an [Action] to the rectangle from From to To,
// inclusive.
type Instruction struct {
	Action Action `json:"action" yaml:"action"`
	From   Point  `json:"from"   yaml:"from"`
	To     Point  `json:"to"     yaml:"to"`
}

var errBadRect = errors.New("rectangle outside of grid or inverted")

var day06 = puzzle.Define(
	puzzle.ID{Year: 2015, Day: 6}, "Probably a Fire Hazard",
	parse.Lines(instruction()),
	func(_ context.Context, in []Instruction) (int, error) {
		return light(in, func(v int, a Action) int {
			switch a {
			case TurnOn:
				return 1
			case TurnOff:
				return 0
			default:
				return 1 - v
			}
		}), nil
	},
	func(_ context.Context, in []Instruction) (int, error) {
		return light(in, func(v int, a Action) int {
			switch a {
			case TurnOn:
				return v + 1
			case TurnOff:
				return max(v-1, 0)
			default:
				return v + 2
			}
		}), nil
	},
	puzzle.Sample{Part: puzzle.Part1, Input: "turn on 0,0 through 999,999\n", Want: "1000000"},
	puzzle.Sample{Part: puzzle.Part1, Input: "toggle 0,0 through 999,0\n", Want: "1000"},
	puzzle.Sample{
		Part:  puzzle.Part1,
		Input: "turn on 0,0 through 999,999\nturn off 499,499 through 500,500\n",
		Want:  "999996",
	},
	puzzle.Sample{Part: puzzle.Part2, Input: "turn on 0,0 through 0,0\n", Want: "1"},
	puzzle.Sample{Part: puzzle.Part2, Input: "toggle 0,0 through 999,999\n", Want: "2000000"},
)

// instruction recognizes lines such as "turn off 499,499 through 500,500".
// "turn on" and "turn off" share a prefix, so each alternative is a
// complete literal.
func instruction() parse.Parser[Instruction] {
	action := parse.Alt(
		parse.Value(TurnOn, parse.Tag("turn on")),
		parse.Value(TurnOff, parse.Tag("turn off")),
		parse.Value(Toggle, parse.Tag("toggle")),
	)

	point := parse.Build(
		parse.Tuple3(parse.Natural[int](), parse.Char(','), parse.Natural[int]()),
		func(t parse.T3[int, rune, int]) (Point, error) {
			return Point{X: t.V1, Y: t.V3}, nil
		},
	)

	return parse.Build(
		parse.Tuple4(
			action,
			parse.Preceded(parse.Space1(), point),
			parse.Tag(" through "),
			point,
		),
		func(t parse.T4[Action, Point, string, Point]) (Instruction, error) {
			in := Instruction{Action: t.V1, From: t.V2, To: t.V4}
			if in.To.X >= gridSize || in.To.Y >= gridSize ||
				in.From.X > in.To.X || in.From.Y > in.To.Y {
				return Instruction{}, errBadRect
			}

			return in, nil
		},
	)
}

// light applies every instruction to a dark grid with update and returns
// the sum of all light values.
func light(in []Instruction, update func(int, Action) int) int {
	grid := make([]int, gridSize*gridSize)

	for _, ins := range in {
		for y := ins.From.Y; y <= ins.To.Y; y++ {
			row := grid[y*gridSize : (y+1)*gridSize]
			for x := ins.From.X; x <= ins.To.X; x++ {
				row[x] = update(row[x], ins.Action)
			}
		}
	}

	sum := 0
	for _, v := range grid {
		sum += v
	}

	return sum
}
