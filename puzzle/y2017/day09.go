package y2017

import (
	"context"

	"github.com/ardnew/aoc/parse"
	"github.com/ardnew/aoc/puzzle"
)

// Group is a brace-delimited group of a character stream.
type Group struct {
	Groups []Group `json:"groups,omitempty" yaml:"groups,omitempty"`
	// Garbage counts the uncanceled characters of garbage directly inside
	// the group.
	Garbage int `json:"garbage" yaml:"garbage"`
}

// element is one comma-separated member of a group.
type element struct {
	group   *Group
	garbage int
}

var day09 = puzzle.Define(
	puzzle.ID{Year: 2017, Day: 9}, "Stream Processing",
	puzzle.Line(stream()),
	func(_ context.Context, g Group) (int, error) { return g.score(1), nil },
	func(_ context.Context, g Group) (int, error) { return g.garbage(), nil },
	puzzle.Sample{Part: puzzle.Part1, Input: "{}", Want: "1"},
	puzzle.Sample{Part: puzzle.Part1, Input: "{{{}}}", Want: "6"},
	puzzle.Sample{Part: puzzle.Part1, Input: "{{},{}}", Want: "5"},
	puzzle.Sample{Part: puzzle.Part1, Input: "{{{},{},{{}}}}", Want: "16"},
	puzzle.Sample{Part: puzzle.Part1, Input: "{<a>,<a>,<a>,<a>}", Want: "1"},
	puzzle.Sample{Part: puzzle.Part1, Input: "{{<ab>},{<ab>},{<ab>},{<ab>}}", Want: "9"},
	puzzle.Sample{Part: puzzle.Part1, Input: "{{<!!>},{<!!>},{<!!>},{<!!>}}", Want: "9"},
	puzzle.Sample{Part: puzzle.Part1, Input: "{{<a!>},{<a!>},{<a!>},{<ab>}}", Want: "3"},
	puzzle.Sample{Part: puzzle.Part2, Input: "{<random characters>}", Want: "17"},
	puzzle.Sample{Part: puzzle.Part2, Input: "{<{o\"i!a,<{i<a>}", Want: "10"},
)

// stream recognizes a group of groups and garbage. Once a group or garbage
// has been opened, a missing closing delimiter is a fatal failure rather
// than a reason to try other alternatives.
func stream() parse.Parser[Group] {
	// "!" cancels the next character and must be tried before the
	// catch-all, which would otherwise accept it.
	char := parse.Alt(
		parse.Value(0, parse.Preceded(parse.Char('!'), parse.AnyChar())),
		parse.Value(1, parse.NoneOf(">")),
	)

	garbage := parse.Map(
		parse.Delimited(parse.Char('<'), parse.Many0(char), parse.Cut(parse.Char('>'))),
		func(counts []int) int {
			n := 0
			for _, c := range counts {
				n += c
			}

			return n
		},
	)

	var group parse.Parser[Group]

	elem := parse.Alt(
		parse.Map(parse.Lazy(func() parse.Parser[Group] { return group }),
			func(g Group) element { return element{group: &g} }),
		parse.Map(garbage,
			func(n int) element { return element{garbage: n} }),
	)

	group = parse.Map(
		parse.Delimited(
			parse.Char('{'),
			parse.SeparatedList0(parse.Char(','), elem),
			parse.Cut(parse.Char('}')),
		),
		func(elems []element) Group {
			var g Group

			for _, e := range elems {
				if e.group != nil {
					g.Groups = append(g.Groups, *e.group)
				} else {
					g.Garbage += e.garbage
				}
			}

			return g
		},
	)

	return group
}

// score is the sum of the nesting depths of g and every group inside it.
func (g Group) score(depth int) int {
	s := depth
	for _, c := range g.Groups {
		s += c.score(depth + 1)
	}

	return s
}

// garbage is the number of uncanceled garbage characters in g.
func (g Group) garbage() int {
	n := g.Garbage
	for _, c := range g.Groups {
		n += c.garbage()
	}

	return n
}
