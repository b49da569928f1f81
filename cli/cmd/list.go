package cmd

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ardnew/aoc/puzzle"
)

// List prints the registered puzzles.
type List struct {
	Year   int    `                     help:"Only list puzzles from this year." short:"y"`
	Format Format `default:"text" enum:"text,json,yaml" help:"Output format."`
	Indent int    `default:"2"          help:"Indent width for JSON and YAML output." short:"i"`
}

// entry is the encoded output of [List] for one puzzle.
type entry struct {
	Puzzle puzzle.ID `json:"puzzle" yaml:"puzzle"`
	Title  string    `json:"title"  yaml:"title"`
	Parts  []int     `json:"parts"  yaml:"parts"`
}

// catalog renders as a table in text format.
type catalog []entry

func (c catalog) String() string {
	pad := lipgloss.NewStyle().PaddingRight(2)

	t := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		StyleFunc(func(int, int) lipgloss.Style { return pad }).
		Headers("PUZZLE", "TITLE", "PARTS")

	for _, e := range c {
		parts := make([]string, len(e.Parts))
		for i, n := range e.Parts {
			parts[i] = puzzle.Part(n).Var()
		}

		t.Row(e.Puzzle.String(), e.Title, strings.Join(parts, " "))
	}

	return t.String()
}

// Run executes the list command.
func (l *List) Run(ctx context.Context) error {
	out := catalog{}

	for _, p := range puzzle.All() {
		if l.Year != 0 && p.ID.Year != l.Year {
			continue
		}

		e := entry{Puzzle: p.ID, Title: p.Title, Parts: []int{}}

		for _, part := range puzzle.Parts() {
			if p.Has(part) {
				e.Parts = append(e.Parts, int(part))
			}
		}

		out = append(out, e)
	}

	return write(ctx, l.Format, l.Indent, out)
}
