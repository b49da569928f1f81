package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/aoc/log"
	"github.com/ardnew/aoc/puzzle"
)

// Solve runs a puzzle's solution on its input and prints the answers.
type Solve struct {
	Source `embed:""`

	Part   int    `default:"0"    enum:"0,1,2"          help:"Solve only this part (0 for both)."                     short:"p"`
	Expect string `                                     help:"Fail unless the answers satisfy this expression, e.g. 'part1 == 280'." short:"e"`
	Format Format `default:"text" enum:"text,json,yaml" help:"Output format."`
	Indent int    `default:"2"                          help:"Indent width for JSON and YAML output."                 short:"i"`

	Puzzle string `arg:"" help:"Puzzle identifier, e.g. 2015/01."`
}

// result is the encoded output of [Solve].
type result struct {
	Puzzle        puzzle.ID `json:"puzzle" yaml:"puzzle"`
	puzzle.Answer `yaml:",inline"`
}

func (r result) String() string { return r.Puzzle.String() + " " + r.Answer.String() }

// Run executes the solve command.
func (s *Solve) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	p, input, err := s.load(ctx, s.Puzzle)
	if err != nil {
		return err
	}

	ans, err := p.Solve(ctx, input, puzzle.Part(s.Part))
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "solved",
		slog.String("puzzle", p.ID.String()),
		slog.Any("answer", ans),
	)

	if err := write(ctx, s.Format, s.Indent, result{p.ID, ans}); err != nil {
		return err
	}

	if s.Expect != "" {
		return puzzle.Expect(s.Expect, ans)
	}

	return nil
}
