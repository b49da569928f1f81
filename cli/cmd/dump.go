package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/aoc/log"
)

// Dump parses a puzzle's input and prints the resulting structure.
type Dump struct {
	Source `embed:""`

	Format Format `default:"json" enum:"json,yaml" help:"Output format."`
	Indent int    `default:"2"                    help:"Indent width (0 for compact output)." short:"i"`

	Puzzle string `arg:"" help:"Puzzle identifier, e.g. 2015/01."`
}

// Run executes the dump command.
func (d *Dump) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	p, input, err := d.load(ctx, d.Puzzle)
	if err != nil {
		return err
	}

	v, err := p.Parse(input)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "parsed input",
		slog.String("puzzle", p.ID.String()),
		slog.Int("bytes", len(input)),
	)

	return write(ctx, d.Format, d.Indent, v)
}
