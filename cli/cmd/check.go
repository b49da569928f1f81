package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/ardnew/aoc/log"
	"github.com/ardnew/aoc/pkg"
	"github.com/ardnew/aoc/puzzle"
)

// Check runs puzzle solutions on sample inputs and verifies their answers.
type Check struct {
	Samples string `help:"Also check the samples in this YAML file." short:"s" type:"existingfile"`

	Puzzles []string `arg:"" help:"Puzzle identifiers to check (default all)." optional:""`
}

// trial is one sample of one puzzle.
type trial struct {
	puzzle *puzzle.Puzzle
	sample puzzle.Sample
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	trials, err := c.trials()
	if err != nil {
		return err
	}

	failed := 0

	for _, t := range trials {
		status := "PASS"

		if err := t.puzzle.Check(ctx, t.sample); err != nil {
			status = "FAIL"
			failed++

			log.WarnContext(ctx, "sample failed", slog.Any("error", err))
		}

		_, err := fmt.Fprintf(Stdout, "%s %s part=%s want=%s\n",
			status, t.puzzle.ID, t.sample.Part, t.sample.Want)
		if err != nil {
			return pkg.ErrWriteOutput.Wrap(err)
		}
	}

	log.InfoContext(ctx, "checked samples",
		slog.Int("total", len(trials)),
		slog.Int("failed", failed),
	)

	if failed > 0 {
		return pkg.ErrCheckFailed.With(
			slog.Int("failed", failed),
			slog.Int("total", len(trials)),
		)
	}

	return nil
}

// trials collects the built-in samples of the selected puzzles followed by
// the samples file entries that refer to them.
func (c *Check) trials() ([]trial, error) {
	selected := puzzle.All()

	if len(c.Puzzles) > 0 {
		selected = nil

		for _, name := range c.Puzzles {
			p, err := puzzle.Find(name)
			if err != nil {
				return nil, err
			}

			if !slices.Contains(selected, p) {
				selected = append(selected, p)
			}
		}
	}

	var trials []trial

	for _, p := range selected {
		for _, s := range p.Samples {
			trials = append(trials, trial{p, s})
		}
	}

	if c.Samples == "" {
		return trials, nil
	}

	extra, err := c.load()
	if err != nil {
		return nil, err
	}

	for _, s := range extra {
		p, ok := puzzle.Lookup(s.Puzzle)
		if !ok {
			return nil, pkg.ErrUnknownPuzzle.With(
				slog.String("puzzle", s.Puzzle.String()),
				slog.String("file", c.Samples),
			)
		}

		if slices.Contains(selected, p) {
			trials = append(trials, trial{p, s})
		}
	}

	return trials, nil
}

func (c *Check) load() ([]puzzle.Sample, error) {
	f, err := os.Open(c.Samples)
	if err != nil {
		return nil, pkg.ErrLoadSamples.Wrap(err).With(slog.String("file", c.Samples))
	}
	defer f.Close()

	samples, err := puzzle.LoadSamples(f)
	if err != nil {
		return nil, pkg.WrapError(err).With(slog.String("file", c.Samples))
	}

	return samples, nil
}
