package puzzle

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ardnew/aoc/log"
	"github.com/ardnew/aoc/parse"
	"github.com/ardnew/aoc/pkg"
)

// Solver computes the answer to one part of a puzzle from its parsed input.
type Solver[T any] func(ctx context.Context, in T) (int, error)

// Puzzle is a single day's solution: a grammar for its input and a solver
// for each part.
type Puzzle struct {
	ID      ID
	Title   string
	Samples []Sample

	parse func(input string) (any, error)
	solve map[Part]func(ctx context.Context, in any) (int, error)
}

// Define builds a [Puzzle] whose input is recognized by grammar and whose
// parts are computed by part1 and part2. Either solver may be nil when a
// part is not implemented.
//
// The grammar must consume the entire input, including any final line
// ending.
func Define[T any](
	id ID,
	title string,
	grammar parse.Parser[T],
	part1, part2 Solver[T],
	samples ...Sample,
) *Puzzle {
	p := &Puzzle{
		ID:      id,
		Title:   title,
		Samples: samples,
		parse: func(input string) (any, error) {
			return parse.Complete(grammar, input)
		},
		solve: make(map[Part]func(context.Context, any) (int, error), 2),
	}

	for part, fn := range map[Part]Solver[T]{Part1: part1, Part2: part2} {
		if fn == nil {
			continue
		}

		p.solve[part] = func(ctx context.Context, in any) (int, error) {
			return fn(ctx, in.(T))
		}
	}

	return p
}

// Line wraps p so that an optional line ending may follow it, which is the
// shape of single-line puzzle inputs.
func Line[T any](p parse.Parser[T]) parse.Parser[T] {
	return parse.Terminated(p, parse.Opt(parse.LineEnding()))
}

// Has reports whether part is implemented.
func (p *Puzzle) Has(part Part) bool {
	_, ok := p.solve[part]

	return ok
}

// Parse applies the puzzle's grammar to the whole input.
//
// Text left over after a successful parse fails with
// [pkg.ErrTrailingInput]; any other failure is [pkg.ErrParseInput]. Both
// carry the position of the failure.
func (p *Puzzle) Parse(input string) (any, error) {
	v, err := p.parse(input)
	if err == nil {
		return v, nil
	}

	kind := pkg.ErrParseInput
	if errors.Is(err, parse.ErrTrailing) {
		kind = pkg.ErrTrailingInput
	}

	attrs := []slog.Attr{slog.String("puzzle", p.ID.String())}

	var pe *parse.Error
	if errors.As(err, &pe) {
		attrs = append(attrs, slog.String("position", pe.Position().String()))
	}

	return nil, kind.Wrap(err).With(attrs...)
}

// Solve parses input and computes the requested parts.
// Parts that are not implemented are left unset in the returned [Answer].
func (p *Puzzle) Solve(ctx context.Context, input string, part Part) (Answer, error) {
	var ans Answer

	start := time.Now()

	in, err := p.Parse(input)
	if err != nil {
		return ans, err
	}

	log.TraceContext(ctx, "parsed input",
		slog.String("puzzle", p.ID.String()),
		slog.Duration("elapsed", time.Since(start)),
	)

	for _, n := range Parts() {
		fn, ok := p.solve[n]
		if !ok || !part.Includes(n) {
			continue
		}

		start = time.Now()

		v, err := fn(ctx, in)
		if err != nil {
			return ans, pkg.ErrSolve.Wrap(err).With(
				slog.String("puzzle", p.ID.String()),
				slog.String("part", n.String()),
			)
		}

		ans.set(n, v)

		log.DebugContext(ctx, "solved",
			slog.String("puzzle", p.ID.String()),
			slog.String("part", n.String()),
			slog.Int("answer", v),
			slog.Duration("elapsed", time.Since(start)),
		)
	}

	return ans, nil
}

// Check solves the sample's input and evaluates its expectation.
func (p *Puzzle) Check(ctx context.Context, s Sample) error {
	want, err := s.Expectation()
	if err != nil {
		return pkg.ErrCheckFailed.Wrap(err).With(slog.String("puzzle", p.ID.String()))
	}

	ans, err := p.Solve(ctx, s.Input, s.Part)
	if err == nil {
		err = Expect(want, ans)
	}

	if err != nil {
		return pkg.ErrCheckFailed.Wrap(err).With(
			slog.String("puzzle", p.ID.String()),
			slog.String("part", s.Part.String()),
		)
	}

	return nil
}
