package puzzle

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/ardnew/aoc/pkg"
)

// Answer holds the results of the parts that were solved.
type Answer struct {
	Part1 *int `json:"part1,omitempty" yaml:"part1,omitempty"`
	Part2 *int `json:"part2,omitempty" yaml:"part2,omitempty"`
}

// Get returns the result of part and whether it was solved.
func (a Answer) Get(part Part) (int, bool) {
	var v *int

	switch part {
	case Part1:
		v = a.Part1
	case Part2:
		v = a.Part2
	}

	if v == nil {
		return 0, false
	}

	return *v, true
}

// set records v as the result of part.
func (a *Answer) set(part Part, v int) {
	switch part {
	case Part1:
		a.Part1 = &v
	case Part2:
		a.Part2 = &v
	}
}

// Env returns the variables visible to answer expressions: part1 and part2,
// each present only if that part was solved.
func (a Answer) Env() map[string]any {
	env := make(map[string]any, 2)

	for _, part := range Parts() {
		if v, ok := a.Get(part); ok {
			env[part.Var()] = v
		}
	}

	return env
}

// String formats the solved parts as "part1=N part2=M".
func (a Answer) String() string {
	var parts []string

	for _, part := range Parts() {
		if v, ok := a.Get(part); ok {
			parts = append(parts, part.Var()+"="+strconv.Itoa(v))
		}
	}

	return strings.Join(parts, " ")
}

// LogValue implements slog.LogValuer.
func (a Answer) LogValue() slog.Value {
	var attrs []slog.Attr

	for _, part := range Parts() {
		if v, ok := a.Get(part); ok {
			attrs = append(attrs, slog.Int(part.Var(), v))
		}
	}

	return slog.GroupValue(attrs...)
}

// Expect evaluates want, a boolean expression over part1 and part2 such as
// "part1 == 280 && part2 > 0", against the answer.
//
// It fails with [pkg.ErrExpect] if want does not compile or refers to a
// part that was not solved, and with [pkg.ErrAnswerMismatch] if it
// evaluates to false.
func Expect(want string, a Answer) error {
	env := a.Env()

	program, err := expr.Compile(want, expr.Env(env), expr.AsBool())
	if err != nil {
		return pkg.ErrExpect.Wrap(err).With(slog.String("want", want))
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return pkg.ErrExpect.Wrap(err).With(slog.String("want", want))
	}

	if ok, _ := out.(bool); !ok {
		return pkg.ErrAnswerMismatch.With(
			slog.String("want", want),
			slog.String("got", a.String()),
		)
	}

	return nil
}
