package puzzle

import (
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/aoc/pkg"
)

// maxSuggestions bounds the "did you mean" list returned by [Suggest].
const maxSuggestions = 3

var registry = struct {
	sync.RWMutex

	puzzles map[ID]*Puzzle
}{puzzles: make(map[ID]*Puzzle)}

// Register adds p to the set of known puzzles.
func Register(p *Puzzle) error {
	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.puzzles[p.ID]; ok {
		return pkg.ErrDuplicatePuzzle.With(slog.String("puzzle", p.ID.String()))
	}

	registry.puzzles[p.ID] = p

	return nil
}

// MustRegister is like [Register] but panics on error.
// It is intended for use in package init functions.
func MustRegister(ps ...*Puzzle) {
	for _, p := range ps {
		if err := Register(p); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the registered puzzle with the given ID.
func Lookup(id ID) (*Puzzle, bool) {
	registry.RLock()
	defer registry.RUnlock()

	p, ok := registry.puzzles[id]

	return p, ok
}

// Find parses s as an [ID] and returns the registered puzzle.
// Unknown puzzles fail with [pkg.ErrUnknownPuzzle], carrying suggestions of
// similar registered IDs.
func Find(s string) (*Puzzle, error) {
	id, err := ParseID(s)
	if err != nil {
		return nil, err
	}

	if p, ok := Lookup(id); ok {
		return p, nil
	}

	e := pkg.ErrUnknownPuzzle.With(slog.String("puzzle", id.String()))
	if alt := Suggest(id.String()); len(alt) > 0 {
		e = e.With(slog.Any("suggest", alt))
	}

	return nil, e
}

// All returns the registered puzzles ordered by ID.
func All() []*Puzzle {
	registry.RLock()
	defer registry.RUnlock()

	return slices.SortedFunc(maps.Values(registry.puzzles), func(a, b *Puzzle) int {
		return a.ID.Compare(b.ID)
	})
}

// Suggest returns up to three registered IDs that fuzzy-match s, best
// match first. If nothing matches s, its longest matching prefix is used.
func Suggest(s string) []string {
	all := All()

	ids := make([]string, len(all))
	for i, p := range all {
		ids[i] = p.ID.String()
	}

	var matches fuzzy.Matches
	for pattern := s; pattern != "" && len(matches) == 0; pattern = pattern[:len(pattern)-1] {
		matches = fuzzy.Find(pattern, ids)
	}

	out := make([]string, 0, min(len(matches), maxSuggestions))
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}

		out = append(out, m.Str)
	}

	return out
}
