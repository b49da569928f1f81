package puzzle

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/aoc/parse"
	"github.com/ardnew/aoc/pkg"
)

// FirstYear is the first year puzzles were published.
const FirstYear = 2015

// DaysPerYear is the number of puzzles published each year.
const DaysPerYear = 25

// ID identifies a puzzle by its year and day.
type ID struct {
	Year int `json:"year" yaml:"year"`
	Day  int `json:"day"  yaml:"day"`
}

// String formats the ID as "YYYY/DD".
func (id ID) String() string { return fmt.Sprintf("%04d/%02d", id.Year, id.Day) }

// Valid reports whether id names a day that can exist.
func (id ID) Valid() bool {
	return id.Year >= FirstYear && id.Day >= 1 && id.Day <= DaysPerYear
}

// Compare orders IDs by year, then day.
func (id ID) Compare(other ID) int {
	if id.Year != other.Year {
		return id.Year - other.Year
	}

	return id.Day - other.Day
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler using [ParseID].
func (id *ID) UnmarshalText(text []byte) error {
	v, err := ParseID(string(text))
	if err != nil {
		return err
	}

	*id = v

	return nil
}

// idGrammar accepts "<year><sep><day>" where sep is one of "/-.".
var idGrammar = parse.Build(
	parse.Tuple3(
		parse.Named("year", parse.Natural[int]()),
		parse.OneOf("/-."),
		parse.Named("day", parse.Natural[int]()),
	),
	func(t parse.T3[int, rune, int]) (ID, error) {
		id := ID{Year: t.V1, Day: t.V3}
		if !id.Valid() {
			return ID{}, fmt.Errorf("no puzzle on day %d of %d", id.Day, id.Year)
		}

		return id, nil
	},
)

// ParseID parses a puzzle identifier such as "2015/2", "2015-02" or
// "2015.02".
func ParseID(s string) (ID, error) {
	id, err := parse.Complete(idGrammar, strings.TrimSpace(s))
	if err != nil {
		return ID{}, pkg.ErrInvalidPuzzleID.Wrap(err).With(slog.String("id", s))
	}

	return id, nil
}
