package puzzle

import (
	"fmt"
	"strconv"
)

// Part selects which half of a puzzle to solve.
type Part int

const (
	PartBoth Part = iota
	Part1
	Part2
)

// Parts returns the individual parts in order.
func Parts() []Part { return []Part{Part1, Part2} }

// Includes reports whether solving p includes solving part.
func (p Part) Includes(part Part) bool { return p == PartBoth || p == part }

// Var returns the expression variable holding the part's result.
func (p Part) Var() string { return "part" + strconv.Itoa(int(p)) }

// String returns "1", "2" or "both".
func (p Part) String() string {
	switch p {
	case PartBoth:
		return "both"
	case Part1, Part2:
		return strconv.Itoa(int(p))
	default:
		return fmt.Sprintf("Part(%d)", int(p))
	}
}
