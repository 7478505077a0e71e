package grid

import (
	"fmt"
	"strings"
)

// OutOfBounds is returned by Get for positions outside the grid.
const OutOfBounds rune = 0

// Position is a (Row, Col) cell coordinate. Row grows downwards, Col grows
// to the right. Positions compare and hash by value.
type Position struct {
	Row, Col int
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns |Δrow| + |Δcol| between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// Direction is a unit step on the grid. Only North, East, South and West are
// valid; any other value is rejected by the functions that need a unit vector.
type Direction struct {
	DRow, DCol int
}

// The four cardinal directions.
var (
	North = Direction{DRow: -1}
	East  = Direction{DCol: 1}
	South = Direction{DRow: 1}
	West  = Direction{DCol: -1}
)

// Directions lists the cardinal directions in clockwise order starting at North.
// Callers iterate it for a deterministic neighbour order.
var Directions = [4]Direction{North, East, South, West}

// Valid reports whether d is one of the four cardinal unit vectors.
func (d Direction) Valid() bool {
	return d.DRow*d.DRow+d.DCol*d.DCol == 1
}

// Clockwise returns d rotated 90° clockwise (North → East).
func (d Direction) Clockwise() Direction {
	return Direction{DRow: d.DCol, DCol: -d.DRow}
}

// CounterClockwise returns d rotated 90° counter-clockwise (North → West).
func (d Direction) CounterClockwise() Direction {
	return Direction{DRow: -d.DCol, DCol: d.DRow}
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

// String returns the lower-case compass name, or the raw vector for invalid values.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("direction(%d,%d)", d.DRow, d.DCol)
	}
}

// Arrow returns the single-character glyph used when drawing a facing.
func (d Direction) Arrow() rune {
	switch d {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	case West:
		return '<'
	default:
		return '?'
	}
}

// ParseDirection accepts a compass name ("north", "E", ...) case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north", "up", "^":
		return North, nil
	case "e", "east", "right", ">":
		return East, nil
	case "s", "south", "down", "v":
		return South, nil
	case "w", "west", "left", "<":
		return West, nil
	}
	return Direction{}, fmt.Errorf("%w: unknown direction %q", ErrNotUnit, s)
}

// ApplyDirection returns the position one step from p in direction d.
func ApplyDirection(p Position, d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// DifferenceAsDirection returns the direction that leads from `from` to `to`.
// The two positions must be orthogonally adjacent.
func DifferenceAsDirection(to, from Position) (Direction, error) {
	d := Direction{DRow: to.Row - from.Row, DCol: to.Col - from.Col}
	if !d.Valid() {
		return Direction{}, fmt.Errorf("%w: %v - %v", ErrNotUnit, to, from)
	}
	return d, nil
}

// InnerAngle returns the angle in degrees between a and b: 0, 90 or 180.
func InnerAngle(a, b Direction) (int, error) {
	if !a.Valid() || !b.Valid() {
		return 0, fmt.Errorf("%w: angle between %v and %v", ErrNotUnit, a, b)
	}
	switch a.DRow*b.DRow + a.DCol*b.DCol {
	case 1:
		return 0, nil
	case 0:
		return 90, nil
	default:
		return 180, nil
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
