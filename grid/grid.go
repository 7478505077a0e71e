package grid

import "strings"

// Grid is a rectangular, mutable grid of characters. Cells are addressed by
// Position; Cells[row][col] holds the character.
type Grid struct {
	width, height int
	cells         [][]rune
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later mutation of rows does not leak in.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(rows [][]rune) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]rune, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]rune, w)
		copy(cells[r], rows[r])
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// FromLines builds a Grid from one string per row.
func FromLines(lines []string) (*Grid, error) {
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}
	return New(rows)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies within [0,Height)×[0,Width).
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// Get returns the character at p, or OutOfBounds if p is outside the grid.
func (g *Grid) Get(p Position) rune {
	if !g.InBounds(p) {
		return OutOfBounds
	}
	return g.cells[p.Row][p.Col]
}

// Set writes c at p. Writes outside the grid are silently dropped and
// reported by a false return so callers that want to fail fast can.
func (g *Grid) Set(p Position, c rune) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[p.Row][p.Col] = c
	return true
}

// Find returns every position holding c, in row-major order.
func (g *Grid) Find(c rune) []Position {
	var out []Position
	for r := 0; r < g.height; r++ {
		for col := 0; col < g.width; col++ {
			if g.cells[r][col] == c {
				out = append(out, Position{Row: r, Col: col})
			}
		}
	}
	return out
}

// Clone returns an independent deep copy.
func (g *Grid) Clone() *Grid {
	c, _ := New(g.cells)
	return c
}

// String renders the grid one row per line, each line newline-terminated.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for _, row := range g.cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Index maps p to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.width + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.width, Col: idx % g.width}
}
