package maze

import (
	"bytes"
	"fmt"
	"io"

	"github.com/katalvlaran/mazepath/grid"
)

// Maze is a validated grid with exactly one start and one end cell.
//
// The maze owns its grid: PruneDeadEnds rewrites dead-end cells in place.
// Use Clone to keep an untouched copy.
type Maze struct {
	g          *grid.Grid
	start, end grid.Position
	markers    Markers
	sentinels  map[rune]bool
}

// New validates g and locates its start and end markers.
//
// Returns ErrInvalidInput (wrapped with the offending position or marker) if
// the grid contains a character outside the alphabet, or if the start or end
// marker is missing or repeated.
func New(g *grid.Grid, opts ...MazeOption) (*Maze, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidInput)
	}
	cfg := mazeConfig{markers: DefaultMarkers()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.markers.validate(); err != nil {
		return nil, err
	}

	m := &Maze{g: g, markers: cfg.markers, sentinels: make(map[rune]bool, len(cfg.sentinels))}
	for _, r := range cfg.sentinels {
		m.sentinels[r] = true
	}
	if err := m.checkAlphabet(); err != nil {
		return nil, err
	}

	var err error
	if m.start, err = m.locate(cfg.markers.Start, "start"); err != nil {
		return nil, err
	}
	if m.end, err = m.locate(cfg.markers.End, "end"); err != nil {
		return nil, err
	}

	return m, nil
}

// Parse reads a maze from r: grid.Load locates the start marker, New
// validates the rest.
func Parse(r io.Reader, opts ...MazeOption) (*Maze, error) {
	cfg := mazeConfig{markers: DefaultMarkers()}
	for _, opt := range opts {
		opt(&cfg)
	}
	g, _, err := grid.Load(r, cfg.markers.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return New(g, opts...)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, opts ...MazeOption) (*Maze, error) {
	return Parse(bytes.NewBufferString(s), opts...)
}

func (m *Maze) checkAlphabet() error {
	for r := 0; r < m.g.Height(); r++ {
		for c := 0; c < m.g.Width(); c++ {
			p := grid.Position{Row: r, Col: c}
			switch ch := m.g.Get(p); {
			case ch == m.markers.Start, ch == m.markers.End, ch == m.markers.Wall,
				ch == m.markers.Open, ch == m.markers.Fill, m.sentinels[ch]:
			default:
				return fmt.Errorf("%w: disallowed character %q at %v", ErrInvalidInput, ch, p)
			}
		}
	}
	return nil
}

func (m *Maze) locate(marker rune, name string) (grid.Position, error) {
	found := m.g.Find(marker)
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return grid.Position{}, fmt.Errorf("%w: no %s marker %q", ErrInvalidInput, name, marker)
	default:
		return grid.Position{}, fmt.Errorf("%w: %d %s markers %q, first at %v", ErrInvalidInput, len(found), name, marker, found[0])
	}
}

// Grid exposes the underlying grid. Mutating it invalidates any ReducedGraph.
func (m *Maze) Grid() *grid.Grid { return m.g }

// Start returns the start cell.
func (m *Maze) Start() grid.Position { return m.start }

// End returns the end cell.
func (m *Maze) End() grid.Position { return m.end }

// Markers returns the maze alphabet.
func (m *Maze) Markers() Markers { return m.markers }

// Clone returns an independent copy sharing no mutable state.
func (m *Maze) Clone() *Maze {
	c := *m
	c.g = m.g.Clone()
	return &c
}

// String renders the current grid.
func (m *Maze) String() string { return m.g.String() }

// Open reports whether p can be stood on: an open, start or end cell.
// Positions outside the grid are blocked.
func (m *Maze) Open(p grid.Position) bool {
	return m.isOpenRune(m.g.Get(p))
}

func (m *Maze) isOpenRune(ch rune) bool {
	return ch == m.markers.Open || ch == m.markers.Start || ch == m.markers.End
}

// Degree counts the open orthogonal neighbours of p.
func (m *Maze) Degree(p grid.Position) int {
	n := 0
	for _, d := range grid.Directions {
		if m.Open(grid.ApplyDirection(p, d)) {
			n++
		}
	}
	return n
}

// Connected reports whether start and end lie in the same open region.
func (m *Maze) Connected() bool {
	labels := m.g.Labels(m.isOpenRune)
	return labels[m.g.Index(m.start)] == labels[m.g.Index(m.end)]
}
