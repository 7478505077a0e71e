package maze

import (
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
)

// Junctions returns the set of junction cells: the start, the end, and every
// open cell with three or four open neighbours.
//
// It also checks the post-pruning degree invariant for every other open cell:
// degree 2 is a plain corridor cell, degree 1 means pruning has not reached
// its fixpoint (ErrInvariant), degree 0 is an isolated cell (ErrInvalidInput).
// Call PruneDeadEnds first.
func (m *Maze) Junctions() (map[grid.Position]bool, error) {
	junctions := map[grid.Position]bool{m.start: true, m.end: true}
	for r := 0; r < m.g.Height(); r++ {
		for c := 0; c < m.g.Width(); c++ {
			p := grid.Position{Row: r, Col: c}
			if !m.Open(p) || p == m.start || p == m.end {
				continue
			}
			switch deg := m.Degree(p); deg {
			case 0:
				return nil, fmt.Errorf("%w: isolated open cell at %v", ErrInvalidInput, p)
			case 1:
				return nil, fmt.Errorf("%w: cell %v has degree 1 after pruning, want 0, 2 or at least 3", ErrInvariant, p)
			case 2:
			default:
				junctions[p] = true
			}
		}
	}

	return junctions, nil
}
