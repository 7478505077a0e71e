package maze

import "github.com/katalvlaran/mazepath/grid"

// PruneDeadEnds fills every branchless dead-end corridor with the fill
// marker and returns the number of cells filled.
//
// A strict dead end is an open cell, other than start and end, with more
// than two blocked orthogonal neighbours. Filling one can expose another one
// step back, so filled cells re-examine their neighbours through a FIFO
// queue until nothing changes. Calling it again on a pruned maze fills
// nothing.
//
// Complexity: O(W×H) time; each cell is filled at most once and re-examined
// at most four times.
func (m *Maze) PruneDeadEnds() int {
	var queue []grid.Position
	for r := 0; r < m.g.Height(); r++ {
		for c := 0; c < m.g.Width(); c++ {
			if p := (grid.Position{Row: r, Col: c}); m.isDeadEnd(p) {
				queue = append(queue, p)
			}
		}
	}

	filled := 0
	for qi := 0; qi < len(queue); qi++ {
		p := queue[qi]
		if !m.isDeadEnd(p) {
			continue // already filled through another path
		}
		m.g.Set(p, m.markers.Fill)
		filled++
		for _, d := range grid.Directions {
			if q := grid.ApplyDirection(p, d); m.isDeadEnd(q) {
				queue = append(queue, q)
			}
		}
	}

	return filled
}

// isDeadEnd reports whether p is a plain open cell with at most one open neighbour.
func (m *Maze) isDeadEnd(p grid.Position) bool {
	if m.g.Get(p) != m.markers.Open {
		return false
	}
	return 4-m.Degree(p) > 2
}
