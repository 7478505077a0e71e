package grid

// Components finds all contiguous regions of cells for which open returns
// true, under 4-connectivity. Each component lists its positions in BFS
// order; components are ordered by their first cell in row-major order.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components(open func(rune) bool) [][]Position {
	seen := make([]bool, g.width*g.height)
	var comps [][]Position

	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			p0 := Position{Row: r, Col: c}
			if !open(g.cells[r][c]) || seen[g.Index(p0)] {
				continue
			}
			queue := []Position{p0}
			seen[g.Index(p0)] = true

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range Directions {
					v := ApplyDirection(u, d)
					if !g.InBounds(v) || !open(g.cells[v.Row][v.Col]) {
						continue
					}
					if vi := g.Index(v); !seen[vi] {
						seen[vi] = true
						queue = append(queue, v)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Labels returns a row-major slice mapping each cell to its component number
// (as returned by Components), or -1 for cells that are not open.
func (g *Grid) Labels(open func(rune) bool) []int {
	labels := make([]int, g.width*g.height)
	for i := range labels {
		labels[i] = -1
	}
	for id, comp := range g.Components(open) {
		for _, p := range comp {
			labels[g.Index(p)] = id
		}
	}
	return labels
}
