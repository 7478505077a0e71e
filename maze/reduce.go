package maze

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/grid"
)

// Edge summarises one corridor walk between two junctions.
//
// From is the origin junction and the direction the walk left it; To is the
// destination junction and the facing on arrival. Cells lists every cell
// entered, destination included, in walking order.
type Edge struct {
	From, To State
	Steps    int // moves before the final move onto To.Pos
	Turns    int
	Cost     int // (Steps+1)×Move + Turns×Turn
	Cells    []grid.Position
}

// ReducedGraph is the weighted directed graph of oriented junction states.
// It is built once by Reduce and is read-only afterwards.
//
// Only corridor edges are stored. In-place 90° turns are synthesised by
// Neighbors at Costs.Turn each.
type ReducedGraph struct {
	edges     map[State]Edge
	junctions map[grid.Position]bool
	costs     Costs
}

// Reduce walks the corridor leaving every junction in every direction with an
// open neighbour and returns the resulting graph. Junctions are visited in
// row-major order so edge discovery is deterministic.
//
// A walk that runs into a dead end yields no edge; a walk that returns to its
// own origin yields no edge. A corridor cell with both perpendicular
// continuations open, or a walk longer than the grid, is ErrInvariant.
// Errors from Junctions are returned unchanged.
func (m *Maze) Reduce(costs Costs) (*ReducedGraph, error) {
	if err := costs.Validate(); err != nil {
		return nil, err
	}
	junctions, err := m.Junctions()
	if err != nil {
		return nil, err
	}

	rg := &ReducedGraph{
		edges:     make(map[State]Edge, len(junctions)*2),
		junctions: junctions,
		costs:     costs,
	}
	w := &corridorWalker{m: m, junctions: junctions, costs: costs, limit: m.g.Width() * m.g.Height()}
	for _, j := range sortedPositions(junctions) {
		for _, d := range grid.Directions {
			if !m.Open(grid.ApplyDirection(j, d)) {
				continue
			}
			e, ok, err := w.walk(j, d)
			if err != nil {
				return nil, err
			}
			if ok {
				rg.edges[e.From] = e
			}
		}
	}

	return rg, nil
}

// corridorWalker follows one-cell-wide corridors between junctions.
type corridorWalker struct {
	m         *Maze
	junctions map[grid.Position]bool
	costs     Costs
	limit     int
}

// walk leaves origin facing d and follows the corridor to the next junction.
func (w *corridorWalker) walk(origin grid.Position, d grid.Direction) (Edge, bool, error) {
	pos := grid.ApplyDirection(origin, d)
	facing := d
	steps, turns := 0, 0
	cells := []grid.Position{pos}

	for !w.junctions[pos] {
		if steps > w.limit {
			return Edge{}, false, fmt.Errorf("%w: corridor from %v heading %v exceeds %d steps", ErrInvariant, origin, d, w.limit)
		}
		if ahead := grid.ApplyDirection(pos, facing); w.m.Open(ahead) {
			pos = ahead
			steps++
			cells = append(cells, pos)
			continue
		}

		cw, ccw := facing.Clockwise(), facing.CounterClockwise()
		cwOpen := w.m.Open(grid.ApplyDirection(pos, cw))
		ccwOpen := w.m.Open(grid.ApplyDirection(pos, ccw))
		switch {
		case cwOpen && ccwOpen:
			return Edge{}, false, fmt.Errorf("%w: corridor cell %v facing %v continues both %v and %v", ErrInvariant, pos, facing, cw, ccw)
		case cwOpen:
			facing = cw
		case ccwOpen:
			facing = ccw
		default:
			return Edge{}, false, nil
		}
		turns++
		pos = grid.ApplyDirection(pos, facing)
		steps++
		cells = append(cells, pos)
	}

	if pos == origin {
		return Edge{}, false, nil
	}

	return Edge{
		From:  State{Pos: origin, Facing: d},
		To:    State{Pos: pos, Facing: facing},
		Steps: steps,
		Turns: turns,
		Cost:  (steps+1)*w.costs.Move + turns*w.costs.Turn,
		Cells: cells,
	}, true, nil
}

// Edge returns the stored corridor edge leaving s, if any.
func (rg *ReducedGraph) Edge(s State) (Edge, bool) {
	e, ok := rg.edges[s]
	return e, ok
}

// Edges returns every stored edge ordered by origin position, then direction.
func (rg *ReducedGraph) Edges() []Edge {
	out := make([]Edge, 0, len(rg.edges))
	for _, e := range rg.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return stateLess(out[i].From, out[j].From) })
	return out
}

// Len returns the number of stored corridor edges.
func (rg *ReducedGraph) Len() int { return len(rg.edges) }

// JunctionCount returns the number of junction cells.
func (rg *ReducedGraph) JunctionCount() int { return len(rg.junctions) }

// IsJunction reports whether p is a junction of this graph.
func (rg *ReducedGraph) IsJunction(p grid.Position) bool { return rg.junctions[p] }

// Costs returns the weights the graph was built with.
func (rg *ReducedGraph) Costs() Costs { return rg.costs }

// Neighbors lists the successors of s: the stored corridor edge (if any),
// then the clockwise and counter-clockwise in-place turns.
func (rg *ReducedGraph) Neighbors(s State) []astar.Neighbor[State] {
	out := make([]astar.Neighbor[State], 0, 3)
	if e, ok := rg.edges[s]; ok {
		out = append(out, astar.Neighbor[State]{State: e.To, Cost: e.Cost})
	}
	return append(out,
		astar.Neighbor[State]{State: State{Pos: s.Pos, Facing: s.Facing.Clockwise()}, Cost: rg.costs.Turn},
		astar.Neighbor[State]{State: State{Pos: s.Pos, Facing: s.Facing.CounterClockwise()}, Cost: rg.costs.Turn},
	)
}

// Expand rewrites a path of junction states into unit steps: every
// consecutive pair of the result is either one forward move or one 90° turn
// in place. Consecutive states of path must be joined by a stored edge or
// by a single in-place turn.
func (rg *ReducedGraph) Expand(path []State) ([]State, error) {
	if len(path) == 0 {
		return nil, nil
	}
	out := []State{path[0]}
	for i := 1; i < len(path); i++ {
		prev, next := path[i-1], path[i]
		if prev.Pos == next.Pos {
			if _, err := StepCost(prev, next, rg.costs); err != nil {
				return nil, err
			}
			out = append(out, next)
			continue
		}
		e, ok := rg.edges[prev]
		if !ok || e.To != next {
			return nil, fmt.Errorf("%w: no corridor edge %v → %v", ErrInvariant, prev, next)
		}
		cur := prev
		for _, cell := range e.Cells {
			d, err := grid.DifferenceAsDirection(cell, cur.Pos)
			if err != nil {
				return nil, fmt.Errorf("%w: corridor %v: %w", ErrInvariant, prev, err)
			}
			if d != cur.Facing {
				cur = State{Pos: cur.Pos, Facing: d}
				out = append(out, cur)
			}
			cur = State{Pos: cell, Facing: d}
			out = append(out, cur)
		}
	}
	return out, nil
}

func sortedPositions(set map[grid.Position]bool) []grid.Position {
	out := make([]grid.Position, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return positionLess(out[i], out[j]) })
	return out
}

func positionLess(a, b grid.Position) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

func directionIndex(d grid.Direction) int {
	for i, x := range grid.Directions {
		if x == d {
			return i
		}
	}
	return len(grid.Directions)
}

func stateLess(a, b State) bool {
	if a.Pos != b.Pos {
		return positionLess(a.Pos, b.Pos)
	}
	return directionIndex(a.Facing) < directionIndex(b.Facing)
}
