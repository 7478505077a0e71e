package maze

import (
	"fmt"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/grid"
)

// RawNeighbors lists the successors of s in the unreduced oriented graph:
// one step forward when the next cell is open, then the clockwise and
// counter-clockwise in-place turns.
func (m *Maze) RawNeighbors(s State, costs Costs) []astar.Neighbor[State] {
	out := make([]astar.Neighbor[State], 0, 3)
	if ahead := grid.ApplyDirection(s.Pos, s.Facing); m.Open(ahead) {
		out = append(out, astar.Neighbor[State]{State: State{Pos: ahead, Facing: s.Facing}, Cost: costs.Move})
	}
	return append(out,
		astar.Neighbor[State]{State: State{Pos: s.Pos, Facing: s.Facing.Clockwise()}, Cost: costs.Turn},
		astar.Neighbor[State]{State: State{Pos: s.Pos, Facing: s.Facing.CounterClockwise()}, Cost: costs.Turn},
	)
}

// StepCost prices a single unit transition: a forward move in the current
// facing costs Move, a 90° turn in place costs Turn. Anything else (a move
// and a turn at once, a 180° flip, a jump) is ErrInvariant.
func StepCost(from, to State, costs Costs) (int, error) {
	if from.Pos == to.Pos {
		angle, err := grid.InnerAngle(from.Facing, to.Facing)
		if err != nil {
			return 0, fmt.Errorf("%w: %v → %v: %w", ErrInvariant, from, to, err)
		}
		if angle != 90 {
			return 0, fmt.Errorf("%w: %v → %v rotates %d°", ErrInvariant, from, to, angle)
		}
		return costs.Turn, nil
	}
	d, err := grid.DifferenceAsDirection(to.Pos, from.Pos)
	if err != nil {
		return 0, fmt.Errorf("%w: %v → %v: %w", ErrInvariant, from, to, err)
	}
	if d != from.Facing || d != to.Facing {
		return 0, fmt.Errorf("%w: %v → %v moves %v while facing %v", ErrInvariant, from, to, d, from.Facing)
	}
	return costs.Move, nil
}

// PathCost prices a unit-step path with StepCost.
func PathCost(path []State, costs Costs) (int, error) {
	return astar.PathCost(path, func(a, b State) (int, error) { return StepCost(a, b, costs) })
}

// manhattan is the admissible, consistent A* heuristic for both graphs:
// every corridor edge covers at least the Manhattan distance it closes.
func manhattan(goal grid.Position, move int) func(State) int {
	return func(s State) int {
		return s.Pos.Manhattan(goal) * move
	}
}
