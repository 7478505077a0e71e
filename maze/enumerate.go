package maze

import (
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
)

// Enumeration is the result of Enumerate.
//
// Cells is the union of every cell on every discovered optimal path,
// corridor cells included. Paths counts the distinct oriented state
// sequences found; two turns clockwise and two turns counter-clockwise
// count as different sequences over the same cells. Authoritative is false
// when enumeration stopped on an invariant violation; Cells then holds only
// what had been found so far.
type Enumeration struct {
	Cells         map[grid.Position]bool
	Paths         int
	Authoritative bool
}

// SortedCells returns Cells in row-major order.
func (e *Enumeration) SortedCells() []grid.Position {
	return sortedPositions(e.Cells)
}

// EnumerateOption configures Enumerate.
type EnumerateOption func(*enumerateConfig)

type enumerateConfig struct {
	lowerBound bool
	maxPaths   int
}

// WithoutLowerBound disables pruning by exact cost-to-goal, leaving only the
// budget and the revisit rule. Search time then grows with the budget; meant
// for small mazes and for checking the bound itself.
func WithoutLowerBound() EnumerateOption {
	return func(c *enumerateConfig) {
		c.lowerBound = false
	}
}

// WithMaxPaths stops after n optimal paths; the result is then not
// authoritative. Non-positive n means no limit.
func WithMaxPaths(n int) EnumerateOption {
	return func(c *enumerateConfig) {
		c.maxPaths = n
	}
}

// enumFrame is one level of the explicit DFS stack.
type enumFrame struct {
	state     State
	remaining int
	cells     []grid.Position // cells entered to reach state; nil for turns
	next      int             // next successor index to try: 0 edge, 1 cw, 2 ccw
}

// Enumerate finds every path from start to any state at goal whose cost is
// exactly budget, where budget is the optimal cost found by Solve.
//
// The DFS keeps an explicit stack. A branch is cut when the remaining budget
// goes negative, when it would re-enter a position already on the path other
// than the current one, when it would repeat an oriented state, or (unless
// WithoutLowerBound) when the remaining budget is below the exact
// cost-to-goal from DistancesToGoal. The bound never cuts an optimal path.
//
// Reaching goal with budget left over means budget was not optimal: the
// partial Enumeration is returned with Authoritative=false together with
// ErrInvariant.
func (rg *ReducedGraph) Enumerate(start State, goal grid.Position, budget int, opts ...EnumerateOption) (*Enumeration, error) {
	cfg := enumerateConfig{lowerBound: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	res := &Enumeration{Cells: make(map[grid.Position]bool), Authoritative: true}
	if budget < 0 {
		return res, fmt.Errorf("%w: negative budget %d", ErrInvalidInput, budget)
	}

	var bound map[State]int
	if cfg.lowerBound {
		bound = rg.DistancesToGoal(goal)
		d, ok := bound[start]
		if !ok {
			return res, nil
		}
		if d > budget {
			res.Authoritative = false
			return res, fmt.Errorf("%w: budget %d is below the cheapest cost %d from %v", ErrInvariant, budget, d, start)
		}
	}

	onPath := map[grid.Position]int{start.Pos: 1}
	seen := map[State]bool{start: true}
	stack := []enumFrame{{state: start, remaining: budget}}

	pop := func() {
		f := stack[len(stack)-1]
		onPath[f.state.Pos]--
		delete(seen, f.state)
		stack = stack[:len(stack)-1]
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next == 0 && top.state.Pos == goal {
			if top.remaining != 0 {
				res.Authoritative = false
				return res, fmt.Errorf("%w: reached %v with %d of budget %d unspent", ErrInvariant, top.state, top.remaining, budget)
			}
			rg.record(res, stack)
			if cfg.maxPaths > 0 && res.Paths >= cfg.maxPaths {
				res.Authoritative = false
				return res, nil
			}
			pop()
			continue
		}
		if top.next > 2 {
			pop()
			continue
		}

		idx := top.next
		top.next++
		next, cost, cells, ok := rg.successor(top.state, idx)
		if !ok {
			continue
		}
		remaining := top.remaining - cost
		if remaining < 0 || seen[next] {
			continue
		}
		if next.Pos != top.state.Pos && onPath[next.Pos] > 0 {
			continue
		}
		if bound != nil {
			if d, ok := bound[next]; !ok || remaining < d {
				continue
			}
		}

		onPath[next.Pos]++
		seen[next] = true
		stack = append(stack, enumFrame{state: next, remaining: remaining, cells: cells})
	}

	return res, nil
}

// successor returns the idx-th candidate move from s: 0 is the stored
// corridor edge, 1 and 2 are the clockwise and counter-clockwise turns.
func (rg *ReducedGraph) successor(s State, idx int) (State, int, []grid.Position, bool) {
	switch idx {
	case 0:
		e, ok := rg.edges[s]
		if !ok {
			return State{}, 0, nil, false
		}
		return e.To, e.Cost, e.Cells, true
	case 1:
		return State{Pos: s.Pos, Facing: s.Facing.Clockwise()}, rg.costs.Turn, nil, true
	case 2:
		return State{Pos: s.Pos, Facing: s.Facing.CounterClockwise()}, rg.costs.Turn, nil, true
	}
	return State{}, 0, nil, false
}

// record adds the path currently on the stack to res.
func (rg *ReducedGraph) record(res *Enumeration, stack []enumFrame) {
	res.Paths++
	for _, f := range stack {
		res.Cells[f.state.Pos] = true
		for _, c := range f.cells {
			res.Cells[c] = true
		}
	}
}
