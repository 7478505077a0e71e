// Package astar implements a generic A* search over any comparable state type.
//
// The caller supplies the start state, a goal predicate, an admissible and
// consistent heuristic, and a neighbour function. The search keeps a
// best-known cost map (gScore, absent = +∞), a parent map for path
// reconstruction, and a frontier.Frontier keyed on f = g + h with true
// decrease-key.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for V expanded states and E relaxed transitions.
//   - Space: O(V) for gScore, parent map and frontier.
//
// Notes on implementation choices:
//
//   - Neighbour costs are validated as they are produced; a negative cost
//     aborts with ErrNegativeCost rather than producing a wrong answer.
//   - The heuristic is not checked for admissibility; that is the caller's
//     responsibility. Negative estimates are rejected.
//   - Given deterministic neighbour order, the returned path is deterministic:
//     the frontier breaks key ties by insertion order.
package astar

import (
	"fmt"

	"github.com/katalvlaran/mazepath/frontier"
)

// Search runs A* from start until goal(state) holds for a popped state.
//
// Returns:
//
//   - Result with Found=true, the path start…goal and its cost, or
//   - Result with Found=false if every reachable state was expanded without
//     satisfying goal (no error), or
//   - an error for nil functions, negative costs or heuristics, or when the
//     expansion limit is reached.
func Search[S comparable](
	start S,
	goal func(S) bool,
	heuristic func(S) int,
	neighbors func(S) []Neighbor[S],
	opts ...Option[S],
) (Result[S], error) {
	if goal == nil || heuristic == nil || neighbors == nil {
		return Result[S]{}, ErrNilFunc
	}

	cfg := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner[S]{
		goal:      goal,
		heuristic: heuristic,
		neighbors: neighbors,
		options:   cfg,
		gScore:    make(map[S]int),
		cameFrom:  make(map[S]S),
		open:      frontier.New[S](),
	}
	if err := r.init(start); err != nil {
		return Result[S]{}, err
	}

	return r.process()
}

// runner holds the mutable state for a single search.
type runner[S comparable] struct {
	goal      func(S) bool
	heuristic func(S) int
	neighbors func(S) []Neighbor[S]
	options   Options[S]

	gScore   map[S]int // best-known cost from start; absent means +∞
	cameFrom map[S]S   // parent on the best-known path
	open     *frontier.Frontier[S]
	expanded int
}

// init seeds the frontier with the start state at f = h(start).
func (r *runner[S]) init(start S) error {
	h, err := r.estimate(start)
	if err != nil {
		return err
	}
	r.gScore[start] = 0

	return r.open.Insert(start, h)
}

// process is the main loop: pop the minimum-f state, stop on goal, else relax.
func (r *runner[S]) process() (Result[S], error) {
	for !r.open.IsEmpty() {
		current, _, err := r.open.PopMin()
		if err != nil {
			return Result[S]{}, err
		}
		r.expanded++
		g := r.gScore[current]

		if r.options.OnExpand != nil {
			r.options.OnExpand(current, g)
		}

		if r.goal(current) {
			return Result[S]{
				Path:     reconstructPath(r.cameFrom, current),
				Cost:     g,
				Expanded: r.expanded,
				Found:    true,
			}, nil
		}

		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return Result[S]{Expanded: r.expanded}, fmt.Errorf("%w: %d", ErrExpansionLimit, r.expanded)
		}

		if err = r.relax(current, g); err != nil {
			return Result[S]{Expanded: r.expanded}, err
		}
	}

	return Result[S]{Expanded: r.expanded}, nil
}

// relax tries every neighbour of u and records strictly better paths.
func (r *runner[S]) relax(u S, g int) error {
	for _, nb := range r.neighbors(u) {
		if nb.Cost < 0 {
			return fmt.Errorf("%w: %v → %v cost=%d", ErrNegativeCost, u, nb.State, nb.Cost)
		}
		tentative := g + nb.Cost
		if best, seen := r.gScore[nb.State]; seen && tentative >= best {
			continue
		}
		h, err := r.estimate(nb.State)
		if err != nil {
			return err
		}
		r.cameFrom[nb.State] = u
		r.gScore[nb.State] = tentative
		if err = r.open.Upsert(nb.State, tentative+h); err != nil {
			return err
		}
	}

	return nil
}

func (r *runner[S]) estimate(s S) (int, error) {
	h := r.heuristic(s)
	if h < 0 {
		return 0, fmt.Errorf("%w: h(%v)=%d", ErrNegativeHeuristic, s, h)
	}
	return h, nil
}

// reconstructPath follows parent links from current back to the start and
// returns the path in traversal order.
func reconstructPath[S comparable](cameFrom map[S]S, current S) []S {
	path := []S{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// PathCost sums cost(path[i], path[i+1]) over consecutive states.
// The first error returned by cost is propagated.
func PathCost[S comparable](path []S, cost func(from, to S) (int, error)) (int, error) {
	total := 0
	for i := 0; i+1 < len(path); i++ {
		c, err := cost(path[i], path[i+1])
		if err != nil {
			return 0, err
		}
		total += c
	}
	return total, nil
}
