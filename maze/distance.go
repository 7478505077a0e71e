package maze

import (
	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/grid"
)

// DistancesToGoal returns the exact cheapest cost from every oriented
// junction state to any state at goal, by running Dijkstra backwards from
// the four goal states over reversed corridor edges and in-place turns.
// States that cannot reach goal are absent from the map.
//
// Complexity: O(J log J) for J oriented junction states.
func (rg *ReducedGraph) DistancesToGoal(goal grid.Position) map[State]int {
	reverse := make(map[State][]Edge, len(rg.edges))
	for _, e := range rg.edges {
		reverse[e.To] = append(reverse[e.To], e)
	}

	dist := make(map[State]int, len(rg.junctions)*4)
	open := frontier.New[State]()
	for _, d := range grid.Directions {
		s := State{Pos: goal, Facing: d}
		dist[s] = 0
		_ = open.Insert(s, 0)
	}

	relax := func(s State, nd int) {
		if old, ok := dist[s]; ok && nd >= old {
			return
		}
		dist[s] = nd
		_ = open.Upsert(s, nd)
	}

	for !open.IsEmpty() {
		s, d, _ := open.PopMin()
		for _, e := range reverse[s] {
			relax(e.From, d+e.Cost)
		}
		// A turn is reversible, so both rotations lead back here at the same cost.
		relax(State{Pos: s.Pos, Facing: s.Facing.Clockwise()}, d+rg.costs.Turn)
		relax(State{Pos: s.Pos, Facing: s.Facing.CounterClockwise()}, d+rg.costs.Turn)
	}

	return dist
}
