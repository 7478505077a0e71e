// Package maze finds the cheapest route through a character maze in which
// moving one cell and turning 90° have different costs, and recovers every
// cell that lies on some cheapest route.
//
// What:
//
//   - Maze: a grid.Grid with one start and one end marker, validated on
//     construction.
//   - PruneDeadEnds: fills branchless dead-end corridors until a fixpoint.
//   - Junctions: classifies the remaining open cells as junctions (start,
//     end, or three or more open neighbours) or corridor cells.
//   - Reduce: walks every corridor between junctions and builds a
//     ReducedGraph of oriented junction states with summed move/turn costs.
//   - Solve: prune → junctions → reduce → A* → enumerate, in one call.
//   - SolveRaw: A* over the unreduced oriented-cell graph, for cross-checks.
//   - Enumerate: exhaustive, budget-bounded DFS over the ReducedGraph that
//     returns the union of cells of every optimal path.
//
// Cost model:
//
//	A State is a (Position, Facing) pair. Moving one cell forward costs
//	Costs.Move; rotating 90° in place costs Costs.Turn. The defaults are
//	1 and 1000.
//
// Complexity:
//
//   - PruneDeadEnds:   O(W×H) time, O(W×H) queue.
//   - Reduce:          O(W×H) time; every corridor cell is walked at most twice.
//   - Solve:           O(J log J) A* over J oriented junction states.
//   - Enumerate:       proportional to the number of optimal paths; branches
//     that cannot finish within the budget are cut with exact cost-to-goal
//     bounds.
//
// Every traversal is iterative, so stack depth does not grow with maze size.
//
// Errors:
//
//   - ErrInvalidInput: malformed grid, unknown character, missing or
//     repeated start/end marker, isolated open cell, invalid costs.
//   - ErrInvariant: a defect in pruning or reduction was detected (degree-1
//     cell after pruning, corridor with two continuations, enumerator finding
//     a path cheaper than the supplied optimum).
//
// A maze without any route from start to end is not an error:
// Solution.Found is false.
package maze
