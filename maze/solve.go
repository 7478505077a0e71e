package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/grid"
)

// Solution is the outcome of Solve or SolveRaw.
//
// Path is the cheapest route expanded to unit steps: consecutive states
// differ by one forward move or one 90° turn. Tiles lists, in row-major
// order, every cell on some cheapest route when enumeration ran, and the
// cells of Path otherwise.
type Solution struct {
	Found bool
	Cost  int
	Path  []State
	Tiles []grid.Position

	Pruned    int // cells filled by PruneDeadEnds
	Junctions int
	Edges     int
	Expanded  int // A* pops

	// Enumeration is nil when enumeration was disabled or no route exists.
	Enumeration *Enumeration
}

// Solve runs the full pipeline on m: prune dead ends, detect junctions,
// reduce corridors, search the reduced graph with A*, expand the winning
// path, then (unless disabled) enumerate every route of the same cost.
//
// Solve rewrites m in place (pruned cells carry the fill marker); pass
// m.Clone() to keep the original. A maze whose start and end are not
// connected yields Found=false and no error.
func Solve(m *Maze, opts ...Option) (*Solution, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	log := o.Logger.With("start", m.start.String(), "end", m.end.String())

	sol := &Solution{}
	if !m.Connected() {
		log.Debug("start and end are not connected")
		return sol, nil
	}

	sol.Pruned = m.PruneDeadEnds()
	log.Debug("pruned dead ends", "cells", sol.Pruned)

	rg, err := m.Reduce(o.Costs)
	if err != nil {
		return nil, err
	}
	sol.Junctions, sol.Edges = rg.JunctionCount(), rg.Len()
	log.Debug("reduced corridors", "junctions", sol.Junctions, "edges", sol.Edges)

	start := State{Pos: m.start, Facing: o.StartFacing}
	res, err := astar.Search(start, m.atEnd, manhattan(m.end, o.Costs.Move), rg.Neighbors, searchOptions(o)...)
	sol.Expanded = res.Expanded
	if err != nil {
		return sol, fmt.Errorf("maze: reduced search: %w", err)
	}
	log.Debug("searched reduced graph", "found", res.Found, "cost", res.Cost, "expanded", res.Expanded)
	if !res.Found {
		return sol, nil
	}

	sol.Found, sol.Cost = true, res.Cost
	if sol.Path, err = rg.Expand(res.Path); err != nil {
		return sol, err
	}
	c, err := PathCost(sol.Path, o.Costs)
	if err != nil {
		return sol, err
	}
	if c != sol.Cost {
		return sol, fmt.Errorf("%w: expanded path costs %d, search reported %d", ErrInvariant, c, sol.Cost)
	}

	if !o.Enumerate {
		sol.Tiles = pathTiles(sol.Path)
		return sol, nil
	}

	sol.Enumeration, err = rg.Enumerate(start, m.end, sol.Cost)
	if sol.Enumeration != nil {
		sol.Tiles = sol.Enumeration.SortedCells()
		log.Debug("enumerated optimal paths",
			"paths", sol.Enumeration.Paths,
			"tiles", len(sol.Tiles),
			"authoritative", sol.Enumeration.Authoritative)
	}
	if err != nil {
		return sol, err
	}

	return sol, nil
}

// SolveRaw searches the unreduced oriented graph of every open cell with
// A*, without pruning or enumeration. It works on a clone, so m is not
// modified. Its cost must equal Solve's on every maze; it exists to check
// exactly that.
func SolveRaw(m *Maze, opts ...Option) (*Solution, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	c := m.Clone()
	neighbors := func(s State) []astar.Neighbor[State] { return c.RawNeighbors(s, o.Costs) }

	start := State{Pos: c.start, Facing: o.StartFacing}
	res, err := astar.Search(start, c.atEnd, manhattan(c.end, o.Costs.Move), neighbors, searchOptions(o)...)
	sol := &Solution{Expanded: res.Expanded}
	if err != nil {
		return sol, fmt.Errorf("maze: raw search: %w", err)
	}
	o.Logger.Debug("searched raw graph", "found", res.Found, "cost", res.Cost, "expanded", res.Expanded)
	if !res.Found {
		return sol, nil
	}

	sol.Found, sol.Cost, sol.Path = true, res.Cost, res.Path
	sol.Tiles = pathTiles(sol.Path)

	return sol, nil
}

// IsExpansionLimit reports whether err came from WithMaxExpansions.
func IsExpansionLimit(err error) bool {
	return errors.Is(err, astar.ErrExpansionLimit)
}

func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = DefaultOptions().Logger
	}
	return o, o.validate()
}

func searchOptions(o Options) []astar.Option[State] {
	if o.MaxExpansions <= 0 {
		return nil
	}
	return []astar.Option[State]{astar.WithMaxExpansions[State](o.MaxExpansions)}
}

func (m *Maze) atEnd(s State) bool { return s.Pos == m.end }

// pathTiles returns the distinct positions of path in row-major order.
func pathTiles(path []State) []grid.Position {
	set := make(map[grid.Position]bool, len(path))
	for _, s := range path {
		set[s.Pos] = true
	}
	return sortedPositions(set)
}
