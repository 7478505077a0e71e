// Package astar defines the types, options and sentinel errors for the
// generic best-first (A*) search.
package astar

import "errors"

// Sentinel errors returned by Search.
var (
	// ErrNilFunc indicates that the goal, heuristic or neighbours function is nil.
	ErrNilFunc = errors.New("astar: goal, heuristic and neighbors must be non-nil")

	// ErrNegativeCost indicates a neighbour was reported with a negative edge cost.
	ErrNegativeCost = errors.New("astar: negative edge cost")

	// ErrNegativeHeuristic indicates the heuristic returned a negative estimate.
	ErrNegativeHeuristic = errors.New("astar: negative heuristic")

	// ErrExpansionLimit indicates the search hit WithMaxExpansions before finishing.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Neighbor is a state reachable from the current one at a non-negative cost.
type Neighbor[S comparable] struct {
	State S
	Cost  int
}

// Result contains the outcome of a search.
//
// Found is false when the frontier emptied without satisfying the goal;
// this is a normal outcome, not an error, and Path is then nil.
type Result[S comparable] struct {
	Path     []S // start … goal inclusive, in traversal order
	Cost     int // gScore of the goal state
	Expanded int // number of states popped from the frontier
	Found    bool
}

// Options configures Search.
//
// OnExpand      – optional hook called with every popped state and its gScore.
// MaxExpansions – stop with ErrExpansionLimit after this many pops; 0 means no limit.
type Options[S comparable] struct {
	OnExpand      func(state S, g int)
	MaxExpansions int
}

// Option is a functional option for Search.
type Option[S comparable] func(*Options[S])

// WithOnExpand installs fn as an expansion hook.
func WithOnExpand[S comparable](fn func(state S, g int)) Option[S] {
	return func(o *Options[S]) {
		o.OnExpand = fn
	}
}

// WithMaxExpansions caps the number of expansions. Non-positive values disable the cap.
func WithMaxExpansions[S comparable](n int) Option[S] {
	return func(o *Options[S]) {
		if n < 0 {
			n = 0
		}
		o.MaxExpansions = n
	}
}

// DefaultOptions returns Options with no hook and no expansion cap.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{}
}
