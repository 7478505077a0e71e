// Package mazepath finds the cheapest way through a character maze when
// turning costs far more than moving, and recovers every cell that lies on
// any cheapest way.
//
// 🚀 What is in the box?
//
//	• Grid primitives: positions, compass directions, a mutable rune grid
//	• Frontier: an indexed binary heap with true decrease-key
//	• A*: generic best-first search over any comparable state
//	• Maze pipeline: dead-end pruning, junction detection, corridor
//	  reduction, search, and enumeration of every optimal route
//	• CLI: plain, gzip or zstd input; text or YAML report; coloured drawing
//
// Packages:
//
//	grid/          Position, Direction, Grid, loader, open-cell components
//	frontier/      PriorityFrontier keyed on int with FIFO tie-break
//	astar/         Search, Result, Neighbor, PathCost
//	maze/          Maze, PruneDeadEnds, Junctions, Reduce, Enumerate, Solve
//	config/        YAML settings for costs, markers and facing
//	render/        lipgloss drawing of a solved maze
//	cmd/mazepath/  command-line front end
//
// Quick ASCII example (S faces east, E is the goal):
//
//	###########
//	####...####
//	####.#.####
//	#S...#...E#
//	###########
//
// One corridor, twelve moves and four turns: cost 4012 at the default
// weights of 1 per move and 1000 per turn.
//
//	go install github.com/katalvlaran/mazepath/cmd/mazepath@latest
package mazepath
