package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/maze"
)

func st(r, c int, d grid.Direction) maze.State {
	return maze.State{Pos: grid.Position{Row: r, Col: c}, Facing: d}
}

func TestStepCost(t *testing.T) {
	costs := maze.DefaultCosts()
	cases := []struct {
		name     string
		from, to maze.State
		want     int
		err      bool
	}{
		{"Forward", st(3, 3, grid.East), st(3, 4, grid.East), 1, false},
		{"Clockwise", st(3, 3, grid.East), st(3, 3, grid.South), 1000, false},
		{"CounterClockwise", st(3, 3, grid.East), st(3, 3, grid.North), 1000, false},
		{"Flip", st(3, 3, grid.East), st(3, 3, grid.West), 0, true},
		{"Stay", st(3, 3, grid.East), st(3, 3, grid.East), 0, true},
		{"Sideways", st(3, 3, grid.East), st(4, 3, grid.East), 0, true},
		{"MoveAndTurn", st(3, 3, grid.East), st(3, 4, grid.South), 0, true},
		{"Backwards", st(3, 3, grid.East), st(3, 2, grid.East), 0, true},
		{"Jump", st(3, 3, grid.East), st(3, 5, grid.East), 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := maze.StepCost(tc.from, tc.to, costs)
			if tc.err {
				assert.ErrorIs(t, err, maze.ErrInvariant)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPathCost(t *testing.T) {
	path := []maze.State{
		st(1, 1, grid.East),
		st(1, 2, grid.East),
		st(1, 2, grid.North),
		st(0, 2, grid.North),
	}
	got, err := maze.PathCost(path, maze.Costs{Move: 2, Turn: 5})
	require.NoError(t, err)
	assert.Equal(t, 9, got)

	_, err = maze.PathCost(append(path, st(5, 5, grid.North)), maze.DefaultCosts())
	assert.ErrorIs(t, err, maze.ErrInvariant)
}

func TestRawNeighbors(t *testing.T) {
	m := fixture(t, "tiny16.txt")
	costs := maze.DefaultCosts()

	nbs := m.RawNeighbors(maze.State{Pos: m.Start(), Facing: grid.East}, costs)
	require.Len(t, nbs, 3)
	assert.Equal(t, st(3, 2, grid.East), nbs[0].State)
	assert.Equal(t, 1, nbs[0].Cost)
	assert.Equal(t, 1000, nbs[1].Cost)
	assert.Equal(t, 1000, nbs[2].Cost)

	nbs = m.RawNeighbors(maze.State{Pos: m.Start(), Facing: grid.West}, costs)
	assert.Len(t, nbs, 2, "a wall ahead leaves only the turns")
}
