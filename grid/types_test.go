package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/grid"
)

func TestRotations(t *testing.T) {
	cw := map[grid.Direction]grid.Direction{
		grid.North: grid.East,
		grid.East:  grid.South,
		grid.South: grid.West,
		grid.West:  grid.North,
	}
	for from, want := range cw {
		assert.Equal(t, want, from.Clockwise(), "%v clockwise", from)
		assert.Equal(t, from, want.CounterClockwise(), "%v counter-clockwise", want)
		assert.Equal(t, from, from.Clockwise().Clockwise().Opposite())
	}
}

func TestInnerAngle(t *testing.T) {
	cases := []struct {
		a, b grid.Direction
		want int
	}{
		{grid.North, grid.North, 0},
		{grid.North, grid.East, 90},
		{grid.North, grid.West, 90},
		{grid.North, grid.South, 180},
		{grid.East, grid.West, 180},
	}
	for _, tc := range cases {
		got, err := grid.InnerAngle(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "InnerAngle(%v, %v)", tc.a, tc.b)
	}

	_, err := grid.InnerAngle(grid.North, grid.Direction{DRow: 1, DCol: 1})
	assert.ErrorIs(t, err, grid.ErrNotUnit)
	_, err = grid.InnerAngle(grid.Direction{}, grid.East)
	assert.ErrorIs(t, err, grid.ErrNotUnit)
}

func TestApplyAndDifference(t *testing.T) {
	p := grid.Position{Row: 3, Col: 4}
	for _, d := range grid.Directions {
		q := grid.ApplyDirection(p, d)
		got, err := grid.DifferenceAsDirection(q, p)
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	_, err := grid.DifferenceAsDirection(grid.Position{Row: 5, Col: 4}, p)
	assert.ErrorIs(t, err, grid.ErrNotUnit)
	_, err = grid.DifferenceAsDirection(p, p)
	assert.ErrorIs(t, err, grid.ErrNotUnit)
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]grid.Direction{
		"north": grid.North, "E": grid.East, " South ": grid.South, "<": grid.West,
	} {
		got, err := grid.ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := grid.ParseDirection("up-left")
	assert.ErrorIs(t, err, grid.ErrNotUnit)
}

func TestDirectionStringAndArrow(t *testing.T) {
	assert.Equal(t, "east", grid.East.String())
	assert.Equal(t, '^', grid.North.Arrow())
	assert.Equal(t, "direction(2,0)", grid.Direction{DRow: 2}.String())
	assert.False(t, grid.Direction{DRow: 2}.Valid())
}

func TestManhattan(t *testing.T) {
	a := grid.Position{Row: 1, Col: 7}
	b := grid.Position{Row: 4, Col: 2}
	assert.Equal(t, 8, a.Manhattan(b))
	assert.Equal(t, 8, b.Manhattan(a))
	assert.Equal(t, "(1,7)", a.String())
}
