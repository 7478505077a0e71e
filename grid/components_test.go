package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/grid"
)

func isOpen(r rune) bool { return r != '#' }

// TestComponents_Separated checks that a wall splits the open cells in two.
func TestComponents_Separated(t *testing.T) {
	g, err := grid.FromLines([]string{
		"..#..",
		"..#..",
		"#####",
		"....#",
	})
	require.NoError(t, err)

	comps := g.Components(isOpen)
	require.Len(t, comps, 3)
	assert.Len(t, comps[0], 4)
	assert.Equal(t, grid.Position{Row: 0, Col: 0}, comps[0][0])
	assert.Len(t, comps[1], 4)
	assert.Equal(t, grid.Position{Row: 0, Col: 3}, comps[1][0])
	assert.Len(t, comps[2], 4)
}

// TestComponents_NoDiagonal verifies diagonal neighbours are not joined.
func TestComponents_NoDiagonal(t *testing.T) {
	g, err := grid.FromLines([]string{".#", "#."})
	require.NoError(t, err)
	assert.Len(t, g.Components(isOpen), 2)
}

func TestLabels(t *testing.T) {
	g, err := grid.FromLines([]string{".#.", ".#."})
	require.NoError(t, err)

	labels := g.Labels(isOpen)
	assert.Equal(t, []int{0, -1, 1, 0, -1, 1}, labels)
}
