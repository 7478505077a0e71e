package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/maze"
)

func TestJunctions_DegreeProperty(t *testing.T) {
	for _, file := range []string{"test16.txt", "second16.txt"} {
		t.Run(file, func(t *testing.T) {
			m := fixture(t, file)
			m.PruneDeadEnds()
			js, err := m.Junctions()
			require.NoError(t, err)

			assert.True(t, js[m.Start()])
			assert.True(t, js[m.End()])
			for p := range js {
				if p == m.Start() || p == m.End() {
					continue
				}
				assert.GreaterOrEqual(t, m.Degree(p), 3, "junction %v", p)
			}
		})
	}
}

func TestJunctions_Counts(t *testing.T) {
	cases := []struct {
		file string
		want int
	}{
		{"tiny16.txt", 2},
		{"symmetric16.txt", 2},
		{"loop16.txt", 3},
		{"test16.txt", 15},
		{"second16.txt", 11},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			m := fixture(t, tc.file)
			m.PruneDeadEnds()
			js, err := m.Junctions()
			require.NoError(t, err)
			assert.Len(t, js, tc.want)
		})
	}
}

func TestJunctions_UnprunedDeadEndIsInvariantViolation(t *testing.T) {
	m := fixture(t, "test16.txt")
	_, err := m.Junctions()
	assert.ErrorIs(t, err, maze.ErrInvariant)
}

func TestJunctions_IsolatedCellIsInvalidInput(t *testing.T) {
	m := mustParse(t, "#######\n#S.E#.#\n#######\n")
	_, err := m.Junctions()
	assert.ErrorIs(t, err, maze.ErrInvalidInput)
	assert.Contains(t, err.Error(), grid.Position{Row: 1, Col: 5}.String())
}
