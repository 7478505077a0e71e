package maze_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/maze"
)

// fixture parses testdata/name.
func fixture(t testing.TB, name string) *maze.Maze {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer f.Close()

	m, err := maze.Parse(f)
	require.NoError(t, err)
	return m
}

func mustParse(t testing.TB, s string) *maze.Maze {
	t.Helper()
	m, err := maze.ParseString(s)
	require.NoError(t, err)
	return m
}

// generate carves a perfect maze over the odd cells of an h×w wall grid with
// a randomised depth-first walk, then knocks out inner walls with the given
// probability to create loops. S sits bottom-left, E top-right. h and w must
// be odd and at least 5.
func generate(rng *rand.Rand, h, w int, density float64) string {
	cells := make([][]rune, h)
	for r := range cells {
		cells[r] = []rune(strings.Repeat("#", w))
	}

	type cell struct{ r, c int }
	stack := []cell{{1, 1}}
	cells[1][1] = '.'
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		var next []grid.Direction
		for _, d := range grid.Directions {
			r, c := cur.r+2*d.DRow, cur.c+2*d.DCol
			if r > 0 && r < h-1 && c > 0 && c < w-1 && cells[r][c] == '#' {
				next = append(next, d)
			}
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := next[rng.Intn(len(next))]
		cells[cur.r+d.DRow][cur.c+d.DCol] = '.'
		cells[cur.r+2*d.DRow][cur.c+2*d.DCol] = '.'
		stack = append(stack, cell{cur.r + 2*d.DRow, cur.c + 2*d.DCol})
	}

	for r := 1; r < h-1; r++ {
		for c := 1; c < w-1; c++ {
			if cells[r][c] == '#' && rng.Float64() < density {
				cells[r][c] = '.'
			}
		}
	}
	cells[h-2][1] = 'S'
	cells[1][w-2] = 'E'

	var sb strings.Builder
	for _, row := range cells {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func positions(ps ...[2]int) []grid.Position {
	out := make([]grid.Position, len(ps))
	for i, p := range ps {
		out[i] = grid.Position{Row: p[0], Col: p[1]}
	}
	return out
}
