package render_test

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/render"
)

const corridor = `###########
####...####
####.#.####
#S...#...E#
###########
`

func solved(t *testing.T, in string) (*maze.Maze, *maze.Solution) {
	t.Helper()
	m, err := maze.ParseString(in)
	require.NoError(t, err)
	sol, err := maze.Solve(m)
	require.NoError(t, err)
	return m, sol
}

func TestMaze_PlainMarksRoute(t *testing.T) {
	m, sol := solved(t, corridor)

	got := render.Maze(m, sol.Tiles, render.WithTheme(render.PlainTheme()))
	want := strings.Join([]string{
		"###########",
		"####OOO####",
		"####O#O####",
		"#SOOO#OOOE#",
		"###########",
	}, "\n") + "\n"
	assert.Equal(t, want, got)
}

func TestMaze_ShowsPrunedCells(t *testing.T) {
	m, sol := solved(t, "#######\n#S...E#\n###.###\n#######\n")

	got := render.Maze(m, sol.Tiles, render.WithTheme(render.PlainTheme()), render.WithTileRune('*'))
	assert.Equal(t, "#######\n#S***E#\n###?###\n#######\n", got)
}

func TestMaze_StyledOutputStripsToPlain(t *testing.T) {
	m, sol := solved(t, corridor)

	plain := render.Maze(m, sol.Tiles, render.WithTheme(render.PlainTheme()))
	styled := render.Maze(m, sol.Tiles)
	assert.Equal(t, plain, ansi.Strip(styled))
}

func TestMaze_WithoutTiles(t *testing.T) {
	m, err := maze.ParseString(corridor)
	require.NoError(t, err)

	assert.Equal(t, corridor, render.Maze(m, nil, render.WithTheme(render.PlainTheme())))
}

func TestSummary(t *testing.T) {
	_, sol := solved(t, corridor)

	out := ansi.Strip(render.Summary(sol))
	assert.Contains(t, out, "cost       4012")
	assert.Contains(t, out, "tiles      13")
	assert.Contains(t, out, "paths      1")

	empty := render.Summary(&maze.Solution{}, render.WithTheme(render.PlainTheme()))
	assert.True(t, strings.HasPrefix(empty, "no path"))
}

func TestNewTheme_AsciiRendererDropsColour(t *testing.T) {
	m, sol := solved(t, corridor)

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	got := render.Maze(m, sol.Tiles, render.WithTheme(render.NewTheme(r)))
	assert.Equal(t, render.Maze(m, sol.Tiles, render.WithTheme(render.PlainTheme())), got)
}

func TestNewTheme_ColourRendererStyles(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	th := render.NewTheme(r)

	assert.NotEqual(t, "O", th.Tile.Render("O"))
	assert.NotEqual(t, th.Tile.Render("O"), th.Wall.Render("O"))
	assert.Equal(t, "O", ansi.Strip(th.Tile.Render("O")))
}

func TestPlainTheme_LeavesTextUntouched(t *testing.T) {
	th := render.PlainTheme()
	for _, s := range []lipgloss.Style{th.Wall, th.Open, th.Fill, th.Tile, th.Start, th.End} {
		assert.Equal(t, "#.O", s.Render("#.O"))
	}
}
