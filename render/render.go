// Package render draws a solved maze for a terminal with lipgloss.
//
// Cells on a cheapest route are drawn with the tile rune (default 'O') in
// the Tile style; start, end, walls, open and pruned cells keep their own
// characters and styles. A plain theme renders without escape codes.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/maze"
)

// Theme holds one style per cell class.
type Theme struct {
	Wall  lipgloss.Style
	Open  lipgloss.Style
	Fill  lipgloss.Style
	Tile  lipgloss.Style
	Start lipgloss.Style
	End   lipgloss.Style
	Box   lipgloss.Style // Summary frame
}

// DefaultTheme is NewTheme for the default renderer (standard output).
func DefaultTheme() Theme {
	return NewTheme(lipgloss.DefaultRenderer())
}

// NewTheme builds the 256-colour theme for r. The renderer decides, from
// the terminal it writes to, whether colours survive at all.
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Wall:  r.NewStyle().Foreground(lipgloss.Color("240")),
		Open:  r.NewStyle().Foreground(lipgloss.Color("252")),
		Fill:  r.NewStyle().Foreground(lipgloss.Color("236")),
		Tile:  r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Start: r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		End:   r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
	}
}

// PlainTheme applies no styling at all.
func PlainTheme() Theme {
	s := lipgloss.NewStyle()
	return Theme{Wall: s, Open: s, Fill: s, Tile: s, Start: s, End: s, Box: s}
}

// Option configures Maze and Summary.
type Option func(*options)

type options struct {
	theme Theme
	tile  rune
}

// WithTheme replaces DefaultTheme.
func WithTheme(t Theme) Option {
	return func(o *options) {
		o.theme = t
	}
}

// WithTileRune sets the character drawn on route cells.
func WithTileRune(r rune) Option {
	return func(o *options) {
		o.tile = r
	}
}

func resolve(opts []Option) options {
	o := options{theme: DefaultTheme(), tile: 'O'}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type class int

const (
	classWall class = iota
	classOpen
	classFill
	classTile
	classStart
	classEnd
)

func (o options) style(c class) lipgloss.Style {
	switch c {
	case classOpen:
		return o.theme.Open
	case classFill:
		return o.theme.Fill
	case classTile:
		return o.theme.Tile
	case classStart:
		return o.theme.Start
	case classEnd:
		return o.theme.End
	default:
		return o.theme.Wall
	}
}

// Maze draws m with tiles highlighted, one line per row. Runs of cells of
// the same class share one styled segment.
func Maze(m *maze.Maze, tiles []grid.Position, opts ...Option) string {
	o := resolve(opts)
	onRoute := make(map[grid.Position]bool, len(tiles))
	for _, p := range tiles {
		onRoute[p] = true
	}
	mk := m.Markers()
	g := m.Grid()

	var sb strings.Builder
	for r := 0; r < g.Height(); r++ {
		var run []rune
		cur := class(-1)
		flush := func() {
			if len(run) > 0 {
				sb.WriteString(o.style(cur).Render(string(run)))
				run = run[:0]
			}
		}
		for c := 0; c < g.Width(); c++ {
			p := grid.Position{Row: r, Col: c}
			ch := g.Get(p)
			var cls class
			switch {
			case p == m.Start():
				cls = classStart
			case p == m.End():
				cls = classEnd
			case onRoute[p]:
				cls, ch = classTile, o.tile
			case ch == mk.Open:
				cls = classOpen
			case ch == mk.Fill:
				cls = classFill
			default:
				cls = classWall
			}
			if cls != cur {
				flush()
				cur = cls
			}
			run = append(run, ch)
		}
		flush()
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary frames the headline numbers of sol.
func Summary(sol *maze.Solution, opts ...Option) string {
	o := resolve(opts)
	var lines []string
	if !sol.Found {
		lines = append(lines, "no path")
	} else {
		lines = append(lines,
			fmt.Sprintf("cost       %d", sol.Cost),
			fmt.Sprintf("tiles      %d", len(sol.Tiles)),
		)
		if e := sol.Enumeration; e != nil {
			lines = append(lines, fmt.Sprintf("paths      %d", e.Paths))
		}
	}
	lines = append(lines,
		fmt.Sprintf("pruned     %d", sol.Pruned),
		fmt.Sprintf("junctions  %d", sol.Junctions),
		fmt.Sprintf("edges      %d", sol.Edges),
		fmt.Sprintf("expanded   %d", sol.Expanded),
	)
	return o.theme.Box.Render(strings.Join(lines, "\n"))
}
