package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/render"
)

const (
	formatText = "text"
	formatYAML = "yaml"

	modeReduced = "reduced"
	modeRaw     = "raw"
)

// report is what the CLI prints for one run.
type report struct {
	RunID         string `yaml:"run_id"`
	Input         string `yaml:"input"`
	Mode          string `yaml:"mode"`
	Found         bool   `yaml:"found"`
	Cost          int    `yaml:"cost"`
	Tiles         int    `yaml:"tiles"`
	Paths         int    `yaml:"paths,omitempty"`
	Authoritative bool   `yaml:"authoritative"`
	Pruned        int    `yaml:"pruned"`
	Junctions     int    `yaml:"junctions"`
	Edges         int    `yaml:"edges"`
	Expanded      int    `yaml:"expanded"`

	drawing string
	summary string
}

func newReport(input, mode string, sol *maze.Solution) *report {
	rep := &report{
		Input:     input,
		Mode:      mode,
		Found:     sol.Found,
		Cost:      sol.Cost,
		Tiles:     len(sol.Tiles),
		Pruned:    sol.Pruned,
		Junctions: sol.Junctions,
		Edges:     sol.Edges,
		Expanded:  sol.Expanded,
	}
	if e := sol.Enumeration; e != nil {
		rep.Paths = e.Paths
		rep.Authoritative = e.Authoritative
	}
	return rep
}

// draw renders m with the route tiles and a summary box, styled for w.
func (r *report) draw(w io.Writer, m *maze.Maze, sol *maze.Solution) {
	theme := render.NewTheme(lipgloss.NewRenderer(w))
	r.drawing = render.Maze(m, sol.Tiles, render.WithTheme(theme))
	r.summary = render.Summary(sol, render.WithTheme(theme))
}

func (r *report) write(w io.Writer, format string) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	}

	if r.drawing != "" {
		_, err := fmt.Fprint(w, r.drawing, r.summary, "\n")
		return err
	}
	if !r.Found {
		_, err := fmt.Fprintln(w, "no path")
		return err
	}
	_, err := fmt.Fprintf(w, "cost: %d\ntiles: %d\n", r.Cost, r.Tiles)
	return err
}
