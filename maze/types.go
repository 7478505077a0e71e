package maze

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/mazepath/grid"
)

// State is a vertex of the oriented maze graph: where you stand and which
// way you face.
type State struct {
	Pos    grid.Position
	Facing grid.Direction
}

// String formats the state as "(row,col)>" using the facing arrow.
func (s State) String() string {
	return fmt.Sprintf("%v%c", s.Pos, s.Facing.Arrow())
}

// Costs holds the two edge weights.
type Costs struct {
	Move int // cost of one step forward
	Turn int // cost of one 90° rotation in place
}

// DefaultCosts returns Move=1, Turn=1000.
func DefaultCosts() Costs {
	return Costs{Move: 1, Turn: 1000}
}

// Validate requires Move ≥ 1 and Turn ≥ 0.
func (c Costs) Validate() error {
	if c.Move < 1 {
		return fmt.Errorf("%w: move cost %d must be at least 1", ErrInvalidInput, c.Move)
	}
	if c.Turn < 0 {
		return fmt.Errorf("%w: turn cost %d must be non-negative", ErrInvalidInput, c.Turn)
	}
	return nil
}

// Markers names the characters of the maze alphabet.
type Markers struct {
	Start rune // start cell, open
	End   rune // end cell, open
	Wall  rune // blocked
	Open  rune // open corridor
	Fill  rune // written over pruned dead ends, blocked
}

// DefaultMarkers returns S, E, '#', '.', '?'.
func DefaultMarkers() Markers {
	return Markers{Start: 'S', End: 'E', Wall: '#', Open: '.', Fill: '?'}
}

func (mk Markers) validate() error {
	set := map[rune]string{}
	for name, r := range map[string]rune{
		"start": mk.Start, "end": mk.End, "wall": mk.Wall, "open": mk.Open, "fill": mk.Fill,
	} {
		if r == grid.OutOfBounds {
			return fmt.Errorf("%w: %s marker is unset", ErrInvalidInput, name)
		}
		if other, dup := set[r]; dup {
			return fmt.Errorf("%w: %s and %s markers are both %q", ErrInvalidInput, name, other, r)
		}
		set[r] = name
	}
	return nil
}

// MazeOption configures maze construction.
type MazeOption func(*mazeConfig)

type mazeConfig struct {
	markers   Markers
	sentinels []rune
}

// WithMarkers replaces the maze alphabet.
func WithMarkers(mk Markers) MazeOption {
	return func(c *mazeConfig) {
		c.markers = mk
	}
}

// WithSentinels allows extra characters in the grid. They are treated as
// blocked cells, which lets puzzle variants mark cells without editing them out.
func WithSentinels(rs ...rune) MazeOption {
	return func(c *mazeConfig) {
		c.sentinels = append(c.sentinels, rs...)
	}
}

// Options configures Solve and SolveRaw.
//
// Costs         – move and turn weights; must pass Costs.Validate.
// StartFacing   – initial facing at the start cell. Default East.
// Enumerate     – whether Solve also collects every optimal-path cell.
// Logger        – structured logger for pipeline progress; silent by default.
// MaxExpansions – A* expansion cap; 0 means unlimited.
type Options struct {
	Costs         Costs
	StartFacing   grid.Direction
	Enumerate     bool
	Logger        *slog.Logger
	MaxExpansions int
}

// Option is a functional option for Solve and SolveRaw.
type Option func(*Options)

// DefaultOptions returns the reference configuration: costs 1/1000, facing
// East, enumeration on, discard logger, no expansion cap.
func DefaultOptions() Options {
	return Options{
		Costs:       DefaultCosts(),
		StartFacing: grid.East,
		Enumerate:   true,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithCosts sets the move and turn weights.
func WithCosts(c Costs) Option {
	return func(o *Options) {
		o.Costs = c
	}
}

// WithStartFacing sets the facing at the start cell.
func WithStartFacing(d grid.Direction) Option {
	return func(o *Options) {
		o.StartFacing = d
	}
}

// WithEnumeration turns optimal-cell enumeration on or off.
func WithEnumeration(on bool) Option {
	return func(o *Options) {
		o.Enumerate = on
	}
}

// WithLogger routes pipeline logs to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxExpansions caps A* expansions; see astar.WithMaxExpansions.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		o.MaxExpansions = n
	}
}

func (o Options) validate() error {
	if err := o.Costs.Validate(); err != nil {
		return err
	}
	if !o.StartFacing.Valid() {
		return fmt.Errorf("%w: start facing %v", ErrInvalidInput, o.StartFacing)
	}
	return nil
}
