// Package config loads solver settings from YAML.
//
// Every key is optional; missing keys keep the values of Default. Unknown
// keys are rejected so that a typo does not silently fall back to a default.
//
//	move_cost: 1
//	turn_cost: 1000
//	start_facing: east
//	start_marker: S
//	end_marker: E
//	wall: "#"
//	open: "."
//	fill_marker: "?"
//	sentinels: ""
//	enumerate: true
//	max_expansions: 0
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/maze"
)

// ErrInvalidConfig indicates a configuration value out of range or malformed.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config mirrors the YAML document.
type Config struct {
	MoveCost      int    `yaml:"move_cost"`
	TurnCost      int    `yaml:"turn_cost"`
	StartFacing   string `yaml:"start_facing"`
	StartMarker   string `yaml:"start_marker"`
	EndMarker     string `yaml:"end_marker"`
	Wall          string `yaml:"wall"`
	Open          string `yaml:"open"`
	FillMarker    string `yaml:"fill_marker"`
	Sentinels     string `yaml:"sentinels,omitempty"` // extra blocked characters
	Enumerate     bool   `yaml:"enumerate"`
	MaxExpansions int    `yaml:"max_expansions"`
}

// Default returns the reference settings.
func Default() Config {
	c := maze.DefaultCosts()
	mk := maze.DefaultMarkers()
	return Config{
		MoveCost:    c.Move,
		TurnCost:    c.Turn,
		StartFacing: grid.East.String(),
		StartMarker: string(mk.Start),
		EndMarker:   string(mk.End),
		Wall:        string(mk.Wall),
		Open:        string(mk.Open),
		FillMarker:  string(mk.Fill),
		Enumerate:   true,
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over Default and validates the result. An empty
// document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes c as YAML.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return enc.Close()
}

// Validate checks costs, facing, markers and the expansion cap.
func (c Config) Validate() error {
	if err := c.Costs().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Facing(); err != nil {
		return err
	}
	if _, err := c.Markers(); err != nil {
		return err
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions %d must be non-negative", ErrInvalidConfig, c.MaxExpansions)
	}
	return nil
}

// Costs returns the move and turn weights.
func (c Config) Costs() maze.Costs {
	return maze.Costs{Move: c.MoveCost, Turn: c.TurnCost}
}

// Facing parses start_facing.
func (c Config) Facing() (grid.Direction, error) {
	d, err := grid.ParseDirection(c.StartFacing)
	if err != nil {
		return grid.Direction{}, fmt.Errorf("%w: start_facing: %w", ErrInvalidConfig, err)
	}
	return d, nil
}

// Markers converts the single-character marker keys. Every marker must be
// exactly one character and no two may coincide.
func (c Config) Markers() (maze.Markers, error) {
	var mk maze.Markers
	fields := []struct {
		key string
		val string
		dst *rune
	}{
		{"start_marker", c.StartMarker, &mk.Start},
		{"end_marker", c.EndMarker, &mk.End},
		{"wall", c.Wall, &mk.Wall},
		{"open", c.Open, &mk.Open},
		{"fill_marker", c.FillMarker, &mk.Fill},
	}
	seen := make(map[rune]string, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f.val) != 1 {
			return maze.Markers{}, fmt.Errorf("%w: %s must be one character, got %q", ErrInvalidConfig, f.key, f.val)
		}
		r, _ := utf8.DecodeRuneInString(f.val)
		if other, dup := seen[r]; dup {
			return maze.Markers{}, fmt.Errorf("%w: %s and %s are both %q", ErrInvalidConfig, other, f.key, r)
		}
		seen[r] = f.key
		*f.dst = r
	}
	for _, r := range c.Sentinels {
		if key, dup := seen[r]; dup {
			return maze.Markers{}, fmt.Errorf("%w: sentinel %q collides with %s", ErrInvalidConfig, r, key)
		}
	}
	return mk, nil
}

// MazeOptions returns the maze construction options for c. Call Validate first.
func (c Config) MazeOptions() []maze.MazeOption {
	var opts []maze.MazeOption
	if mk, err := c.Markers(); err == nil {
		opts = append(opts, maze.WithMarkers(mk))
	}
	if c.Sentinels != "" {
		opts = append(opts, maze.WithSentinels([]rune(c.Sentinels)...))
	}
	return opts
}

// SolveOptions returns the Solve options for c. Call Validate first.
func (c Config) SolveOptions() []maze.Option {
	opts := []maze.Option{
		maze.WithCosts(c.Costs()),
		maze.WithEnumeration(c.Enumerate),
		maze.WithMaxExpansions(c.MaxExpansions),
	}
	if d, err := c.Facing(); err == nil {
		opts = append(opts, maze.WithStartFacing(d))
	}
	return opts
}
