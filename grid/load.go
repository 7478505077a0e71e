package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Load reads a grid from r, one row per line, and returns it together with
// the position of the single occurrence of marker.
//
// Trailing carriage returns and trailing blank lines are ignored. Returns
// ErrMarkerNotFound if marker does not occur, ErrDuplicateMarker if it
// occurs more than once, and the New errors for empty or ragged input.
func Load(r io.Reader, marker rune) (*Grid, Position, error) {
	g, err := Read(r)
	if err != nil {
		return nil, Position{}, err
	}
	found := g.Find(marker)
	switch len(found) {
	case 0:
		return nil, Position{}, fmt.Errorf("%w: %q", ErrMarkerNotFound, marker)
	case 1:
		return g, found[0], nil
	default:
		return nil, Position{}, fmt.Errorf("%w: %q at %v and %v", ErrDuplicateMarker, marker, found[0], found[1])
	}
}

// Read reads a grid from r without looking for any marker.
func Read(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	g, err := FromLines(lines)
	if err != nil {
		return nil, err
	}
	return g, nil
}
