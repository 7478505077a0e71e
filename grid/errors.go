package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrMarkerNotFound indicates the requested marker character is absent.
	ErrMarkerNotFound = errors.New("grid: marker not found")
	// ErrDuplicateMarker indicates the requested marker occurs more than once.
	ErrDuplicateMarker = errors.New("grid: marker occurs more than once")
	// ErrNotUnit indicates a vector that is not a cardinal unit vector.
	ErrNotUnit = errors.New("grid: not a cardinal unit vector")
)
