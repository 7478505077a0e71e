// Package grid treats a rectangular block of text as a mutable 2D grid of
// characters and provides the small coordinate algebra used by the maze
// solver.
//
// What:
//
//   - Position: a (Row, Col) value usable as a map key.
//   - Direction: one of the four cardinal unit vectors with clockwise,
//     counter-clockwise and inner-angle operations.
//   - Grid: a bounds-checked character grid. Reads outside the grid return
//     OutOfBounds; writes outside the grid are dropped.
//   - Load: reads a grid from text and locates a marker character.
//   - Components: connected regions of "open" cells under 4-connectivity.
//
// Complexity:
//
//   - Get, Set, InBounds:  O(1).
//   - New, Load, Clone:    O(W×H) time and memory.
//   - Components:          O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMarkerNotFound: the requested marker does not occur in the input.
//   - ErrDuplicateMarker: the requested marker occurs more than once.
//   - ErrNotUnit: a vector is not one of the four cardinal unit vectors.
package grid
