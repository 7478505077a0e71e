package maze

import "errors"

var (
	// ErrInvalidInput indicates a malformed maze or configuration. It is fatal
	// to the current pipeline invocation only.
	ErrInvalidInput = errors.New("maze: invalid input")

	// ErrInvariant indicates that an internal consistency check failed. It
	// points at a defect in pruning, reduction or the supplied optimum.
	ErrInvariant = errors.New("maze: invariant violation")
)
