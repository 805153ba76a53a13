package gridgraph

import "errors"

var (
	// ErrMalformedGrid indicates an empty, non-rectangular, or negative-weight input grid.
	ErrMalformedGrid = errors.New("gridgraph: malformed grid")
	// ErrOutOfBounds indicates a position outside the grid dimensions.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
)
