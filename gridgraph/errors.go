package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice has no rows or only empty rows.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)
