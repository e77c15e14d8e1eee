// Package gridgraph treats a 2D grid of maze tiles as the substrate for
// corridor walking and route painting.
//
// What:
//
//   - Grid wraps a rectangular [][]Tile. Ragged input rows are squared off with
//     Filled walls so every row has the same width.
//   - Wall and Filled tiles are closed; Empty, Start, End and Path are open.
//   - Left/Right/Up/Down answer "is this neighbour open"; anything off the grid
//     counts as closed.
//   - Regions lists 4-connected open areas (useful to explain an unsolvable maze).
//
// Direction order:
//
//	Directions = [Left, Right, Up, Down]
//
// Walkers that need a deterministic choice probe neighbours in this order.
//
// Complexity:
//
//   - NewGrid, Rows, Clone, Find, Regions: O(W×H).
//   - Neighbour queries, Get, Set:        O(1).
//
// Errors:
//
//   - ErrEmptyGrid:   input has no rows or no columns.
//   - ErrOutOfBounds: Set outside the grid.
package gridgraph
