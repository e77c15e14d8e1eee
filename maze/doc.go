// Package maze reduces a tile grid to a sparse weighted graph, solves it with
// the dijkstra package and paints the route back onto the grid.
//
// Decision points (the start, the end and every open cell with three or more
// open neighbours) become vertices labelled "x,y". Corridors between them
// become directed edges weighted by their length in steps; the direction each
// corridor leaves its source vertex is remembered so Paint can re-walk it with
// the same rules Reduce used:
//
//	grid ──Reduce──▶ Network ──dijkstra.ShortestPath──▶ path ──Paint──▶ grid
//
// Solve runs the whole pipeline on a copy of the grid.
//
// Corridor walking (Trace) never steps back into the cell it just left and
// probes Left, Right, Up, Down in that order. A corridor ending in a cell
// with a single open neighbour is a dead end and yields no edge. A walk that
// returns to its origin yields no self-loop.
package maze
