// Package mazepath solves text mazes by reducing them to a small weighted
// graph and running Dijkstra's algorithm over it.
//
// A maze is a grid of walls and floor with one start (O) and one end (X).
// Only decision points matter for routing: the start, the end, and every
// floor cell with three or more open neighbours. Corridors between them
// become directed edges weighted by their length in steps, so a large maze
// with long corridors turns into a graph of a few dozen vertices.
//
//	text ──asciimaze.Decode──▶ gridgraph.Grid ──maze.Reduce──▶ core.Graph
//	     ──dijkstra.ShortestPath──▶ path ──maze.Paint──▶ grid ──asciimaze.Encode──▶ text
//
// Packages:
//
//	core/       directed weighted Graph: vertices, edges, endpoints, MakeUndirected
//	gridgraph/  Tile and Direction types, the Grid container, open regions
//	maze/       Reduce, Trace, Paint and the Solve pipeline
//	dijkstra/   shortest paths over core.Graph with path reconstruction
//	bfs/        fewest-edge traversal over core.Graph
//	asciimaze/  text codec with configurable characters
//	export/     Graphviz DOT and SVG output
//	config/     TOML, .env and environment settings
//
// The mazepath command (cmd/mazepath) wraps all of this:
//
//	mazepath solve maze.txt solved.txt
//	mazepath inspect maze.txt
//	mazepath graph maze.txt -f svg -o maze.svg
package mazepath
