// Package export writes a reduced maze graph as Graphviz DOT and renders it
// to SVG in-process with [github.com/goccy/go-graphviz], without needing a
// Graphviz installation.
//
//	net, _ := maze.Reduce(grid)
//	dot := export.ToDOT(net, export.Options{})
//	svg, err := export.RenderSVG(ctx, dot)
package export
