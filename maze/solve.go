package maze

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// Solution is a solved maze.
type Solution struct {
	// Grid is a copy of the input with the route painted as Path tiles.
	Grid *gridgraph.Grid
	// Path lists the decision points of the route, start first.
	Path []Point
	// Distance is the route length in steps.
	Distance int64
	// Vertices and Edges size the reduced graph.
	Vertices, Edges int
}

// Option configures Solve.
type Option func(*Options)

// Options holds Solve settings.
type Options struct {
	Logger *log.Logger
}

// WithLogger sets the logger Solve reports its stages to at debug level.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns Options with a logger that discards output.
func DefaultOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}

// Solve reduces g, finds the shortest route from start to end and paints it
// on a copy of g. The input grid is not modified.
//
// Errors from Reduce are returned unchanged; engine failures (such as
// dijkstra.ErrNoPath) are wrapped and remain matchable with errors.Is.
func Solve(g *gridgraph.Grid, opts ...Option) (*Solution, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.Logger

	net, err := Reduce(g)
	if err != nil {
		return nil, err
	}
	logger.Debug("reduced maze", "vertices", net.Graph.VertexCount(), "edges", net.Graph.EdgeCount(),
		"start", net.start, "end", net.end)

	path, err := dijkstra.ShortestPath(net.Graph)
	if err != nil {
		return nil, fmt.Errorf("solve %dx%d maze: %w", g.Width(), g.Height(), err)
	}
	logger.Debug("shortest path", "hops", path.Len()-1, "distance", path.Distance)

	out := g.Clone()
	if err := Paint(out, net, path.Vertices); err != nil {
		return nil, err
	}

	points := make([]Point, 0, len(path.Vertices))
	for _, id := range path.Vertices {
		p, err := ParsePoint(id)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	logger.Debug("painted route", "cells", len(out.Find(gridgraph.Path)))

	return &Solution{
		Grid:     out,
		Path:     points,
		Distance: path.Distance,
		Vertices: net.Graph.VertexCount(),
		Edges:    net.Graph.EdgeCount(),
	}, nil
}
