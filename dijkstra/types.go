// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– Source:           ID of the starting vertex (defaults to the graph's start vertex in ShortestPath).
//	– Target:           ID of the end vertex (defaults to the graph's end vertex in ShortestPath).
//	– ReturnPath:       if true, Dijkstra returns the predecessor map.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if Dijkstra is called without a source vertex ID.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNoStartVertex   if ShortestPath has neither a Source option nor a graph start vertex.
//	– ErrNoEndVertex     if ShortestPath has neither a Target option nor a graph end vertex.
//	– ErrVertexNotFound  if the source or target vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrNoPath          if the target cannot be reached from the source.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoStartVertex indicates that no start vertex was designated.
	ErrNoStartVertex = errors.New("dijkstra: graph start vertex not set")

	// ErrNoEndVertex indicates that no end vertex was designated.
	ErrNoEndVertex = errors.New("dijkstra: graph end vertex not set")

	// ErrVertexNotFound indicates that the specified source or target vertex
	// does not exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that the search exhausted every reachable vertex
	// without finalizing the target.
	ErrNoPath = errors.New("dijkstra: no path exists between the start and end vertices")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID.
// Target           – end vertex ID (ShortestPath only).
// ReturnPath       – if true, Dijkstra returns the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	Source           string // The ID of the source vertex
	Target           string // The ID of the target vertex
	ReturnPath       bool   // Whether to return the predecessor map
	MaxDistance      int64  // Maximum distance to explore
	InfEdgeThreshold int64  // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// Target sets the Target field of Options to the given string.
func Target(str string) Option {
	return func(o *Options) {
		o.Target = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Edges with weight ≥ threshold are skipped entirely.
// Must pass a positive value; zero or negative panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source vertex ID.
//
// Defaults:
//   - Source:           <as passed> (no validation here).
//   - Target:           "" (graph end vertex in ShortestPath).
//   - ReturnPath:       false.
//   - MaxDistance:      math.MaxInt64 (explore all reachable).
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable).
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Path is the result of ShortestPath: the ordered vertex IDs from start to
// end inclusive and the total distance, equal to the sum of the weights of the
// edges the search relaxed along it.
type Path struct {
	Vertices []string
	Distance int64
}

// Len returns the number of vertices on the path.
func (p *Path) Len() int { return len(p.Vertices) }

// String renders the path as "A → B → C (distance N)".
func (p *Path) String() string {
	return fmt.Sprintf("%s (distance %d)", strings.Join(p.Vertices, " → "), p.Distance)
}
