// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidItem indicates Add was called with a value that is neither a vertex nor an edge.
	ErrInvalidItem = errors.New("core: only vertices and edges can be added to graphs")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data for callers (the maze reducer
// keeps the cell coordinates there).
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge represents a directed connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of traversing the edge.
	Weight int64
}

// Graph is the in-memory directed weighted graph.
//
// order keeps vertex insertion order; out[v] keeps v's outgoing edges in
// insertion order. Both orders are observable through Vertices and Neighbors
// and are what makes the shortest-path tie policy reproducible.
type Graph struct {
	mu sync.RWMutex

	nextEdgeID uint64             // edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	order      []string           // vertex IDs, insertion order
	edges      map[string]*Edge   // edge ID → Edge
	edgeOrder  []string           // edge IDs, insertion order
	out        map[string][]*Edge // vertex ID → outgoing edges

	start string // designated start vertex, "" if unset
	end   string // designated end vertex, "" if unset
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		out:      make(map[string][]*Edge),
	}
}
