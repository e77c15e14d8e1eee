// Package core provides the directed, weighted Graph used by the maze reducer
// and the shortest-path engine.
//
// The Graph G = (V,E) keeps:
//
//   - Vertices in insertion order, addressed by a non-empty string label.
//   - Directed edges held in per-vertex outgoing lists (insertion order) and
//     indexed globally by a generated Edge.ID (“e1”, “e2”, …).
//   - An optional designated start and end vertex.
//
// Parallel edges and self-loops are storable; the maze reducer decides which
// edges it emits. Undirected graphs are modelled by mirroring every edge once
// with MakeUndirected.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1), idempotent
//	HasVertex(id string) bool           // O(1)
//	Vertex(id string) (*Vertex, error)  // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64) (edgeID string, err error) // O(1)
//	Edge(from, to string) (*Edge, error) // O(deg(from)), minimum weight wins
//	Neighbors(id string) ([]*Edge, error)
//	MakeUndirected(transform func(int64) int64)
//
//	// Endpoints
//	SetStart(id) / SetEnd(id) error, Start() / End() (string, bool)
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - no edge connects the requested endpoints.
//	ErrInvalidItem    - Add received something that is neither a vertex nor an edge.
//
// Concurrency: a single sync.RWMutex guards the structure, so readers may run
// in parallel. Algorithms in this module use the graph from one goroutine.
package core
