// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries, plus the Add item dispatcher.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import "fmt"

// AddVertex inserts a vertex if missing (idempotent).
//
// Returns ErrEmptyVertexID if id is empty. Adding an existing vertex is a no-op
// and keeps its original position in the insertion order.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id if absent. Caller holds g.mu.
func (g *Graph) addVertexLocked(id string) *Vertex {
	if v, ok := g.vertices[id]; ok {
		return v
	}
	v := &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.vertices[id] = v
	g.order = append(g.order, id)

	return v
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex stored under id.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return v, nil
}

// Vertices returns a snapshot of all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, len(g.order))
	copy(ids, g.order)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Add inserts a vertex or an edge, whichever item is.
//
// Accepted items are Vertex, *Vertex, Edge and *Edge. Vertices are inserted by
// ID (Metadata of an already present vertex is left untouched); edges are added
// through AddEdge, so a caller-supplied Edge.ID is replaced by a generated one.
// Any other value returns ErrInvalidItem.
func (g *Graph) Add(item interface{}) error {
	switch it := item.(type) {
	case *Vertex:
		if it == nil {
			return ErrInvalidItem
		}
		return g.addVertexWithMetadata(it)
	case Vertex:
		return g.addVertexWithMetadata(&it)
	case *Edge:
		if it == nil {
			return ErrInvalidItem
		}
		_, err := g.AddEdge(it.From, it.To, it.Weight)
		return err
	case Edge:
		_, err := g.AddEdge(it.From, it.To, it.Weight)
		return err
	default:
		return fmt.Errorf("%w: got %T", ErrInvalidItem, item)
	}
}

// addVertexWithMetadata inserts v.ID and, for a new vertex, copies v.Metadata.
func (g *Graph) addVertexWithMetadata(v *Vertex) error {
	if v.ID == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.vertices[v.ID]; exists {
		return nil
	}
	stored := g.addVertexLocked(v.ID)
	for k, val := range v.Metadata {
		stored.Metadata[k] = val
	}

	return nil
}
