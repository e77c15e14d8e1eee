// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Designated start/end endpoints of a Graph.
// Policy:
//   - Endpoints must reference vertices already present in the graph.
//   - Getters report presence explicitly instead of returning sentinel IDs.

package core

import "fmt"

// SetStart designates id as the graph's start vertex.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) SetStart(id string) error {
	return g.setEndpoint(id, &g.start)
}

// SetEnd designates id as the graph's end vertex.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) SetEnd(id string) error {
	return g.setEndpoint(id, &g.end)
}

func (g *Graph) setEndpoint(id string, slot *string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	*slot = id

	return nil
}

// Start returns the designated start vertex ID and whether one is set.
func (g *Graph) Start() (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.start, g.start != ""
}

// End returns the designated end vertex ID and whether one is set.
func (g *Graph) End() (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.end, g.end != ""
}
