// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edge/HasEdge/Neighbors/Edges/EdgeCount,
//       MakeUndirected. Also: nextEdgeID().
// Determinism:
//   - Edges() and Neighbors() return edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"strconv"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new directed edge from→to with the given weight and
// returns its generated ID.
//
// The edge is appended to from's outgoing list; either endpoint that is not
// yet in the graph is inserted first. Parallel edges and self-loops are kept
// as given.
//
// Returns ErrEmptyVertexID if either endpoint is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	return g.addEdgeLocked(from, to, weight).ID, nil
}

// addEdgeLocked stores a new edge. Caller holds g.mu and both endpoints exist.
func (g *Graph) addEdgeLocked(from, to string, weight int64) *Edge {
	e := &Edge{ID: nextEdgeID(g), From: from, To: to, Weight: weight}
	g.edges[e.ID] = e
	g.edgeOrder = append(g.edgeOrder, e.ID)
	g.out[from] = append(g.out[from], e)

	return e
}

// nextEdgeID returns "e<N>" with N incremented under the caller's write lock.
func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}

// MakeUndirected inserts, for every edge u→v present at call time, a mirror
// edge v→u with weight transform(w). A nil transform keeps the weight.
//
// The operation is not idempotent: calling it twice mirrors the mirrors as
// well and leaves two copies of every direction. Call it once, after the
// graph is built and before running a search.
// Complexity: O(E).
func (g *Graph) MakeUndirected(transform func(int64) int64) {
	if transform == nil {
		transform = func(w int64) int64 { return w }
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	existing := make([]string, len(g.edgeOrder))
	copy(existing, g.edgeOrder)
	for _, eid := range existing {
		e := g.edges[eid]
		g.addEdgeLocked(e.To, e.From, transform(e.Weight))
	}
}

// Edge returns the minimum-weight edge from→to. Among equal weights the
// first inserted edge wins.
// Returns ErrEdgeNotFound if no edge connects the endpoints.
// Complexity: O(deg(from)).
func (g *Graph) Edge(from, to string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var best *Edge
	for _, e := range g.out[from] {
		if e.To != to {
			continue
		}
		if best == nil || e.Weight < best.Weight {
			best = e
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: %q→%q", ErrEdgeNotFound, from, to)
	}

	return best, nil
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.out[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// EdgeByID returns the edge with the given generated ID.
// Complexity: O(1).
func (g *Graph) EdgeByID(eid string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, fmt.Errorf("%w: id %q", ErrEdgeNotFound, eid)
	}

	return e, nil
}

// Neighbors returns a snapshot of the outgoing edges of id in insertion order.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	list := g.out[id]
	res := make([]*Edge, len(list))
	copy(res, list)

	return res, nil
}

// Edges returns every edge in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	res := make([]*Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		res = append(res, g.edges[eid])
	}

	return res
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgeOrder)
}
