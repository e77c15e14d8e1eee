// Package bfs provides breadth-first search over a core.Graph, counting
// edges instead of summing weights.
//
// On a reduced maze every edge is one corridor, so BFS answers "which
// decision points can be reached from the start at all" and "what is the
// route with the fewest corridors". The second is usually not the shortest
// route in steps; use package dijkstra for that.
//
// What
//
//   - Explore vertices in non-decreasing edge count from a start vertex,
//     following outgoing edges in insertion order.
//   - BFSResult holds Order (visit sequence), Depth (edges from start) and
//     Parent (BFS tree); PathTo, Layers, Reached and Unreached read it.
//   - WithOnVisit hook (may abort with an error), WithFilterNeighbor,
//     WithMaxDepth, WithContext.
//
// Determinism
//
//	Neighbors are enqueued in edge insertion order, so the visit sequence is
//	reproducible for a given graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - ErrNeighbors            if core.Neighbors fails for any vertex.
//   - ErrUnreached            from PathTo for vertices never visited.
//   - Wrapped OnVisit errors and context errors.
package bfs
