// Package dijkstra provides Dijkstra's shortest-path algorithm over a
// core.Graph with non-negative integer edge weights.
//
// Overview:
//
//   - ShortestPath resolves one route between the graph's designated start and
//     end vertices (or explicit Source/Target options) and returns the ordered
//     vertex sequence together with its total distance.
//   - Dijkstra computes distances from one source to every vertex and can
//     optionally return the predecessor map.
//   - Both rely on a min-heap with lazy decrease-key: improved distances push a
//     new entry, stale entries are skipped when popped.
//
// Relaxation semantics:
//
//   - A candidate distance replaces the current one only if strictly smaller.
//   - Equal distances are extracted in the order they were reached, so results
//     are reproducible for a given graph insertion order.
//   - The engine never writes to the graph: distances and predecessors live in
//     per-call maps, so repeated searches on one graph are independent.
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrNoStartVertex:  ShortestPath without Source option and without g.Start().
//   - ErrNoEndVertex:    ShortestPath without Target option and without g.End().
//   - ErrEmptySource:    Dijkstra without Source option.
//   - ErrVertexNotFound: an endpoint is not in the graph.
//   - ErrNegativeWeight: a negative edge weight was found by the O(E) pre-scan.
//   - ErrNoPath:         the end vertex is unreachable from the start vertex.
//
// Endpoint faults are reported before any relaxation happens. Negative weights
// are outside the algorithm's contract; the pre-scan turns them into an error
// instead of an undefined result.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Thread safety:
//
//   - Searches only read the graph; concurrent searches on a graph that is not
//     being mutated are safe.
package dijkstra
