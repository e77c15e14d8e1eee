// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once: V extractions from the heap.
//   - Each successful relaxation pushes one heap entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - Distance and predecessor state belongs to one run (runner), never to the graph,
//     so the same graph can be searched any number of times.
//   - Ties in distance are broken by push order: the vertex reached first is extracted first.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/mazepath/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in the weighted graph g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.MaxInt64 if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and unreachable v, prev[v] == "".
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}
	if err := checkWeights(g); err != nil {
		return nil, nil, err
	}

	r := newRunner(g, cfg, cfg.ReturnPath)
	r.init(cfg.Source)
	if _, err := r.process(""); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath finds the minimum-weight route between two vertices of g and
// returns it as an ordered vertex sequence plus its total distance.
//
// The endpoints default to g.Start() and g.End(); Source and Target options
// override them. The search stops as soon as the target is finalized.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. A start vertex must be known (ErrNoStartVertex).
//  3. An end vertex must be known (ErrNoEndVertex).
//  4. Both endpoints must exist in g (ErrVertexNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// If the target is unreachable the error is ErrNoPath and the returned path is nil.
func ShortestPath(g *core.Graph, opts ...Option) (*Path, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Source == "" {
		cfg.Source, _ = g.Start()
	}
	if cfg.Source == "" {
		return nil, ErrNoStartVertex
	}
	if cfg.Target == "" {
		cfg.Target, _ = g.End()
	}
	if cfg.Target == "" {
		return nil, ErrNoEndVertex
	}
	for _, id := range []string{cfg.Source, cfg.Target} {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}
	if err := checkWeights(g); err != nil {
		return nil, err
	}

	r := newRunner(g, cfg, true)
	r.init(cfg.Source)
	found, err := r.process(cfg.Target)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, cfg.Source, cfg.Target)
	}

	return r.pathTo(cfg.Source, cfg.Target), nil
}

// checkWeights pre-scans all edges and fails fast on a negative weight.
func checkWeights(g *core.Graph) error {
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // The input graph; read-only within Dijkstra.
	options Options           // Configuration options (thresholds).
	dist    map[string]int64  // Maps vertex ID → current best distance from Source.
	prev    map[string]string // Maps vertex ID → predecessor on the shortest path.
	visited map[string]bool   // Tracks if a vertex's distance is finalized.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
	seq     uint64            // Push counter used to break distance ties.
}

func newRunner(g *core.Graph, cfg Options, withPrev bool) *runner {
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if withPrev {
		r.prev = make(map[string]string, n)
	}

	return r
}

// init sets dist[v] = +∞ for every vertex, dist[source] = 0, and seeds the heap.
func (r *runner) init(source string) {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.MaxInt64
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	r.push(source, 0)
}

func (r *runner) push(id string, d int64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
}

// process is the core loop: it extracts the closest unfinalized vertex and
// relaxes its outgoing edges until the heap is empty, the MaxDistance cap is
// exceeded, or target (if non-empty) is finalized. It reports whether target
// was finalized.
func (r *runner) process(target string) (bool, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale heap entry.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if target != "" && u == target {
			return true, nil
		}
		if err := r.relax(u); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax examines each edge outgoing from u and improves distances to its
// neighbors. Only a strictly shorter candidate replaces the current distance.
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		v, w := e.To, e.Weight
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, u, v, w)
		}

		if w > math.MaxInt64-r.dist[u] {
			continue // sum would overflow int64
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		r.push(v, newDist)
	}

	return nil
}

// pathTo walks predecessor links back from target to source.
func (r *runner) pathTo(source, target string) *Path {
	var rev []string
	for cur := target; ; cur = r.prev[cur] {
		rev = append(rev, cur)
		if cur == source {
			break
		}
	}
	vertices := make([]string, len(rev))
	for i, id := range rev {
		vertices[len(rev)-1-i] = id
	}

	return &Path{Vertices: vertices, Distance: r.dist[target]}
}

// nodeItem represents a vertex and its distance from the source at push time.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
	seq  uint64 // push order
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq). Outdated entries
// stay in the heap and are skipped when popped (checked via visited).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element (heap.Pop has already swapped the minimum there).
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
