package maze

import (
	"github.com/katalvlaran/mazepath/core"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// Network is a maze reduced to a weighted directed graph.
//
// Graph vertices are labelled with Point.String. Every edge is a corridor;
// its departure direction from the source vertex is kept in routes under the
// edge ID so the corridor can be re-walked later.
type Network struct {
	Graph *core.Graph

	start, end Point
	forks      map[Point][]gridgraph.Direction
	routes     map[string]gridgraph.Direction
}

// Start returns the entry point.
func (n *Network) Start() Point { return n.start }

// End returns the exit point.
func (n *Network) End() Point { return n.end }

// Departures returns the candidate departure directions of a decision point,
// in probe order. The second result is false if p is not a vertex.
func (n *Network) Departures(p Point) ([]gridgraph.Direction, bool) {
	dirs, ok := n.forks[p]
	if !ok {
		return nil, false
	}
	out := make([]gridgraph.Direction, len(dirs))
	copy(out, dirs)

	return out, true
}

// Route returns the departure direction recorded for edge eid.
func (n *Network) Route(eid string) (gridgraph.Direction, bool) {
	d, ok := n.routes[eid]
	return d, ok
}
