package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/core"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// Reduce turns g into a Network.
//
// Steps:
//  1. Vertex discovery: a row-major scan adds every decision point (start,
//     end, and every open cell with three or more open neighbours) together
//     with its open-neighbour directions.
//  2. Edge discovery: for every vertex and each of its directions, Trace the
//     corridor. A walk that lands on a vertex emits an edge weighted by the
//     number of steps taken; a dead end emits nothing; a walk back to its own
//     origin emits nothing.
//
// Each corridor is walked from both ends, so the graph already holds both
// directions of every corridor and must not be mirrored with MakeUndirected.
//
// Errors: ErrNoStart, ErrNoEnd, ErrDuplicateStart, ErrDuplicateEnd, and
// ErrCorridor (wrapped with the offending coordinates).
func Reduce(g *gridgraph.Grid) (*Network, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	n := &Network{
		Graph:  core.NewGraph(),
		forks:  make(map[Point][]gridgraph.Direction),
		routes: make(map[string]gridgraph.Direction),
	}
	if err := n.discoverVertices(g); err != nil {
		return nil, err
	}
	if err := n.discoverEdges(g); err != nil {
		return nil, err
	}

	return n, nil
}

func (n *Network) discoverVertices(g *gridgraph.Grid) error {
	var starts, ends int
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if !IsDecisionPoint(g, x, y) {
				continue
			}
			p := Point{X: x, Y: y}
			switch g.Get(x, y) {
			case gridgraph.Start:
				starts++
				n.start = p
			case gridgraph.End:
				ends++
				n.end = p
			}
			dirs := g.Neighbours(x, y)
			n.forks[p] = dirs
			v := &core.Vertex{ID: p.String(), Metadata: map[string]interface{}{
				"x": x, "y": y, "degree": len(dirs),
			}}
			if err := n.Graph.Add(v); err != nil {
				return err
			}
		}
	}

	switch {
	case starts == 0:
		return ErrNoStart
	case starts > 1:
		return fmt.Errorf("%w: found %d", ErrDuplicateStart, starts)
	case ends == 0:
		return ErrNoEnd
	case ends > 1:
		return fmt.Errorf("%w: found %d", ErrDuplicateEnd, ends)
	}
	if err := n.Graph.SetStart(n.start.String()); err != nil {
		return err
	}

	return n.Graph.SetEnd(n.end.String())
}

func (n *Network) discoverEdges(g *gridgraph.Grid) error {
	for _, id := range n.Graph.Vertices() {
		from, err := ParsePoint(id)
		if err != nil {
			return err
		}
		for _, dir := range n.forks[from] {
			cells, err := Trace(g, from, dir)
			if errors.Is(err, ErrDeadEnd) {
				continue
			}
			if err != nil {
				return err
			}
			to := cells[len(cells)-1]
			if to == from {
				continue
			}
			eid, err := n.Graph.AddEdge(id, to.String(), int64(len(cells)))
			if err != nil {
				return err
			}
			n.routes[eid] = dir
		}
	}

	return nil
}
