package maze

import (
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Paint marks the corridor cells of path on g as Path tiles.
//
// For each consecutive pair (u, v) the minimum-weight edge u→v is looked up
// and its corridor re-walked from u in the recorded direction, so the painted
// cells are exactly the cells Reduce walked. u is never painted; v is painted
// unless it is the last vertex of the path, keeping the End tile visible.
//
// Errors: ErrNilGrid or ErrNilNetwork for nil arguments; ErrMissingRoute if
// a pair has no edge or no recorded direction; any Trace error on a grid that
// no longer matches n.
func Paint(g *gridgraph.Grid, n *Network, path []string) error {
	if g == nil {
		return ErrNilGrid
	}
	if n == nil || n.Graph == nil {
		return ErrNilNetwork
	}
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		e, err := n.Graph.Edge(u, v)
		if err != nil {
			return fmt.Errorf("%w: %s → %s", ErrMissingRoute, u, v)
		}
		dir, ok := n.routes[e.ID]
		if !ok {
			return fmt.Errorf("%w: edge %s has no direction", ErrMissingRoute, e.ID)
		}
		from, err := ParsePoint(u)
		if err != nil {
			return err
		}
		cells, err := Trace(g, from, dir)
		if err != nil {
			return fmt.Errorf("re-walk %s → %s: %w", u, v, err)
		}
		if got := cells[len(cells)-1].String(); got != v {
			return fmt.Errorf("%w: walk from %s %s lands on %s, not %s", ErrMissingRoute, u, dir, got, v)
		}
		last := i+2 == len(path)
		for j, c := range cells {
			if last && j == len(cells)-1 {
				break
			}
			if err := g.Set(c.X, c.Y, gridgraph.Path); err != nil {
				return err
			}
		}
	}

	return nil
}
