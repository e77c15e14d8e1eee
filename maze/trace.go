package maze

import (
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// IsDecisionPoint reports whether (x,y) is a vertex of the reduced graph:
// the start tile, the end tile, or an open cell with three or more open
// neighbours.
func IsDecisionPoint(g *gridgraph.Grid, x, y int) bool {
	switch t := g.Get(x, y); {
	case t == gridgraph.Start || t == gridgraph.End:
		return true
	case !t.Open():
		return false
	}

	return len(g.Neighbours(x, y)) >= 3
}

// Trace walks one corridor of g, leaving from in direction dir.
//
// The walker takes one step, then keeps moving into the first open neighbour
// (probed Left, Right, Up, Down) that does not reverse its last step, until it
// lands on a decision point. It returns every cell it stood on, in order; the
// last one is the decision point reached, so len(cells) is the corridor weight.
//
// Errors:
//   - ErrDeadEnd if the walk stops on a cell with a single open neighbour;
//     the cells walked so far are still returned.
//   - ErrCorridor if no continuation exists on any other cell, if the first
//     step leaves the open area, or if the walk outlasts the grid area.
func Trace(g *gridgraph.Grid, from Point, dir gridgraph.Direction) ([]Point, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	dx, dy := dir.Delta()
	cur := Point{X: from.X + dx, Y: from.Y + dy}
	if !g.Get(cur.X, cur.Y).Open() {
		return nil, fmt.Errorf("%w: %s has no open cell %s", ErrCorridor, from, dir)
	}
	cells := []Point{cur}
	last := dir
	limit := g.Width() * g.Height()

	for !IsDecisionPoint(g, cur.X, cur.Y) {
		next, ok := step(g, cur, last)
		if !ok {
			if len(g.Neighbours(cur.X, cur.Y)) == 1 {
				return cells, ErrDeadEnd
			}
			return cells, fmt.Errorf("%w: at %s", ErrCorridor, cur)
		}
		if len(cells) >= limit {
			return cells, fmt.Errorf("%w: walk from %s %s exceeds %d steps", ErrCorridor, from, dir, limit)
		}
		ndx, ndy := next.Delta()
		cur = Point{X: cur.X + ndx, Y: cur.Y + ndy}
		cells = append(cells, cur)
		last = next
	}

	return cells, nil
}

// step picks the first open direction from p that does not undo last.
func step(g *gridgraph.Grid, p Point, last gridgraph.Direction) (gridgraph.Direction, bool) {
	back := last.Opposite()
	for _, d := range gridgraph.Directions {
		if d != back && g.Neighbour(d, p.X, p.Y) {
			return d, true
		}
	}

	return 0, false
}
