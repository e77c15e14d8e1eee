package gridgraph

// Regions finds all contiguous areas of open cells under 4-connectivity.
// Returns a slice of regions; each region is a slice of cell indices
// (row-major) in BFS discovery order, and regions appear in row-major order
// of their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() [][]int {
	seen := make([]bool, g.width*g.height)
	var regions [][]int

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.tiles[y][x].Open() {
				continue
			}
			i0 := g.index(x, y)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := g.Coordinate(queue[qi])
				for _, d := range Directions {
					dx, dy := d.Delta()
					vx, vy := ux+dx, uy+dy
					if !g.Get(vx, vy).Open() {
						continue
					}
					vi := g.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, queue)
		}
	}

	return regions
}
