package gridgraph

import "fmt"

// NewGrid constructs a Grid from rows of tiles. It deep-copies the input.
// The width is the longest row; shorter rows are padded with Filled.
// Returns ErrEmptyGrid if there are no rows or every row is empty.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(rows [][]Tile) (*Grid, error) {
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}
	if len(rows) == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}
	tiles := make([][]Tile, len(rows))
	for y, row := range rows {
		tiles[y] = make([]Tile, w)
		n := copy(tiles[y], row)
		for x := n; x < w; x++ {
			tiles[y][x] = Filled
		}
	}

	return &Grid{width: w, height: len(rows), tiles: tiles}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the tile at (x,y). Out-of-bounds coordinates read as Filled.
func (g *Grid) Get(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Filled
	}
	return g.tiles[y][x]
}

// Set overwrites the tile at (x,y).
func (g *Grid) Set(x, y int, t Tile) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	g.tiles[y][x] = t

	return nil
}

// Left reports whether the cell left of (x,y) is open.
func (g *Grid) Left(x, y int) bool { return g.Get(x-1, y).Open() }

// Right reports whether the cell right of (x,y) is open.
func (g *Grid) Right(x, y int) bool { return g.Get(x+1, y).Open() }

// Up reports whether the cell above (x,y) is open.
func (g *Grid) Up(x, y int) bool { return g.Get(x, y-1).Open() }

// Down reports whether the cell below (x,y) is open.
func (g *Grid) Down(x, y int) bool { return g.Get(x, y+1).Open() }

// Neighbour reports whether the cell one step from (x,y) in direction d is open.
func (g *Grid) Neighbour(d Direction, x, y int) bool {
	dx, dy := d.Delta()
	return g.Get(x+dx, y+dy).Open()
}

// Neighbours returns the directions of the open neighbours of (x,y) in probe order.
func (g *Grid) Neighbours(x, y int) []Direction {
	dirs := make([]Direction, 0, 4)
	for _, d := range Directions {
		if g.Neighbour(d, x, y) {
			dirs = append(dirs, d)
		}
	}

	return dirs
}

// Find returns the coordinates of every cell holding t, in row-major order.
func (g *Grid) Find(t Tile) [][2]int {
	var out [][2]int
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tiles[y][x] == t {
				out = append(out, [2]int{x, y})
			}
		}
	}

	return out
}

// Rows returns a deep copy of the tiles, row by row.
func (g *Grid) Rows() [][]Tile {
	rows := make([][]Tile, g.height)
	for y := range g.tiles {
		rows[y] = make([]Tile, g.width)
		copy(rows[y], g.tiles[y])
	}

	return rows
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{width: g.width, height: g.height, tiles: g.Rows()}
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}
