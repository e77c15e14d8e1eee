package gridgraph

// Tile is the state of one grid cell.
type Tile uint8

const (
	// Wall is an impassable cell from the input.
	Wall Tile = iota
	// Empty is an open floor cell.
	Empty
	// Start marks the single entry cell.
	Start
	// End marks the single exit cell.
	End
	// Path is an Empty cell painted as part of the solved route.
	Path
	// Filled is a wall synthesized to square off a ragged input row.
	Filled
)

// Open reports whether a walker may stand on the tile.
func (t Tile) Open() bool {
	return t != Wall && t != Filled
}

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case Wall:
		return "wall"
	case Empty:
		return "empty"
	case Start:
		return "start"
	case End:
		return "end"
	case Path:
		return "path"
	case Filled:
		return "filled"
	}
	return "unknown"
}

// Direction is one of the four orthogonal moves.
//
// The declaration order Left, Right, Up, Down is the probe order used when a
// corridor walker picks its next step; see Directions.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every Direction in probe order.
var Directions = [4]Direction{Left, Right, Up, Down}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Delta returns the (dx, dy) offset of one step; y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	default:
		return 0, 1
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// Grid is a rectangular matrix of tiles. Every row has the same length.
// tiles[y][x] holds the cell at column x, row y.
type Grid struct {
	width, height int
	tiles         [][]Tile
}
