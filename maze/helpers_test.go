package maze_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// mustGrid builds a grid from rows of '#', ' ', 'O', 'X' and '+'.
func mustGrid(t *testing.T, lines ...string) *gridgraph.Grid {
	t.Helper()
	rows := make([][]gridgraph.Tile, len(lines))
	for y, line := range lines {
		for _, r := range line {
			switch r {
			case '#':
				rows[y] = append(rows[y], gridgraph.Wall)
			case ' ':
				rows[y] = append(rows[y], gridgraph.Empty)
			case 'O':
				rows[y] = append(rows[y], gridgraph.Start)
			case 'X':
				rows[y] = append(rows[y], gridgraph.End)
			case '+':
				rows[y] = append(rows[y], gridgraph.Path)
			default:
				t.Fatalf("mustGrid: bad rune %q", r)
			}
		}
	}
	g, err := gridgraph.NewGrid(rows)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

// render is the inverse of mustGrid; Filled cells are dropped.
func render(g *gridgraph.Grid) string {
	var sb strings.Builder
	for _, row := range g.Rows() {
		for _, tile := range row {
			switch tile {
			case gridgraph.Wall:
				sb.WriteByte('#')
			case gridgraph.Empty:
				sb.WriteByte(' ')
			case gridgraph.Start:
				sb.WriteByte('O')
			case gridgraph.End:
				sb.WriteByte('X')
			case gridgraph.Path:
				sb.WriteByte('+')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Two junctions joined by a straight corridor of five cells; each junction
// also has two one-cell dead ends.
var corridorMaze = []string{
	"#########",
	"# ##### #",
	"O       X",
	"# ##### #",
	"#########",
}

// A junction whose two branches loop back onto itself.
var loopMaze = []string{
	"#####",
	"#   #",
	"# # #",
	"#   #",
	"##O##",
	"##X##",
}

// Two parallel corridors of different length between the same junctions.
var parallelMaze = []string{
	"#####",
	"#   #",
	"# # #",
	"O   X",
}
