package maze_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/maze"
)

func TestSolve_Corridor(t *testing.T) {
	g := mustGrid(t, corridorMaze...)
	sol, err := maze.Solve(g)
	require.NoError(t, err)

	assert.Equal(t, int64(8), sol.Distance)
	assert.Equal(t, []maze.Point{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 7, Y: 2}, {X: 8, Y: 2}}, sol.Path)
	assert.Equal(t, 4, sol.Vertices)
	assert.Equal(t, 6, sol.Edges)
	assert.Equal(t,
		"#########\n"+
			"# ##### #\n"+
			"O+++++++X\n"+
			"# ##### #\n"+
			"#########\n",
		render(sol.Grid))

	assert.Empty(t, g.Find(gridgraph.Path), "input grid must stay untouched")
}

func TestSolve_PrefersShorterCorridor(t *testing.T) {
	sol, err := maze.Solve(mustGrid(t, parallelMaze...))
	require.NoError(t, err)

	assert.Equal(t, int64(4), sol.Distance)
	assert.Equal(t,
		"#####\n"+
			"#   #\n"+
			"# # #\n"+
			"O+++X\n",
		render(sol.Grid))
}

func TestSolve_AdjacentEndpoints(t *testing.T) {
	sol, err := maze.Solve(mustGrid(t, loopMaze...))
	require.NoError(t, err)

	assert.Equal(t, int64(1), sol.Distance)
	assert.Empty(t, sol.Grid.Find(gridgraph.Path))
}

func TestSolve_NoPath(t *testing.T) {
	_, err := maze.Solve(mustGrid(t, "O#X"))
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)

	_, err = maze.Solve(mustGrid(t, "O  "))
	assert.ErrorIs(t, err, maze.ErrNoEnd)

	_, err = maze.Solve(nil)
	assert.ErrorIs(t, err, maze.ErrNilGrid)
}

func TestSolve_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := maze.Solve(mustGrid(t, corridorMaze...), maze.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "reduced maze")
	assert.Contains(t, buf.String(), "shortest path")
}

// TestPaint_RoundTrip re-walks every painted corridor and checks it matches
// the walk taken during reduction, cell for cell.
func TestPaint_RoundTrip(t *testing.T) {
	lines := []string{
		"###########",
		"#O  #     #",
		"# # # ### #",
		"# #   #   #",
		"# ### # ###",
		"#   #   #X#",
		"### ### # #",
		"#         #",
		"###########",
	}
	g := mustGrid(t, lines...)
	net, err := maze.Reduce(g)
	require.NoError(t, err)
	path, err := dijkstra.ShortestPath(net.Graph)
	require.NoError(t, err)
	require.GreaterOrEqual(t, path.Len(), 2)

	type leg struct {
		from  maze.Point
		dir   gridgraph.Direction
		cells []maze.Point
	}
	var legs []leg
	var total int64
	for i := 0; i+1 < len(path.Vertices); i++ {
		e, err := net.Graph.Edge(path.Vertices[i], path.Vertices[i+1])
		require.NoError(t, err)
		dir, ok := net.Route(e.ID)
		require.True(t, ok)
		from, err := maze.ParsePoint(e.From)
		require.NoError(t, err)
		cells, err := maze.Trace(g, from, dir)
		require.NoError(t, err)
		require.Equal(t, e.To, cells[len(cells)-1].String())
		assert.Equal(t, e.Weight, int64(len(cells)))
		total += e.Weight
		legs = append(legs, leg{from: from, dir: dir, cells: cells})
	}
	assert.Equal(t, path.Distance, total)

	painted := g.Clone()
	require.NoError(t, maze.Paint(painted, net, path.Vertices))

	want := map[maze.Point]bool{}
	for i, l := range legs {
		again, err := maze.Trace(painted, l.from, l.dir)
		require.NoError(t, err)
		assert.Equal(t, l.cells, again, "leg %d diverged after painting", i)
		for j, c := range l.cells {
			if i == len(legs)-1 && j == len(l.cells)-1 {
				continue
			}
			want[c] = true
		}
	}
	got := map[maze.Point]bool{}
	for _, xy := range painted.Find(gridgraph.Path) {
		got[maze.Point{X: xy[0], Y: xy[1]}] = true
	}
	assert.Equal(t, want, got)
	assert.Equal(t, gridgraph.End, painted.Get(9, 5))
	assert.Equal(t, gridgraph.Start, painted.Get(1, 1))
}

func TestPaint_MissingRoute(t *testing.T) {
	g := mustGrid(t, corridorMaze...)
	net, err := maze.Reduce(g)
	require.NoError(t, err)

	err = maze.Paint(g, net, []string{"0,2", "8,2"})
	assert.ErrorIs(t, err, maze.ErrMissingRoute)
	assert.ErrorIs(t, maze.Paint(nil, net, nil), maze.ErrNilGrid)
}

func TestPaint_NilNetwork(t *testing.T) {
	g := mustGrid(t, corridorMaze...)
	before := render(g)

	assert.ErrorIs(t, maze.Paint(g, nil, []string{"0,2", "8,2"}), maze.ErrNilNetwork)
	assert.ErrorIs(t, maze.Paint(g, &maze.Network{}, []string{"0,2", "8,2"}), maze.ErrNilNetwork)
	assert.Equal(t, before, render(g))
}
