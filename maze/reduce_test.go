package maze_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/maze"
)

func TestReduce_Corridor(t *testing.T) {
	net, err := maze.Reduce(mustGrid(t, corridorMaze...))
	require.NoError(t, err)

	g := net.Graph
	assert.Equal(t, []string{"0,2", "1,2", "7,2", "8,2"}, g.Vertices())
	assert.Equal(t, 6, g.EdgeCount())

	e, err := g.Edge("1,2", "7,2")
	require.NoError(t, err)
	assert.Equal(t, int64(6), e.Weight, "5 corridor cells plus the landing step")
	dir, ok := net.Route(e.ID)
	require.True(t, ok)
	assert.Equal(t, gridgraph.Right, dir)

	back, err := g.Edge("7,2", "1,2")
	require.NoError(t, err)
	assert.Equal(t, int64(6), back.Weight)

	for _, e := range g.Edges() {
		assert.NotEqual(t, e.From, e.To, "self-loop %s", e.ID)
		assert.Positive(t, e.Weight)
	}

	start, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, "0,2", start)
	assert.Equal(t, maze.Point{X: 8, Y: 2}, net.End())
}

func TestReduce_DeadEndsEmitNothing(t *testing.T) {
	net, err := maze.Reduce(mustGrid(t, corridorMaze...))
	require.NoError(t, err)

	dirs, ok := net.Departures(maze.Point{X: 1, Y: 2})
	require.True(t, ok)
	assert.Equal(t, []gridgraph.Direction{gridgraph.Left, gridgraph.Right, gridgraph.Up, gridgraph.Down}, dirs)

	out, err := net.Graph.Neighbors("1,2")
	require.NoError(t, err)
	require.Len(t, out, 2, "up and down are dead ends")
	assert.Equal(t, "0,2", out[0].To)
	assert.Equal(t, "7,2", out[1].To)

	_, ok = net.Departures(maze.Point{X: 1, Y: 1})
	assert.False(t, ok)
}

func TestReduce_NoSelfLoop(t *testing.T) {
	net, err := maze.Reduce(mustGrid(t, loopMaze...))
	require.NoError(t, err)

	assert.Equal(t, []string{"2,3", "2,4", "2,5"}, net.Graph.Vertices())
	assert.Equal(t, 4, net.Graph.EdgeCount())
	assert.False(t, net.Graph.HasEdge("2,3", "2,3"))
}

func TestReduce_ParallelCorridors(t *testing.T) {
	net, err := maze.Reduce(mustGrid(t, parallelMaze...))
	require.NoError(t, err)

	out, err := net.Graph.Neighbors("1,3")
	require.NoError(t, err)
	var weights []int64
	for _, e := range out {
		if e.To == "3,3" {
			weights = append(weights, e.Weight)
		}
	}
	assert.ElementsMatch(t, []int64{2, 6}, weights)

	e, err := net.Graph.Edge("1,3", "3,3")
	require.NoError(t, err)
	assert.Equal(t, int64(2), e.Weight)
}

func TestReduce_Endpoints(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want error
	}{
		{"NoStart", []string{"  X"}, maze.ErrNoStart},
		{"NoEnd", []string{"O  "}, maze.ErrNoEnd},
		{"TwoStarts", []string{"OOX"}, maze.ErrDuplicateStart},
		{"TwoEnds", []string{"OXX"}, maze.ErrDuplicateEnd},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.Reduce(mustGrid(t, tc.rows...))
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestReduce_NilGrid(t *testing.T) {
	_, err := maze.Reduce(nil)
	assert.ErrorIs(t, err, maze.ErrNilGrid)
}

func TestTrace(t *testing.T) {
	g := mustGrid(t, corridorMaze...)

	cells, err := maze.Trace(g, maze.Point{X: 1, Y: 2}, gridgraph.Right)
	require.NoError(t, err)
	require.Len(t, cells, 6)
	assert.Equal(t, maze.Point{X: 2, Y: 2}, cells[0])
	assert.Equal(t, maze.Point{X: 7, Y: 2}, cells[5])

	cells, err = maze.Trace(g, maze.Point{X: 1, Y: 2}, gridgraph.Up)
	assert.ErrorIs(t, err, maze.ErrDeadEnd)
	assert.Equal(t, []maze.Point{{X: 1, Y: 1}}, cells)
}

func TestTrace_CorridorFaults(t *testing.T) {
	t.Run("IntoWall", func(t *testing.T) {
		g := mustGrid(t, corridorMaze...)
		_, err := maze.Trace(g, maze.Point{X: 1, Y: 2}, gridgraph.Up)
		require.ErrorIs(t, err, maze.ErrDeadEnd)
		_, err = maze.Trace(g, maze.Point{X: 2, Y: 2}, gridgraph.Up)
		assert.ErrorIs(t, err, maze.ErrCorridor)
	})
	t.Run("IsolatedCell", func(t *testing.T) {
		g := mustGrid(t, "###", "# #", "###")
		_, err := maze.Trace(g, maze.Point{X: 0, Y: 1}, gridgraph.Right)
		assert.ErrorIs(t, err, maze.ErrCorridor)
	})
	t.Run("RingWithoutJunction", func(t *testing.T) {
		g := mustGrid(t,
			"#####",
			"#   #",
			"# # #",
			"#   #",
			"#####",
		)
		_, err := maze.Trace(g, maze.Point{X: 1, Y: 1}, gridgraph.Right)
		assert.ErrorIs(t, err, maze.ErrCorridor)
	})
}

func TestPoint(t *testing.T) {
	p := maze.Point{X: 12, Y: 3}
	assert.Equal(t, "12,3", p.String())

	got, err := maze.ParsePoint("12,3")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	for _, bad := range []string{"", "12", "a,3", "1,b"} {
		_, err := maze.ParsePoint(bad)
		assert.ErrorIs(t, err, maze.ErrBadPoint, bad)
	}
}
