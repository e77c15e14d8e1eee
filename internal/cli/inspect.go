package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/maze"
)

// newInspectCmd creates the inspect command.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <maze>",
		Short: "Describe the decision-point graph of a maze",
		Long: `Reduce a maze to its decision points and corridors and report their
counts, how much of the graph the start can reach, the route with the
fewest corridors and the shortest route in steps.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), args[0], cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runInspect(ctx context.Context, input string, stdin io.Reader, stdout io.Writer) error {
	cfg := configFromContext(ctx)
	cs, err := cfg.AsciiCharset()
	if err != nil {
		return err
	}
	g, err := readMaze(ctx, input, stdin, cs)
	if err != nil {
		return err
	}
	net, err := maze.Reduce(g)
	if err != nil {
		return explain(err, cs)
	}

	start, end := net.Start().String(), net.End().String()
	reach, err := bfs.BFS(net.Graph, start, bfs.WithContext(ctx))
	if err != nil {
		return err
	}

	p := newPalette(stdout, cfg.Output.Color)
	fmt.Fprintln(stdout, p.title.Render(input))
	p.field(stdout, "size", fmt.Sprintf("%d×%d", g.Width(), g.Height()))
	p.field(stdout, "open regions", len(g.Regions()))
	p.field(stdout, "decision points", net.Graph.VertexCount())
	p.field(stdout, "corridors", net.Graph.EdgeCount())
	p.field(stdout, "start", start)
	p.field(stdout, "end", end)
	p.field(stdout, "reachable", fmt.Sprintf("%d/%d", len(reach.Order), net.Graph.VertexCount()))
	if unreached := reach.Unreached(net.Graph.Vertices()); len(unreached) > 0 {
		p.field(stdout, "unreachable", p.dim.Render(strings.Join(unreached, " ")))
	}

	if hops, err := reach.PathTo(end); err == nil {
		p.field(stdout, "fewest corridors", fmt.Sprintf("%d (%s)", len(hops)-1, strings.Join(hops, " "+iconArrow+" ")))
	}

	path, err := dijkstra.ShortestPath(net.Graph)
	switch {
	case errors.Is(err, dijkstra.ErrNoPath):
		p.fail(stdout, explain(err, cs).Error())
		return nil
	case err != nil:
		return err
	}
	p.field(stdout, "shortest route", path.String())
	p.ok(stdout, fmt.Sprintf("solvable in %s steps", p.number.Render(fmt.Sprint(path.Distance))))

	return nil
}
