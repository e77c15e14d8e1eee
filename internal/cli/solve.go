package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/asciimaze"
	"github.com/katalvlaran/mazepath/maze"
)

// newSolveCmd creates the solve command.
//
// Usage: mazepath solve <maze> [output]
//
// The solved maze is written to output if given, otherwise printed to
// stdout (styled when color is enabled).
func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <maze> [output]",
		Short: "Find the shortest route through a maze",
		Long: `Find the shortest route from the start to the end of a text maze and
draw it with the path character. Use "-" to read the maze from stdin.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var output string
			if len(args) == 2 {
				output = args[1]
			}
			return runSolve(cmd.Context(), args[0], output, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func runSolve(ctx context.Context, input, output string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg := configFromContext(ctx)
	cs, err := cfg.AsciiCharset()
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	logger := loggerFromContext(ctx).With("run", runID)
	prog := newProgress(logger)

	g, err := readMaze(ctx, input, stdin, cs)
	if err != nil {
		return err
	}
	sol, err := maze.Solve(g, maze.WithLogger(logger))
	if err != nil {
		return explain(err, cs)
	}
	prog.done("Solved maze", "distance", sol.Distance, "decision_points", sol.Vertices)

	if output != "" {
		if err := writeFile(output, func(w io.Writer) error {
			return asciimaze.Encode(w, sol.Grid, cs)
		}); err != nil {
			return err
		}
		logger.Info("Wrote solution", "file", output)
	} else {
		p := newPalette(stdout, cfg.Output.Color)
		var text strings.Builder
		if err := asciimaze.Encode(&text, sol.Grid, cs); err != nil {
			return err
		}
		fmt.Fprint(stdout, p.mazeText(text.String(), cs.Wall, cs.Start, cs.End, cs.Path))
	}

	if cfg.Output.Stats {
		p := newPalette(stderr, cfg.Output.Color)
		p.ok(stderr, fmt.Sprintf("distance %s over %s decision points %s run %s",
			p.number.Render(fmt.Sprint(sol.Distance)),
			p.number.Render(fmt.Sprint(len(sol.Path))),
			iconArrow, p.dim.Render(runID)))
	}

	return nil
}
