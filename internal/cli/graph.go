package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/export"
	"github.com/katalvlaran/mazepath/maze"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

var errUnknownFormat = errors.New("unknown format")

// graphOptions holds flags for the graph command.
type graphOptions struct {
	format    string
	output    string
	highlight bool
}

// newGraphCmd creates the graph command.
func newGraphCmd() *cobra.Command {
	opts := graphOptions{format: formatDOT, highlight: true}

	cmd := &cobra.Command{
		Use:   "graph <maze>",
		Short: "Export the decision-point graph as DOT or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd.Context(), args[0], opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot or svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.highlight, "highlight", opts.highlight, "highlight the shortest route")

	return cmd
}

func runGraph(ctx context.Context, input string, opts graphOptions, stdin io.Reader, stdout io.Writer) error {
	if opts.format != formatDOT && opts.format != formatSVG {
		return fmt.Errorf("%w: %q (want dot or svg)", errUnknownFormat, opts.format)
	}
	cfg := configFromContext(ctx)
	cs, err := cfg.AsciiCharset()
	if err != nil {
		return err
	}
	logger := loggerFromContext(ctx)

	g, err := readMaze(ctx, input, stdin, cs)
	if err != nil {
		return err
	}
	net, err := maze.Reduce(g)
	if err != nil {
		return explain(err, cs)
	}

	var dotOpts export.Options
	if opts.highlight {
		path, err := dijkstra.ShortestPath(net.Graph)
		switch {
		case err == nil:
			dotOpts.Path = path.Vertices
		case errors.Is(err, dijkstra.ErrNoPath):
			logger.Warn("No route to highlight", "maze", input)
		default:
			return err
		}
	}

	dot := export.ToDOT(net, dotOpts)
	data := []byte(dot)
	if opts.format == formatSVG {
		prog := newProgress(logger)
		if data, err = export.RenderSVG(ctx, dot); err != nil {
			return err
		}
		prog.done("Rendered SVG", "bytes", len(data))
	}

	if opts.output == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := writeFile(opts.output, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	}); err != nil {
		return err
	}
	logger.Info("Wrote graph", "file", opts.output, "format", opts.format)

	return nil
}
