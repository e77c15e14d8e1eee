package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/mazepath/asciimaze"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// readMaze decodes the maze at path; "-" reads stdin.
func readMaze(ctx context.Context, path string, stdin io.Reader, cs asciimaze.Charset) (*gridgraph.Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open maze: %w", err)
		}
		defer f.Close()
		r = f
	}
	g, err := asciimaze.Decode(r, cs)
	if err != nil {
		return nil, explain(err, cs)
	}
	loggerFromContext(ctx).Debug("loaded maze", "file", path, "width", g.Width(), "height", g.Height())

	return g, nil
}

// writeFile writes data to path, removing a partial file on failure.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}
