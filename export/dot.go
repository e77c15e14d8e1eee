package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/mazepath/maze"
)

// Options configures DOT output.
type Options struct {
	// Path, if set, is a vertex sequence whose edges are drawn highlighted.
	Path []string
}

// ToDOT converts a reduced maze to Graphviz DOT.
//
// Vertices are labelled with their "x,y" coordinates; the start and end are
// drawn as double circles. Edges carry "weight direction" labels, where the
// direction is the one the corridor leaves its source in.
func ToDOT(net *maze.Network, opts Options) string {
	onPath := make(map[[2]string]bool, len(opts.Path))
	for i := 0; i+1 < len(opts.Path); i++ {
		onPath[[2]string{opts.Path[i], opts.Path[i+1]}] = true
	}
	start, end := net.Start().String(), net.End().String()

	var buf bytes.Buffer
	buf.WriteString("digraph maze {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle, fontsize=10];\n")
	buf.WriteString("\n")

	for _, id := range net.Graph.Vertices() {
		attrs := []string{fmt.Sprintf("label=%q", id)}
		switch id {
		case start:
			attrs = append(attrs, "shape=doublecircle", "color=forestgreen")
		case end:
			attrs = append(attrs, "shape=doublecircle", "color=firebrick")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range net.Graph.Edges() {
		label := fmt.Sprintf("%d", e.Weight)
		if dir, ok := net.Route(e.ID); ok {
			label += " " + dir.String()
		}
		attrs := []string{fmt.Sprintf("label=%q", label)}
		if onPath[[2]string{e.From, e.To}] {
			attrs = append(attrs, "color=firebrick", "penwidth=2")
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
