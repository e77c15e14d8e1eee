// Package asciimaze reads and writes mazes drawn as text.
//
// One line is one grid row. With the default charset '#' is a wall, ' ' is
// floor, 'O' the start and 'X' the end; solved routes are written with '+'.
// Short lines are padded with Filled cells, which are written back as
// nothing, so ragged input survives a round trip.
package asciimaze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mazepath/gridgraph"
)

var (
	// ErrNoStart indicates the text holds no start marker.
	ErrNoStart = errors.New("asciimaze: no start tile")
	// ErrTooManyStarts indicates more than one start marker.
	ErrTooManyStarts = errors.New("asciimaze: too many start tiles")
	// ErrNoEnd indicates the text holds no end marker.
	ErrNoEnd = errors.New("asciimaze: no end tile")
	// ErrTooManyEnds indicates more than one end marker.
	ErrTooManyEnds = errors.New("asciimaze: too many end tiles")
	// ErrInvalidChar indicates a rune outside the charset.
	ErrInvalidChar = errors.New("asciimaze: invalid character")
	// ErrBadCharset indicates a charset that cannot be decoded unambiguously.
	ErrBadCharset = errors.New("asciimaze: invalid charset")
)

// Decode reads a maze from r.
//
// Marker counts are checked before anything else, in the order start then
// end. A single trailing newline does not add an empty row, and a '\r' at the
// end of a line is dropped.
func Decode(r io.Reader, cs Charset) (*gridgraph.Grid, error) {
	if err := cs.Validate(); err != nil {
		return nil, err
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("asciimaze: read: %w", err)
	}
	text := string(raw)

	switch n := strings.Count(text, string(cs.Start)); {
	case n == 0:
		return nil, ErrNoStart
	case n > 1:
		return nil, fmt.Errorf("%w: found %d", ErrTooManyStarts, n)
	}
	switch n := strings.Count(text, string(cs.End)); {
	case n == 0:
		return nil, ErrNoEnd
	case n > 1:
		return nil, fmt.Errorf("%w: found %d", ErrTooManyEnds, n)
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	rows := make([][]gridgraph.Tile, len(lines))
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		row := make([]gridgraph.Tile, 0, len(line))
		x := 0
		for _, c := range line {
			t, ok := cs.decodeRune(c)
			if !ok {
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrInvalidChar, c, y+1, x+1)
			}
			row = append(row, t)
			x++
		}
		rows[y] = row
	}

	return gridgraph.NewGrid(rows)
}

// Encode writes g to w, one line per row, each terminated by '\n'.
func Encode(w io.Writer, g *gridgraph.Grid, cs Charset) error {
	bw := bufio.NewWriter(w)
	for _, row := range g.Rows() {
		for _, t := range row {
			if c, ok := cs.encodeTile(t); ok {
				if _, err := bw.WriteRune(c); err != nil {
					return err
				}
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// String renders g with the default charset.
func String(g *gridgraph.Grid) string {
	var sb strings.Builder
	_ = Encode(&sb, g, DefaultCharset())
	return sb.String()
}
