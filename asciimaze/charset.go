package asciimaze

import (
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Charset maps tiles to the runes used in maze text.
type Charset struct {
	Wall  rune
	Empty rune
	Start rune
	End   rune
	Path  rune
}

// DefaultCharset returns the classic '#', ' ', 'O', 'X', '+' set.
func DefaultCharset() Charset {
	return Charset{Wall: '#', Empty: ' ', Start: 'O', End: 'X', Path: '+'}
}

// Validate rejects a charset with zero or repeated runes.
func (cs Charset) Validate() error {
	seen := make(map[rune]string, 5)
	for _, e := range []struct {
		name string
		r    rune
	}{
		{"wall", cs.Wall}, {"empty", cs.Empty}, {"start", cs.Start}, {"end", cs.End}, {"path", cs.Path},
	} {
		if e.r == 0 || e.r == '\n' || e.r == '\r' {
			return fmt.Errorf("%w: %s rune %q", ErrBadCharset, e.name, e.r)
		}
		if other, dup := seen[e.r]; dup {
			return fmt.Errorf("%w: %q used for both %s and %s", ErrBadCharset, e.r, other, e.name)
		}
		seen[e.r] = e.name
	}

	return nil
}

// decodeRune maps an input rune to a tile. The path rune is output only.
func (cs Charset) decodeRune(r rune) (gridgraph.Tile, bool) {
	switch r {
	case cs.Wall:
		return gridgraph.Wall, true
	case cs.Empty:
		return gridgraph.Empty, true
	case cs.Start:
		return gridgraph.Start, true
	case cs.End:
		return gridgraph.End, true
	}
	return 0, false
}

// encodeTile maps a tile to its rune; Filled has none.
func (cs Charset) encodeTile(t gridgraph.Tile) (rune, bool) {
	switch t {
	case gridgraph.Wall:
		return cs.Wall, true
	case gridgraph.Empty:
		return cs.Empty, true
	case gridgraph.Start:
		return cs.Start, true
	case gridgraph.End:
		return cs.End, true
	case gridgraph.Path:
		return cs.Path, true
	}
	return 0, false
}
