package asciimaze_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/asciimaze"
	"github.com/katalvlaran/mazepath/gridgraph"
)

func TestDecode(t *testing.T) {
	g, err := asciimaze.Decode(strings.NewReader("####\n#O X\n##\n"), asciimaze.DefaultCharset())
	require.NoError(t, err)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height(), "trailing newline adds no row")
	assert.Equal(t, gridgraph.Start, g.Get(1, 1))
	assert.Equal(t, gridgraph.Empty, g.Get(2, 1))
	assert.Equal(t, gridgraph.End, g.Get(3, 1))
	assert.Equal(t, gridgraph.Filled, g.Get(2, 2))
}

func TestDecode_CRLF(t *testing.T) {
	g, err := asciimaze.Decode(strings.NewReader("#O#\r\n#X#\r\n"), asciimaze.DefaultCharset())
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, gridgraph.End, g.Get(1, 1))
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"Empty", "", asciimaze.ErrNoStart},
		{"NoStart", "# X", asciimaze.ErrNoStart},
		{"TwoStarts", "O O X", asciimaze.ErrTooManyStarts},
		{"NoEnd", "O  ", asciimaze.ErrNoEnd},
		{"TwoEnds", "OX\nX", asciimaze.ErrTooManyEnds},
		{"StartCheckedFirst", "OO", asciimaze.ErrTooManyStarts},
		{"InvalidChar", "O.X", asciimaze.ErrInvalidChar},
		{"PathOnInput", "O+X", asciimaze.ErrInvalidChar},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := asciimaze.Decode(strings.NewReader(tc.text), asciimaze.DefaultCharset())
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestDecode_InvalidCharPosition(t *testing.T) {
	_, err := asciimaze.Decode(strings.NewReader("###\n#O?X"), asciimaze.DefaultCharset())
	require.ErrorIs(t, err, asciimaze.ErrInvalidChar)
	assert.Contains(t, err.Error(), `'?' at line 2, column 3`)
}

func TestEncode_RoundTrip(t *testing.T) {
	in := "#####\n#O  #\n#  X\n###\n"
	g, err := asciimaze.Decode(strings.NewReader(in), asciimaze.DefaultCharset())
	require.NoError(t, err)
	require.NoError(t, g.Set(2, 1, gridgraph.Path))

	var buf bytes.Buffer
	require.NoError(t, asciimaze.Encode(&buf, g, asciimaze.DefaultCharset()))
	assert.Equal(t, "#####\n#O+ #\n#  X\n###\n", buf.String())
	assert.Equal(t, buf.String(), asciimaze.String(g))
}

func TestCharset(t *testing.T) {
	cs := asciimaze.Charset{Wall: '█', Empty: '.', Start: 'S', End: 'E', Path: '*'}
	require.NoError(t, cs.Validate())

	g, err := asciimaze.Decode(strings.NewReader("█S.E█"), cs)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Wall, g.Get(0, 0))
	assert.Equal(t, 5, g.Width())

	var buf bytes.Buffer
	require.NoError(t, asciimaze.Encode(&buf, g, cs))
	assert.Equal(t, "█S.E█\n", buf.String())

	dup := asciimaze.DefaultCharset()
	dup.Path = dup.Wall
	assert.ErrorIs(t, dup.Validate(), asciimaze.ErrBadCharset)

	zero := asciimaze.DefaultCharset()
	zero.End = 0
	_, err = asciimaze.Decode(strings.NewReader("O X"), zero)
	assert.ErrorIs(t, err, asciimaze.ErrBadCharset)
}
