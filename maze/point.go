package maze

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a cell coordinate; X is the column, Y the row (top row is 0).
type Point struct {
	X, Y int
}

// String returns the vertex label "x,y".
func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// ParsePoint parses a vertex label produced by Point.String.
func ParsePoint(label string) (Point, error) {
	xs, ys, ok := strings.Cut(label, ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrBadPoint, label)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: %v", ErrBadPoint, label, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: %v", ErrBadPoint, label, err)
	}

	return Point{X: x, Y: y}, nil
}
