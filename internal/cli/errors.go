package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazepath/asciimaze"
	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/maze"
)

// userError carries a one-line message for the terminal while keeping the
// underlying error available to errors.Is.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

// explain turns known maze failures into the messages printed to users.
// Markers are named with the runes of the active charset.
func explain(err error, cs asciimaze.Charset) error {
	if err == nil {
		return nil
	}
	var msg string
	switch {
	case errors.Is(err, asciimaze.ErrNoStart), errors.Is(err, maze.ErrNoStart):
		msg = fmt.Sprintf("No start tile (%c) set in the maze.", cs.Start)
	case errors.Is(err, asciimaze.ErrTooManyStarts), errors.Is(err, maze.ErrDuplicateStart):
		msg = fmt.Sprintf("Too many start tiles (%c) set in the maze.", cs.Start)
	case errors.Is(err, asciimaze.ErrNoEnd), errors.Is(err, maze.ErrNoEnd):
		msg = fmt.Sprintf("No end tile (%c) set in the maze.", cs.End)
	case errors.Is(err, asciimaze.ErrTooManyEnds), errors.Is(err, maze.ErrDuplicateEnd):
		msg = fmt.Sprintf("Too many end tiles (%c) set in the maze.", cs.End)
	case errors.Is(err, asciimaze.ErrInvalidChar):
		msg = "Invalid character in maze: " + strings.TrimPrefix(err.Error(), asciimaze.ErrInvalidChar.Error()+": ")
	case errors.Is(err, dijkstra.ErrNoPath):
		msg = "No path from the start to the end exists in this maze."
	default:
		return err
	}

	return &userError{msg: msg, err: err}
}
