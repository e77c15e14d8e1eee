package maze

import "errors"

var (
	// ErrNoStart indicates the grid holds no Start tile.
	ErrNoStart = errors.New("maze: no start tile")
	// ErrNoEnd indicates the grid holds no End tile.
	ErrNoEnd = errors.New("maze: no end tile")
	// ErrDuplicateStart indicates more than one Start tile.
	ErrDuplicateStart = errors.New("maze: more than one start tile")
	// ErrDuplicateEnd indicates more than one End tile.
	ErrDuplicateEnd = errors.New("maze: more than one end tile")
	// ErrCorridor indicates a corridor walk found no way forward on a cell that
	// is not a dead end, or never reached a decision point. The grid is
	// inconsistent with the reducer's assumptions; reduction is aborted.
	ErrCorridor = errors.New("maze: corridor walk has no valid continuation")
	// ErrDeadEnd is returned by Trace when the corridor ends in a dead end.
	ErrDeadEnd = errors.New("maze: corridor ends in a dead end")
	// ErrMissingRoute indicates a path step with no connecting maze edge.
	ErrMissingRoute = errors.New("maze: no route between consecutive path vertices")
	// ErrBadPoint indicates a vertex label that is not "x,y".
	ErrBadPoint = errors.New("maze: malformed point label")
	// ErrNilGrid indicates a nil grid argument.
	ErrNilGrid = errors.New("maze: grid is nil")
	// ErrNilNetwork indicates a nil or empty network argument.
	ErrNilNetwork = errors.New("maze: network is nil")
)
