package core

import (
	"errors"
	"time"

	geom "github.com/nagy135/convex-game-of-life/pkg/core"
)

// ErrNotFound reports that an operation referenced a board that does not exist.
var ErrNotFound = errors.New("board not found")

// Point is an unbounded board coordinate.
type Point = geom.Point

// Rect is a half-open window over a board.
type Rect = geom.Rect

// Board is one independent Life grid with its own pause state.
type Board struct {
	ID     string
	Name   string
	Paused bool
	// LastAdvance is nil until the first applied generation.
	LastAdvance *time.Time
}

// Cell is a living coordinate on a board. Absence of a cell means dead.
type Cell struct {
	ID      string
	BoardID string
	X       int
	Y       int
}

// Point returns the coordinate of the cell.
func (c Cell) Point() Point { return Point{X: c.X, Y: c.Y} }
