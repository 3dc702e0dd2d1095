package ui

import (
	"fmt"

	"github.com/nagy135/convex-game-of-life/internal/core"
)

// Status is the text shown over the board view.
type Status struct {
	Board      core.Board
	Index      int
	Count      int
	Population int
	View       core.Rect
}

// Lines renders the status panel text.
func (s Status) Lines() []string {
	state := "running"
	if s.Board.Paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("%s [%d/%d] %s", s.Board.Name, s.Index+1, s.Count, state),
		fmt.Sprintf("living cells: %d", s.Population),
		fmt.Sprintf("view: (%d,%d) %dx%d", s.View.X, s.View.Y, s.View.W, s.View.H),
		"space play/pause  n step  c clear  r random  tab next  b new  p preview",
	}
}
