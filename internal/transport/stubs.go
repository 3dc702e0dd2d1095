// Package transport exposes the engine over net/rpc.
package transport

import "github.com/nagy135/convex-game-of-life/internal/core"

// Handler names registered by the server.
var (
	CreateBoardHandler = "Boards.CreateBoard"
	GetBoardHandler    = "Boards.GetBoard"
	ListBoardsHandler  = "Boards.ListBoards"
	ListCellsHandler   = "Boards.ListCells"
	TogglePauseHandler = "Boards.TogglePause"
	AdvanceHandler     = "Boards.Advance"
	StepHandler        = "Boards.Step"
	ClearHandler       = "Boards.Clear"
	ToggleCellHandler  = "Boards.ToggleCell"
	SeedHandler        = "Boards.Seed"
)

type CreateBoardRequest struct {
	Name string
}

type BoardRequest struct {
	BoardID string
}

type BoardResponse struct {
	Board core.Board
}

// ListBoardsRequest optionally narrows the listing to running boards.
type ListBoardsRequest struct {
	RunningOnly bool
}

type ListBoardsResponse struct {
	Boards []core.Board
}

type ListCellsResponse struct {
	Cells []core.Cell
}

type TogglePauseResponse struct {
	Paused bool
}

type ToggleCellRequest struct {
	BoardID string
	X, Y    int
}

type ToggleCellResponse struct {
	Alive bool
}

type SeedRequest struct {
	BoardID string
	View    core.Rect
	Seed    int64
	Density float64
}

type SeedResponse struct {
	Placed int
}
