package transport

import (
	"context"
	"fmt"
	"io"
	"net/rpc"
	"strings"

	"github.com/nagy135/convex-game-of-life/internal/core"
)

// Client calls a remote engine. Its methods mirror engine.Engine.
type Client struct {
	rpc *rpc.Client
}

// Dial connects to a server listening on addr.
func Dial(network, addr string) (*Client, error) {
	c, err := rpc.Dial(network, addr)
	if err != nil {
		return nil, err
	}
	return &Client{rpc: c}, nil
}

// NewClient wraps an established connection.
func NewClient(conn io.ReadWriteCloser) *Client {
	return &Client{rpc: rpc.NewClient(conn)}
}

// Close closes the underlying connection.
func (c *Client) Close() error { return c.rpc.Close() }

func (c *Client) call(ctx context.Context, method string, req, res any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	call := c.rpc.Go(method, req, res, make(chan *rpc.Call, 1))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-call.Done:
	}
	return remoteError(call.Error)
}

// remoteError restores core.ErrNotFound from its wire string.
func remoteError(err error) error {
	se, ok := err.(rpc.ServerError)
	if !ok {
		return err
	}
	if strings.HasSuffix(string(se), core.ErrNotFound.Error()) {
		return fmt.Errorf("%s: %w", strings.TrimSuffix(strings.TrimSuffix(string(se), core.ErrNotFound.Error()), ": "), core.ErrNotFound)
	}
	return err
}

func (c *Client) CreateBoard(ctx context.Context, name string) (core.Board, error) {
	var res BoardResponse
	err := c.call(ctx, CreateBoardHandler, CreateBoardRequest{Name: name}, &res)
	return res.Board, err
}

func (c *Client) GetBoard(ctx context.Context, id string) (core.Board, error) {
	var res BoardResponse
	err := c.call(ctx, GetBoardHandler, BoardRequest{BoardID: id}, &res)
	return res.Board, err
}

func (c *Client) ListBoards(ctx context.Context) ([]core.Board, error) {
	return c.listBoards(ctx, false)
}

// ListRunning returns only boards that are not paused.
func (c *Client) ListRunning(ctx context.Context) ([]core.Board, error) {
	return c.listBoards(ctx, true)
}

func (c *Client) listBoards(ctx context.Context, runningOnly bool) ([]core.Board, error) {
	var res ListBoardsResponse
	err := c.call(ctx, ListBoardsHandler, ListBoardsRequest{RunningOnly: runningOnly}, &res)
	return res.Boards, err
}

func (c *Client) ListCells(ctx context.Context, boardID string) ([]core.Cell, error) {
	var res ListCellsResponse
	err := c.call(ctx, ListCellsHandler, BoardRequest{BoardID: boardID}, &res)
	return res.Cells, err
}

func (c *Client) Population(ctx context.Context, boardID string) (int, error) {
	cells, err := c.ListCells(ctx, boardID)
	return len(cells), err
}

func (c *Client) TogglePause(ctx context.Context, boardID string) (bool, error) {
	var res TogglePauseResponse
	err := c.call(ctx, TogglePauseHandler, BoardRequest{BoardID: boardID}, &res)
	return res.Paused, err
}

func (c *Client) Advance(ctx context.Context, boardID string) error {
	return c.call(ctx, AdvanceHandler, BoardRequest{BoardID: boardID}, &BoardResponse{})
}

func (c *Client) Step(ctx context.Context, boardID string) error {
	return c.call(ctx, StepHandler, BoardRequest{BoardID: boardID}, &BoardResponse{})
}

func (c *Client) Clear(ctx context.Context, boardID string) error {
	return c.call(ctx, ClearHandler, BoardRequest{BoardID: boardID}, &BoardResponse{})
}

func (c *Client) ToggleCell(ctx context.Context, boardID string, x, y int) (bool, error) {
	var res ToggleCellResponse
	err := c.call(ctx, ToggleCellHandler, ToggleCellRequest{BoardID: boardID, X: x, Y: y}, &res)
	return res.Alive, err
}

func (c *Client) Seed(ctx context.Context, boardID string, view core.Rect, seed int64, density float64) (int, error) {
	var res SeedResponse
	err := c.call(ctx, SeedHandler, SeedRequest{BoardID: boardID, View: view, Seed: seed, Density: density}, &res)
	return res.Placed, err
}
