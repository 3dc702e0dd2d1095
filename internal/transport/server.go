package transport

import (
	"context"
	"errors"
	"log"
	"net"
	"net/rpc"

	"github.com/nagy135/convex-game-of-life/internal/engine"
)

// Boards is the RPC receiver. Each call runs to completion on the engine.
type Boards struct {
	engine *engine.Engine
	log    *log.Logger
}

// NewBoards wraps e for registration with an rpc.Server.
func NewBoards(e *engine.Engine, logger *log.Logger) *Boards {
	if logger == nil {
		logger = log.Default()
	}
	return &Boards{engine: e, log: logger}
}

func (b *Boards) CreateBoard(req CreateBoardRequest, res *BoardResponse) (err error) {
	res.Board, err = b.engine.CreateBoard(context.Background(), req.Name)
	if err == nil {
		b.log.Printf("created board %s (%q)", res.Board.ID, res.Board.Name)
	}
	return err
}

func (b *Boards) GetBoard(req BoardRequest, res *BoardResponse) (err error) {
	res.Board, err = b.engine.GetBoard(context.Background(), req.BoardID)
	return err
}

func (b *Boards) ListBoards(req ListBoardsRequest, res *ListBoardsResponse) error {
	boards, err := b.engine.ListBoards(context.Background())
	if err != nil {
		return err
	}
	for _, board := range boards {
		if req.RunningOnly && board.Paused {
			continue
		}
		res.Boards = append(res.Boards, board)
	}
	return nil
}

func (b *Boards) ListCells(req BoardRequest, res *ListCellsResponse) (err error) {
	res.Cells, err = b.engine.ListCells(context.Background(), req.BoardID)
	return err
}

func (b *Boards) TogglePause(req BoardRequest, res *TogglePauseResponse) (err error) {
	res.Paused, err = b.engine.TogglePause(context.Background(), req.BoardID)
	if err == nil {
		b.log.Printf("board %s paused=%v", req.BoardID, res.Paused)
	}
	return err
}

func (b *Boards) Advance(req BoardRequest, res *BoardResponse) error {
	if err := b.engine.Advance(context.Background(), req.BoardID); err != nil {
		return err
	}
	return b.GetBoard(req, res)
}

func (b *Boards) Step(req BoardRequest, res *BoardResponse) error {
	if err := b.engine.Step(context.Background(), req.BoardID); err != nil {
		return err
	}
	return b.GetBoard(req, res)
}

func (b *Boards) Clear(req BoardRequest, res *BoardResponse) error {
	if err := b.engine.Clear(context.Background(), req.BoardID); err != nil {
		return err
	}
	return b.GetBoard(req, res)
}

func (b *Boards) ToggleCell(req ToggleCellRequest, res *ToggleCellResponse) (err error) {
	res.Alive, err = b.engine.ToggleCell(context.Background(), req.BoardID, req.X, req.Y)
	return err
}

func (b *Boards) Seed(req SeedRequest, res *SeedResponse) (err error) {
	res.Placed, err = b.engine.Seed(context.Background(), req.BoardID, req.View, req.Seed, req.Density)
	return err
}

// NewServer returns an rpc.Server with the Boards receiver registered.
func NewServer(e *engine.Engine, logger *log.Logger) (*rpc.Server, error) {
	srv := rpc.NewServer()
	if err := srv.RegisterName("Boards", NewBoards(e, logger)); err != nil {
		return nil, err
	}
	return srv, nil
}

// Serve accepts connections on l until ctx is cancelled.
func Serve(ctx context.Context, l net.Listener, srv *rpc.Server) error {
	go func() {
		<-ctx.Done()
		l.Close()
	}()
	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		go srv.ServeConn(conn)
	}
}
