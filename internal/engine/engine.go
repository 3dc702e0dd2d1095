// Package engine advances and edits Game of Life boards held in a core.Store.
//
// Every mutation on a board runs under that board's lock and inside a single
// store transaction, so concurrent callers can neither double-advance a board
// nor create two cells at one coordinate. Boards never share a lock.
package engine

import (
	"context"
	"time"

	"github.com/nagy135/convex-game-of-life/internal/core"
	rng "github.com/nagy135/convex-game-of-life/pkg/core"
	"github.com/nagy135/convex-game-of-life/pkg/sims/life"
)

// Engine exposes the board operations consumed by coordinators and viewers.
type Engine struct {
	store core.Store
	cfg   Config
	now   func() time.Time
	locks boardLocks
}

// New returns an engine backed by store.
func New(store core.Store, cfg Config) *Engine {
	return &Engine{store: store, cfg: cfg, now: time.Now}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// CreateBoard allocates a paused, empty board.
func (e *Engine) CreateBoard(ctx context.Context, name string) (core.Board, error) {
	return e.store.CreateBoard(ctx, name)
}

// GetBoard returns a board or core.ErrNotFound.
func (e *Engine) GetBoard(ctx context.Context, id string) (core.Board, error) {
	return e.store.GetBoard(ctx, id)
}

// ListBoards returns every board.
func (e *Engine) ListBoards(ctx context.Context) ([]core.Board, error) {
	return e.store.ListBoards(ctx)
}

// ListCells returns the living cells of a board.
func (e *Engine) ListCells(ctx context.Context, boardID string) ([]core.Cell, error) {
	return e.store.ListCells(ctx, boardID)
}

// Population returns the number of living cells on a board.
func (e *Engine) Population(ctx context.Context, boardID string) (int, error) {
	cells, err := e.store.ListCells(ctx, boardID)
	if err != nil {
		return 0, err
	}
	return len(cells), nil
}

// TogglePause flips the pause flag and returns the new value. The last
// advance time is kept, so unpausing does not reopen the throttle window.
func (e *Engine) TogglePause(ctx context.Context, boardID string) (paused bool, err error) {
	err = e.mutate(ctx, boardID, func(tx core.Tx) error {
		paused = !tx.Board().Paused
		return tx.PatchBoard(core.BoardPatch{Paused: &paused})
	})
	return paused, err
}

// Advance applies one generation to a running board. Paused boards and calls
// inside the throttle window return nil without touching the board.
func (e *Engine) Advance(ctx context.Context, boardID string) error {
	return e.advance(ctx, boardID, false)
}

// Step applies one generation regardless of the pause flag. The throttle
// window still applies.
func (e *Engine) Step(ctx context.Context, boardID string) error {
	return e.advance(ctx, boardID, true)
}

func (e *Engine) advance(ctx context.Context, boardID string, ignorePause bool) error {
	return e.mutate(ctx, boardID, func(tx core.Tx) error {
		b := tx.Board()
		if b.Paused && !ignorePause {
			return nil
		}
		now := e.now()
		var last time.Time
		if b.LastAdvance != nil {
			last = *b.LastAdvance
		}
		if now.Sub(last) < e.cfg.ThrottleWindow {
			return nil
		}

		cells := tx.Cells()
		alive := make(life.Population, len(cells))
		ids := make(map[core.Point]string, len(cells))
		for _, c := range cells {
			alive[c.Point()] = struct{}{}
			ids[c.Point()] = c.ID
		}

		born, died := life.Diff(alive)
		for _, p := range died {
			if err := tx.DeleteCell(ids[p]); err != nil {
				return err
			}
		}
		for _, p := range born {
			if _, err := tx.InsertCell(p.X, p.Y); err != nil {
				return err
			}
		}
		return tx.PatchBoard(core.BoardPatch{LastAdvance: &now})
	})
}

// ToggleCell kills the cell at (x, y) if it is alive and births it otherwise.
// It works whether or not the board is paused and returns the new state.
func (e *Engine) ToggleCell(ctx context.Context, boardID string, x, y int) (alive bool, err error) {
	err = e.mutate(ctx, boardID, func(tx core.Tx) error {
		if c, ok := tx.CellAt(x, y); ok {
			alive = false
			return tx.DeleteCell(c.ID)
		}
		alive = true
		_, err := tx.InsertCell(x, y)
		return err
	})
	return alive, err
}

// Clear removes every cell from a board. Pause state and the last advance
// time are left as they are.
func (e *Engine) Clear(ctx context.Context, boardID string) error {
	return e.mutate(ctx, boardID, func(tx core.Tx) error {
		for _, c := range tx.Cells() {
			if err := tx.DeleteCell(c.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

// Seed replaces the cells inside view with a random pattern derived from
// seed, each coordinate alive with probability density. Cells outside view
// are kept. It returns the number of cells placed.
func (e *Engine) Seed(ctx context.Context, boardID string, view core.Rect, seed int64, density float64) (placed int, err error) {
	pts := rng.NewRNG(seed).Scatter(view, density)
	err = e.mutate(ctx, boardID, func(tx core.Tx) error {
		for _, c := range tx.Cells() {
			if view.Contains(c.Point()) {
				if err := tx.DeleteCell(c.ID); err != nil {
					return err
				}
			}
		}
		for _, p := range pts {
			if _, err := tx.InsertCell(p.X, p.Y); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(pts), nil
}

func (e *Engine) mutate(ctx context.Context, boardID string, fn func(core.Tx) error) error {
	unlock := e.locks.lock(boardID)
	defer unlock()
	return e.store.Update(ctx, boardID, fn)
}
