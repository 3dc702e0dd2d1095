package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nagy135/convex-game-of-life/internal/core"
)

// DefaultPollInterval is how often a coordinator asks running boards to
// advance.
const DefaultPollInterval = 200 * time.Millisecond

// Ticker is the slice of the engine a coordinator drives. Both
// *engine.Engine and *transport.Client satisfy it.
type Ticker interface {
	ListBoards(ctx context.Context) ([]core.Board, error)
	Advance(ctx context.Context, boardID string) error
}

// Runner periodically advances every running board. Boards advance in
// parallel; the engine serializes work per board.
type Runner struct {
	boards Ticker
	poll   time.Duration
	log    *log.Logger
}

// NewRunner returns a runner polling every poll interval.
func NewRunner(boards Ticker, poll time.Duration, logger *log.Logger) *Runner {
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{boards: boards, poll: poll, log: logger}
}

// CheckIntervals warns when the poll interval would be swallowed by the
// throttle window.
func CheckIntervals(logger *log.Logger, poll, throttle time.Duration) {
	if poll < throttle {
		logger.Printf("poll interval %v is shorter than throttle window %v; some ticks will be dropped", poll, throttle)
	}
}

// Tick advances every running board once. A failing board does not keep the
// others from advancing; each failure is logged and all are returned joined.
func (r *Runner) Tick(ctx context.Context) error {
	boards, err := r.boards.ListBoards(ctx)
	if err != nil {
		r.log.Printf("list boards: %v", err)
		return err
	}
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	for _, b := range boards {
		if b.Paused {
			continue
		}
		id := b.ID
		g.Go(func() error {
			err := r.boards.Advance(ctx, id)
			if err == nil || errors.Is(err, core.ErrNotFound) {
				return nil
			}
			r.log.Printf("advance board %s: %v", id, err)
			mu.Lock()
			errs = append(errs, fmt.Errorf("board %s: %w", id, err))
			mu.Unlock()
			return nil
		})
	}
	g.Wait()
	return errors.Join(errs...)
}

// Run ticks until ctx is cancelled. Tick failures are logged and the loop
// keeps going.
func (r *Runner) Run(ctx context.Context) error {
	t := time.NewTicker(r.poll)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			// Per-board failures are already logged by Tick.
			r.Tick(ctx)
		}
	}
}
