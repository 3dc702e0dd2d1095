package core

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// BoardPatch lists the board fields a transaction may change. Nil fields are
// left untouched.
type BoardPatch struct {
	Paused      *bool
	LastAdvance *time.Time
}

// Store is the per-board cell store the engine runs against.
//
// Implementations must be safe for concurrent use. Update must apply all
// writes made through its Tx atomically: concurrent readers observe the
// board either before or after the callback, never in between.
type Store interface {
	CreateBoard(ctx context.Context, name string) (Board, error)
	GetBoard(ctx context.Context, id string) (Board, error)
	ListBoards(ctx context.Context) ([]Board, error)
	ListCells(ctx context.Context, boardID string) ([]Cell, error)

	// Update runs fn against a transaction scoped to one board. Returning
	// an error from fn discards every write made through the Tx.
	Update(ctx context.Context, boardID string, fn func(Tx) error) error
}

// Tx is a read-write view of a single board inside Store.Update.
type Tx interface {
	Board() Board
	Cells() []Cell
	CellAt(x, y int) (Cell, bool)
	PatchBoard(p BoardPatch) error
	InsertCell(x, y int) (Cell, error)
	DeleteCell(id string) error
}

// StoreFactory constructs a Store from flag-style key/value options.
type StoreFactory func(cfg map[string]string) (Store, error)

var stores = map[string]StoreFactory{}

// RegisterStore adds a store factory under the provided name.
func RegisterStore(name string, f StoreFactory) {
	if name == "" || f == nil {
		return
	}
	stores[name] = f
}

// Stores lists the registered store names in sorted order.
func Stores() []string {
	names := make([]string, 0, len(stores))
	for name := range stores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OpenStore constructs the named store.
func OpenStore(name string, cfg map[string]string) (Store, error) {
	f, ok := stores[name]
	if !ok {
		return nil, fmt.Errorf("unknown store %q", name)
	}
	return f(cfg)
}
