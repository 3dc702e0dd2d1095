// Package memory provides an in-process core.Store.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nagy135/convex-game-of-life/internal/core"
)

// ErrDuplicateCell reports an insert at a coordinate that already holds a cell.
var ErrDuplicateCell = errors.New("cell already exists")

// ErrUnknownCell reports a delete of a cell id the board does not own.
var ErrUnknownCell = errors.New("unknown cell")

// Store keeps boards and their cells in memory. Each board carries its own
// lock so transactions on different boards never contend.
type Store struct {
	mu     sync.RWMutex
	boards map[string]*board
	order  []string

	newID func() string
}

type board struct {
	mu    sync.RWMutex
	info  core.Board
	cells map[string]core.Cell
	index map[core.Point]string
}

// New returns an empty store.
func New() *Store {
	return &Store{
		boards: make(map[string]*board),
		newID:  func() string { return uuid.NewString() },
	}
}

func init() {
	core.RegisterStore("memory", func(map[string]string) (core.Store, error) {
		return New(), nil
	})
}

func (s *Store) lookup(id string) (*board, error) {
	s.mu.RLock()
	b, ok := s.boards[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("board %s: %w", id, core.ErrNotFound)
	}
	return b, nil
}

// CreateBoard allocates a paused board with no cells.
func (s *Store) CreateBoard(ctx context.Context, name string) (core.Board, error) {
	if err := ctx.Err(); err != nil {
		return core.Board{}, err
	}
	b := &board{
		info:  core.Board{ID: s.newID(), Name: name, Paused: true},
		cells: make(map[string]core.Cell),
		index: make(map[core.Point]string),
	}
	s.mu.Lock()
	s.boards[b.info.ID] = b
	s.order = append(s.order, b.info.ID)
	s.mu.Unlock()
	return cloneBoard(b.info), nil
}

// GetBoard returns the board with the given id.
func (s *Store) GetBoard(ctx context.Context, id string) (core.Board, error) {
	if err := ctx.Err(); err != nil {
		return core.Board{}, err
	}
	b, err := s.lookup(id)
	if err != nil {
		return core.Board{}, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return cloneBoard(b.info), nil
}

// ListBoards returns every board in creation order.
func (s *Store) ListBoards(ctx context.Context) ([]core.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	list := make([]*board, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.boards[id])
	}
	s.mu.RUnlock()

	out := make([]core.Board, 0, len(list))
	for _, b := range list {
		b.mu.RLock()
		out = append(out, cloneBoard(b.info))
		b.mu.RUnlock()
	}
	return out, nil
}

// ListCells returns the living cells of a board sorted by row then column.
func (s *Store) ListCells(ctx context.Context, boardID string) ([]core.Cell, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := s.lookup(boardID)
	if err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return sortedCells(b.cells), nil
}

// Update runs fn under the board's write lock against a staged copy and
// publishes the copy only when fn succeeds.
func (s *Store) Update(ctx context.Context, boardID string, fn func(core.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := s.lookup(boardID)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	tx := &tx{
		info:  cloneBoard(b.info),
		cells: make(map[string]core.Cell, len(b.cells)),
		index: make(map[core.Point]string, len(b.index)),
		newID: s.newID,
	}
	for id, c := range b.cells {
		tx.cells[id] = c
	}
	for p, id := range b.index {
		tx.index[p] = id
	}
	if err := fn(tx); err != nil {
		return err
	}
	b.info, b.cells, b.index = tx.info, tx.cells, tx.index
	return nil
}

type tx struct {
	info  core.Board
	cells map[string]core.Cell
	index map[core.Point]string
	newID func() string
}

func (t *tx) Board() core.Board { return cloneBoard(t.info) }

func (t *tx) Cells() []core.Cell { return sortedCells(t.cells) }

func (t *tx) CellAt(x, y int) (core.Cell, bool) {
	id, ok := t.index[core.Point{X: x, Y: y}]
	if !ok {
		return core.Cell{}, false
	}
	return t.cells[id], true
}

func (t *tx) PatchBoard(p core.BoardPatch) error {
	if p.Paused != nil {
		t.info.Paused = *p.Paused
	}
	if p.LastAdvance != nil {
		ts := *p.LastAdvance
		t.info.LastAdvance = &ts
	}
	return nil
}

func (t *tx) InsertCell(x, y int) (core.Cell, error) {
	p := core.Point{X: x, Y: y}
	if _, ok := t.index[p]; ok {
		return core.Cell{}, fmt.Errorf("board %s at (%d,%d): %w", t.info.ID, x, y, ErrDuplicateCell)
	}
	c := core.Cell{ID: t.newID(), BoardID: t.info.ID, X: x, Y: y}
	t.cells[c.ID] = c
	t.index[p] = c.ID
	return c, nil
}

func (t *tx) DeleteCell(id string) error {
	c, ok := t.cells[id]
	if !ok {
		return fmt.Errorf("board %s cell %s: %w", t.info.ID, id, ErrUnknownCell)
	}
	delete(t.cells, id)
	delete(t.index, c.Point())
	return nil
}

func cloneBoard(b core.Board) core.Board {
	if b.LastAdvance != nil {
		ts := *b.LastAdvance
		b.LastAdvance = &ts
	}
	return b
}

func sortedCells(cells map[string]core.Cell) []core.Cell {
	out := make([]core.Cell, 0, len(cells))
	for _, c := range cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// BoardDump is the serializable state of one board.
type BoardDump struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Paused      bool       `json:"paused"`
	LastAdvance *time.Time `json:"lastAdvance,omitempty"`
	Cells       []CellDump `json:"cells"`
}

// CellDump is the serializable state of one cell.
type CellDump struct {
	ID string `json:"id"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
}

// Dump captures every board in creation order.
func (s *Store) Dump() []BoardDump {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]BoardDump, 0, len(s.order))
	for _, id := range s.order {
		b := s.boards[id]
		b.mu.RLock()
		info := cloneBoard(b.info)
		d := BoardDump{ID: info.ID, Name: info.Name, Paused: info.Paused, LastAdvance: info.LastAdvance}
		for _, c := range sortedCells(b.cells) {
			d.Cells = append(d.Cells, CellDump{ID: c.ID, X: c.X, Y: c.Y})
		}
		b.mu.RUnlock()
		out = append(out, d)
	}
	return out
}

// Load replaces the store contents with dumps. Cell ids are kept; cells
// without an id get a fresh one. Duplicate coordinates or ids within a board
// collapse to the first cell.
func (s *Store) Load(dumps []BoardDump) {
	boards := make(map[string]*board, len(dumps))
	order := make([]string, 0, len(dumps))
	for _, d := range dumps {
		b := &board{
			info:  cloneBoard(core.Board{ID: d.ID, Name: d.Name, Paused: d.Paused, LastAdvance: d.LastAdvance}),
			cells: make(map[string]core.Cell, len(d.Cells)),
			index: make(map[core.Point]string, len(d.Cells)),
		}
		for _, cd := range d.Cells {
			c := core.Cell{ID: cd.ID, BoardID: d.ID, X: cd.X, Y: cd.Y}
			if c.ID == "" {
				c.ID = s.newID()
			}
			if _, ok := b.index[c.Point()]; ok {
				continue
			}
			if _, ok := b.cells[c.ID]; ok {
				continue
			}
			b.cells[c.ID] = c
			b.index[c.Point()] = c.ID
		}
		if _, ok := boards[d.ID]; !ok {
			order = append(order, d.ID)
		}
		boards[d.ID] = b
	}
	s.mu.Lock()
	s.boards, s.order = boards, order
	s.mu.Unlock()
}
