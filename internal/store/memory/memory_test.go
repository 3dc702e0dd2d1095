package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/nagy135/convex-game-of-life/internal/core"
)

func TestCreateBoardDefaults(t *testing.T) {
	s := New()
	ctx := context.Background()

	b, err := s.CreateBoard(ctx, "glider gun")
	if err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}
	if !b.Paused || b.LastAdvance != nil || b.ID == "" {
		t.Fatalf("new board = %+v, want paused with no timestamp", b)
	}
	cells, err := s.ListCells(ctx, b.ID)
	if err != nil || len(cells) != 0 {
		t.Fatalf("ListCells = %v, %v; want empty", cells, err)
	}
}

func TestUnknownBoard(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, err := s.GetBoard(ctx, "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("GetBoard error = %v, want ErrNotFound", err)
	}
	if _, err := s.ListCells(ctx, "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("ListCells error = %v, want ErrNotFound", err)
	}
	err := s.Update(ctx, "missing", func(core.Tx) error { return nil })
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Update error = %v, want ErrNotFound", err)
	}
}

func TestUpdateRejectsDuplicateCoordinate(t *testing.T) {
	s := New()
	ctx := context.Background()
	b, _ := s.CreateBoard(ctx, "dup")

	err := s.Update(ctx, b.ID, func(tx core.Tx) error {
		if _, err := tx.InsertCell(1, 1); err != nil {
			return err
		}
		_, err := tx.InsertCell(1, 1)
		return err
	})
	if !errors.Is(err, ErrDuplicateCell) {
		t.Fatalf("Update error = %v, want ErrDuplicateCell", err)
	}
	cells, _ := s.ListCells(ctx, b.ID)
	if len(cells) != 0 {
		t.Fatalf("failed transaction leaked %d cells", len(cells))
	}
}

func TestUpdateRollsBackOnError(t *testing.T) {
	s := New()
	ctx := context.Background()
	b, _ := s.CreateBoard(ctx, "rollback")
	paused := false
	boom := errors.New("boom")

	err := s.Update(ctx, b.ID, func(tx core.Tx) error {
		tx.InsertCell(0, 0)
		tx.PatchBoard(core.BoardPatch{Paused: &paused})
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Update error = %v, want boom", err)
	}
	got, _ := s.GetBoard(ctx, b.ID)
	if !got.Paused {
		t.Fatal("rolled back patch should not unpause the board")
	}
	if cells, _ := s.ListCells(ctx, b.ID); len(cells) != 0 {
		t.Fatalf("rolled back insert left %d cells", len(cells))
	}
}

func TestReadersNeverSeePartialUpdates(t *testing.T) {
	s := New()
	ctx := context.Background()
	b, _ := s.CreateBoard(ctx, "atomic")

	const rounds = 200
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			s.Update(ctx, b.ID, func(tx core.Tx) error {
				for _, c := range tx.Cells() {
					if err := tx.DeleteCell(c.ID); err != nil {
						return err
					}
				}
				for x := 0; x < 10; x++ {
					if _, err := tx.InsertCell(x, i); err != nil {
						return err
					}
				}
				return nil
			})
		}
	}()

	for i := 0; i < rounds; i++ {
		cells, err := s.ListCells(ctx, b.ID)
		if err != nil {
			t.Fatalf("ListCells: %v", err)
		}
		if n := len(cells); n != 0 && n != 10 {
			t.Fatalf("observed partial update with %d cells", n)
		}
	}
	wg.Wait()
}

func TestDumpLoadRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()
	b, _ := s.CreateBoard(ctx, "saved")
	s.Update(ctx, b.ID, func(tx core.Tx) error {
		tx.InsertCell(-3, 4)
		tx.InsertCell(2, 2)
		return nil
	})

	restored := New()
	restored.Load(s.Dump())

	got, err := restored.GetBoard(ctx, b.ID)
	if err != nil || got.Name != "saved" || !got.Paused {
		t.Fatalf("restored board = %+v, %v", got, err)
	}
	cells, _ := restored.ListCells(ctx, b.ID)
	if len(cells) != 2 || cells[0].Point() != (core.Point{X: 2, Y: 2}) || cells[1].Point() != (core.Point{X: -3, Y: 4}) {
		t.Fatalf("restored cells = %+v", cells)
	}
	original, _ := s.ListCells(ctx, b.ID)
	for i := range original {
		if cells[i].ID != original[i].ID {
			t.Fatalf("cell %d id changed across dump/load: %s -> %s", i, original[i].ID, cells[i].ID)
		}
	}
}

func TestRegisteredAsMemory(t *testing.T) {
	st, err := core.OpenStore("memory", nil)
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	if _, ok := st.(*Store); !ok {
		t.Fatalf("OpenStore returned %T", st)
	}
}

func TestTxCellAt(t *testing.T) {
	s := New()
	ctx := context.Background()
	b, _ := s.CreateBoard(ctx, "lookup")

	err := s.Update(ctx, b.ID, func(tx core.Tx) error {
		if _, ok := tx.CellAt(-4, 9); ok {
			t.Fatal("empty board reported a cell")
		}
		inserted, err := tx.InsertCell(-4, 9)
		if err != nil {
			return err
		}
		got, ok := tx.CellAt(-4, 9)
		if !ok || got.ID != inserted.ID {
			t.Fatalf("CellAt = %+v, %v; want %+v", got, ok, inserted)
		}
		if err := tx.DeleteCell(inserted.ID); err != nil {
			return err
		}
		if _, ok := tx.CellAt(-4, 9); ok {
			t.Fatal("deleted cell still found")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
}
