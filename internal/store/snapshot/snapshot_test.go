package snapshot

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/nagy135/convex-game-of-life/internal/core"
)

func TestSnapshotSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boards.json")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	b, err := s.CreateBoard(ctx, "persisted")
	if err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}
	var inserted core.Cell
	err = s.Update(ctx, b.ID, func(tx core.Tx) error {
		var err error
		inserted, err = tx.InsertCell(5, 5)
		return err
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	reopened, err := core.OpenStore("snapshot", map[string]string{"path": path})
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	boards, _ := reopened.ListBoards(ctx)
	if len(boards) != 1 || boards[0].ID != b.ID || boards[0].Name != "persisted" {
		t.Fatalf("reopened boards = %+v", boards)
	}
	cells, _ := reopened.ListCells(ctx, b.ID)
	if len(cells) != 1 || cells[0].Point() != (core.Point{X: 5, Y: 5}) || cells[0].ID != inserted.ID {
		t.Fatalf("reopened cells = %+v", cells)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("Open with empty path should fail")
	}
}
