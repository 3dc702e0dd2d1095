package ui

import (
	"strings"
	"testing"

	"github.com/nagy135/convex-game-of-life/internal/core"
)

func TestStatusLines(t *testing.T) {
	s := Status{
		Board:      core.Board{Name: "main", Paused: true},
		Index:      0,
		Count:      2,
		Population: 7,
		View:       core.Rect{X: -3, Y: 4, W: 30, H: 30},
	}
	lines := s.Lines()
	if lines[0] != "main [1/2] paused" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "living cells: 7" {
		t.Fatalf("population line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "(-3,4) 30x30") {
		t.Fatalf("view line = %q", lines[2])
	}

	s.Board.Paused = false
	if got := s.Lines()[0]; !strings.HasSuffix(got, "running") {
		t.Fatalf("running header = %q", got)
	}
}
