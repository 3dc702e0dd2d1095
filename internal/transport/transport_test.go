package transport

import (
	"context"
	"errors"
	"io"
	"log"
	"net"
	"testing"

	"github.com/nagy135/convex-game-of-life/internal/core"
	"github.com/nagy135/convex-game-of-life/internal/engine"
	"github.com/nagy135/convex-game-of-life/internal/store/memory"
)

func newPipeClient(t *testing.T) *Client {
	t.Helper()
	srv, err := NewServer(engine.New(memory.New(), engine.DefaultConfig()), log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	serverConn, clientConn := net.Pipe()
	go srv.ServeConn(serverConn)
	c := NewClient(clientConn)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRemoteBoardLifecycle(t *testing.T) {
	c := newPipeClient(t)
	ctx := context.Background()

	b, err := c.CreateBoard(ctx, "remote")
	if err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}
	if !b.Paused {
		t.Fatal("remote board should start paused")
	}
	for _, y := range []int{1, 2, 3} {
		if alive, err := c.ToggleCell(ctx, b.ID, 1, y); err != nil || !alive {
			t.Fatalf("ToggleCell = %v, %v", alive, err)
		}
	}

	running, _ := c.ListRunning(ctx)
	if len(running) != 0 {
		t.Fatalf("paused board listed as running: %+v", running)
	}
	if paused, err := c.TogglePause(ctx, b.ID); err != nil || paused {
		t.Fatalf("TogglePause = %v, %v", paused, err)
	}
	running, _ = c.ListRunning(ctx)
	if len(running) != 1 {
		t.Fatalf("ListRunning = %+v, want the board", running)
	}

	if err := c.Advance(ctx, b.ID); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	cells, err := c.ListCells(ctx, b.ID)
	if err != nil {
		t.Fatalf("ListCells: %v", err)
	}
	want := []core.Point{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	if len(cells) != len(want) {
		t.Fatalf("cells = %+v, want %v", cells, want)
	}
	for i, c := range cells {
		if c.Point() != want[i] {
			t.Fatalf("cells = %+v, want %v", cells, want)
		}
	}
	got, _ := c.GetBoard(ctx, b.ID)
	if got.LastAdvance == nil {
		t.Fatal("remote advance did not record a timestamp")
	}

	if err := c.Clear(ctx, b.ID); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n, _ := c.Population(ctx, b.ID); n != 0 {
		t.Fatalf("Population after clear = %d", n)
	}
}

func TestRemoteNotFound(t *testing.T) {
	c := newPipeClient(t)
	err := c.Advance(context.Background(), "ghost")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Advance error = %v, want ErrNotFound", err)
	}
}

func TestRemoteSeed(t *testing.T) {
	c := newPipeClient(t)
	ctx := context.Background()
	b, _ := c.CreateBoard(ctx, "seed")

	n, err := c.Seed(ctx, b.ID, core.Rect{W: 4, H: 4}, 1, 1)
	if err != nil || n != 16 {
		t.Fatalf("Seed = %d, %v; want 16", n, err)
	}
}

func TestCallHonoursContext(t *testing.T) {
	_, clientConn := net.Pipe()
	c := NewClient(clientConn)
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.ListBoards(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("ListBoards error = %v, want context.Canceled", err)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("listen: %v", err)
	}
	srv, _ := NewServer(engine.New(memory.New(), engine.DefaultConfig()), log.New(io.Discard, "", 0))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, l, srv) }()

	c, err := Dial("tcp", l.Addr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	if _, err := c.CreateBoard(context.Background(), "tcp"); err != nil {
		t.Fatalf("CreateBoard over tcp: %v", err)
	}
	c.Close()

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Serve returned %v", err)
	}
}
