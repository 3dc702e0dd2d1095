package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nagy135/convex-game-of-life/internal/app"
	"github.com/nagy135/convex-game-of-life/internal/core"
	"github.com/nagy135/convex-game-of-life/internal/render"
	"github.com/nagy135/convex-game-of-life/internal/transport"
	"github.com/nagy135/convex-game-of-life/pkg/sims/life"
)

const usage = `usage: lifectl [flags] <command> [args]

commands:
  create <name>        create a paused board
  list                 list boards
  show <board>         print the viewport of a board
  preview <board>      print the viewport -ahead generations from now
  cells <board>        list living cells
  toggle <board> x y   flip one cell
  pause <board>        flip the pause flag
  tick <board>         advance a running board
  step <board>         advance one generation even when paused
  clear <board>        remove every cell
  seed <board>         fill the viewport randomly (-seed, -density)
`

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("lifectl: ")

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	c, err := transport.Dial("tcp", cfg.Addr)
	if err != nil {
		log.Fatalf("dial %s: %v", cfg.Addr, err)
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := run(ctx, c, cfg, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, c *transport.Client, cfg *app.Config, args []string) error {
	cmd, args := args[0], args[1:]
	need := func(n int) error {
		if len(args) < n {
			return fmt.Errorf("%s: expected %d argument(s)", cmd, n)
		}
		return nil
	}
	view := core.Rect{W: cfg.ViewW, H: cfg.ViewH}

	switch cmd {
	case "create":
		if err := need(1); err != nil {
			return err
		}
		b, err := c.CreateBoard(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Println(b.ID)
	case "list":
		boards, err := c.ListBoards(ctx)
		if err != nil {
			return err
		}
		for _, b := range boards {
			fmt.Println(formatBoard(b))
		}
	case "show":
		if err := need(1); err != nil {
			return err
		}
		b, err := c.GetBoard(ctx, args[0])
		if err != nil {
			return err
		}
		cells, err := c.ListCells(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Println(formatBoard(b))
		fmt.Printf("living cells: %d\n", len(cells))
		grid := core.NewByteGrid(view)
		render.Rasterize(grid, cells)
		printGrid(grid)
	case "preview":
		if err := need(1); err != nil {
			return err
		}
		cells, err := c.ListCells(ctx, args[0])
		if err != nil {
			return err
		}
		ahead := life.Preview(render.Population(cells), view, cfg.Ahead)
		fmt.Printf("after %d generation(s): %d living cells in view\n", cfg.Ahead, len(ahead))
		grid := core.NewByteGrid(view)
		render.RasterizePopulation(grid, ahead)
		printGrid(grid)
	case "cells":
		if err := need(1); err != nil {
			return err
		}
		cells, err := c.ListCells(ctx, args[0])
		if err != nil {
			return err
		}
		for _, cell := range cells {
			fmt.Printf("%d %d\n", cell.X, cell.Y)
		}
	case "toggle":
		if err := need(3); err != nil {
			return err
		}
		x, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("toggle: x: %w", err)
		}
		y, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("toggle: y: %w", err)
		}
		alive, err := c.ToggleCell(ctx, args[0], x, y)
		if err != nil {
			return err
		}
		fmt.Printf("(%d,%d) alive=%v\n", x, y, alive)
	case "pause":
		if err := need(1); err != nil {
			return err
		}
		paused, err := c.TogglePause(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("paused=%v\n", paused)
	case "tick":
		if err := need(1); err != nil {
			return err
		}
		return c.Advance(ctx, args[0])
	case "step":
		if err := need(1); err != nil {
			return err
		}
		return c.Step(ctx, args[0])
	case "clear":
		if err := need(1); err != nil {
			return err
		}
		return c.Clear(ctx, args[0])
	case "seed":
		if err := need(1); err != nil {
			return err
		}
		n, err := c.Seed(ctx, args[0], view, cfg.Seed, cfg.Density)
		if err != nil {
			return err
		}
		fmt.Printf("placed %d cells\n", n)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func formatBoard(b core.Board) string {
	state := "running"
	if b.Paused {
		state = "paused"
	}
	last := "never"
	if b.LastAdvance != nil {
		last = b.LastAdvance.Format(time.RFC3339Nano)
	}
	return fmt.Sprintf("%s\t%s\t%s\tlast=%s", b.ID, b.Name, state, last)
}

func printGrid(g *core.ByteGrid) {
	var sb strings.Builder
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if cells[y*g.W+x] != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}
