//go:build ebiten

package app

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/nagy135/convex-game-of-life/internal/core"
	"github.com/nagy135/convex-game-of-life/internal/engine"
	"github.com/nagy135/convex-game-of-life/internal/render"
	"github.com/nagy135/convex-game-of-life/internal/ui"
	"github.com/nagy135/convex-game-of-life/pkg/sims/life"
)

// Game adapts an engine to the ebiten.Game interface. It is a coordinator:
// it schedules ticks for the selected board and reads state back each frame.
type Game struct {
	ctx     context.Context
	engine  *engine.Engine
	painter *render.GridPainter
	overlay *ui.Overlay
	grid    *core.ByteGrid
	ticker  *core.FixedStep

	onColor  color.Color
	offColor color.Color

	view     core.Rect
	scale    int
	density  float64
	ahead    int
	preview  bool
	boards   []core.Board
	selected int
	status   ui.Status
}

// New constructs a Game over e. When no board exists one named boardName is
// created.
func New(ctx context.Context, e *engine.Engine, cfg *Config) (*Game, error) {
	boards, err := e.ListBoards(ctx)
	if err != nil {
		return nil, err
	}
	if len(boards) == 0 {
		b, err := e.CreateBoard(ctx, cfg.Board)
		if err != nil {
			return nil, err
		}
		if _, err := e.Seed(ctx, b.ID, core.Rect{W: cfg.ViewW, H: cfg.ViewH}, cfg.Seed, cfg.Density); err != nil {
			return nil, err
		}
	}
	view := core.Rect{W: cfg.ViewW, H: cfg.ViewH}
	g := &Game{
		ctx:      ctx,
		engine:   e,
		painter:  render.NewGridPainter(view.W, view.H),
		overlay:  ui.NewOverlay(),
		grid:     core.NewByteGrid(view),
		ticker:   core.NewFixedStep(cfg.Poll),
		onColor:  color.RGBA{R: 34, G: 197, B: 94, A: 255},
		offColor: color.RGBA{R: 55, G: 65, B: 81, A: 255},
		view:     view,
		scale:    cfg.Scale,
		density:  cfg.Density,
		ahead:    cfg.Ahead,
	}
	return g, g.refresh()
}

func (g *Game) current() string {
	if len(g.boards) == 0 {
		return ""
	}
	return g.boards[g.selected].ID
}

// refresh pulls the board list and the selected board's cells.
func (g *Game) refresh() error {
	boards, err := g.engine.ListBoards(g.ctx)
	if err != nil {
		return err
	}
	g.boards = boards
	if g.selected >= len(boards) {
		g.selected = 0
	}
	id := g.current()
	if id == "" {
		return nil
	}
	cells, err := g.engine.ListCells(g.ctx, id)
	if err != nil {
		return err
	}
	g.grid.Origin = core.Point{X: g.view.X, Y: g.view.Y}
	if g.preview {
		render.RasterizePopulation(g.grid, life.Preview(render.Population(cells), g.view, g.ahead))
	} else {
		render.Rasterize(g.grid, cells)
	}
	g.status = ui.Status{
		Board:      g.boards[g.selected],
		Index:      g.selected,
		Count:      len(boards),
		Population: len(cells),
		View:       g.view,
	}
	return nil
}

// Update handles input, schedules ticks and refreshes the view.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if err := g.handleInput(); err != nil {
		return err
	}
	g.overlay.Update()

	if id := g.current(); id != "" && g.ticker.ShouldStep() && !g.boards[g.selected].Paused {
		if err := g.engine.Advance(g.ctx, id); err != nil {
			return err
		}
	}
	return g.refresh()
}

func (g *Game) handleInput() error {
	id := g.current()
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		b, err := g.engine.CreateBoard(g.ctx, fmt.Sprintf("board %d", len(g.boards)+1))
		if err != nil {
			return err
		}
		g.selected = len(g.boards)
		g.boards = append(g.boards, b)
		return nil
	}
	// Hold P to show the viewport g.ahead generations from now.
	g.preview = ebiten.IsKeyPressed(ebiten.KeyP)
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && len(g.boards) > 0 {
		g.selected = (g.selected + 1) % len(g.boards)
	}
	if id == "" {
		return nil
	}

	var err error
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		_, err = g.engine.TogglePause(g.ctx, id)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		err = g.engine.Step(g.ctx, id)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		err = g.engine.Clear(g.ctx, id)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		_, err = g.engine.Seed(g.ctx, id, g.view, time.Now().UnixNano(), g.density)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		mx, my := ebiten.CursorPosition()
		x, y := g.view.X+mx/g.scale, g.view.Y+my/g.scale
		if g.view.Contains(core.Point{X: x, Y: y}) {
			_, err = g.engine.ToggleCell(g.ctx, id, x, y)
		}
	}
	if err != nil {
		return err
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.view.X--
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.view.X++
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.view.Y--
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.view.Y++
	}
	return nil
}

// Draw renders the current viewport of the selected board.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.grid.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, g.status)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.W * g.scale, g.view.H * g.scale
}
