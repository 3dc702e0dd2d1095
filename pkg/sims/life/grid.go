package life

import "github.com/nagy135/convex-game-of-life/pkg/core"

// Grid runs Life on a dense buffer covering a fixed window of an unbounded
// board. Coordinates outside the window are treated as dead.
type Grid struct {
	view core.Rect
	cur  []uint8
	nxt  []uint8
}

// NewGrid returns an empty grid covering view.
func NewGrid(view core.Rect) *Grid {
	if view.W < 0 {
		view.W = 0
	}
	if view.H < 0 {
		view.H = 0
	}
	cells := make([]uint8, view.W*view.H)
	return &Grid{view: view, cur: cells, nxt: make([]uint8, len(cells))}
}

// View returns the window the grid covers.
func (g *Grid) View() core.Rect { return g.view }

// Load replaces the grid contents with the members of p inside the window.
func (g *Grid) Load(p Population) {
	for i := range g.cur {
		g.cur[i] = 0
	}
	for pt := range p {
		if g.view.Contains(pt) {
			g.cur[(pt.Y-g.view.Y)*g.view.W+pt.X-g.view.X] = 1
		}
	}
}

// Population returns the living cells as a sparse set.
func (g *Grid) Population() Population {
	p := make(Population)
	for i, c := range g.cur {
		if c != 0 {
			p[core.Point{X: g.view.X + i%g.view.W, Y: g.view.Y + i/g.view.W}] = struct{}{}
		}
	}
	return p
}

// Step advances the grid by one generation.
func (g *Grid) Step() {
	w, h := g.view.W, g.view.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= h {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					nx := x + dx
					if (dx == 0 && dy == 0) || nx < 0 || nx >= w {
						continue
					}
					neighbors += int(g.cur[ny*w+nx])
				}
			}
			idx := y*w + x
			g.nxt[idx] = 0
			if Rule(g.cur[idx] == 1, neighbors) {
				g.nxt[idx] = 1
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}

// Preview returns the cells of view that will be alive after the given
// number of generations. Only cells within generations of view can reach
// it, so the work is bounded by the window, not the population.
func Preview(alive Population, view core.Rect, generations int) Population {
	if generations < 0 {
		generations = 0
	}
	// The dead border loses accuracy one cell per step; a margin of
	// generations+1 keeps those errors outside view.
	g := NewGrid(view.Grow(generations + 1))
	g.Load(alive)
	for i := 0; i < generations; i++ {
		g.Step()
	}
	out := make(Population)
	for pt := range g.Population() {
		if view.Contains(pt) {
			out[pt] = struct{}{}
		}
	}
	return out
}
