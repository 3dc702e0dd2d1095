package core

// ByteGrid stores a 2D window of byte-sized cell values in row-major order.
// Origin is the board coordinate of the top-left entry.
type ByteGrid struct {
	W, H   int
	Origin Point
	data   []uint8
}

// NewByteGrid allocates a grid covering the provided window.
func NewByteGrid(view Rect) *ByteGrid {
	w, h := view.W, view.H
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, Origin: Point{X: view.X, Y: view.Y}, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for board coordinates p and whether p
// falls inside the grid.
func (g *ByteGrid) Index(p Point) (int, bool) {
	x, y := p.X-g.Origin.X, p.Y-g.Origin.Y
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return 0, false
	}
	return y*g.W + x, true
}

// At returns the board coordinate stored at linear index i.
func (g *ByteGrid) At(i int) Point {
	return Point{X: g.Origin.X + i%g.W, Y: g.Origin.Y + i/g.W}
}

// Set marks p with v when it lies inside the grid.
func (g *ByteGrid) Set(p Point, v uint8) {
	if i, ok := g.Index(p); ok {
		g.data[i] = v
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
