package core

// Point is an unbounded board coordinate.
type Point struct {
	X int
	Y int
}

// Rect is a half-open window [X, X+W) x [Y, Y+H) over a board.
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether p lies inside the window.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Grow returns the window extended by n cells on every side.
func (r Rect) Grow(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}
