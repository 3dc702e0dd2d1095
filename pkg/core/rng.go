package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Scatter picks each coordinate of view with probability density and returns
// the chosen points in row-major order.
func (r *RNG) Scatter(view Rect, density float64) []Point {
	var out []Point
	for y := view.Y; y < view.Y+view.H; y++ {
		for x := view.X; x < view.X+view.W; x++ {
			if r.Chance(density) {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}
