// Package life implements Conway's Game of Life over sparse and dense cell
// sets.
package life

import (
	"sort"

	"github.com/nagy135/convex-game-of-life/pkg/core"
)

// Population is a sparse set of living coordinates.
type Population map[core.Point]struct{}

// NewPopulation returns a population containing the provided points.
func NewPopulation(points ...core.Point) Population {
	p := make(Population, len(points))
	for _, pt := range points {
		p[pt] = struct{}{}
	}
	return p
}

// Alive reports whether pt is a member of the population.
func (p Population) Alive(pt core.Point) bool {
	_, ok := p[pt]
	return ok
}

// Points returns the members sorted by row then column.
func (p Population) Points() []core.Point {
	out := make([]core.Point, 0, len(p))
	for pt := range p {
		out = append(out, pt)
	}
	SortPoints(out)
	return out
}

// SortPoints orders points by row then column.
func SortPoints(pts []core.Point) {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
}

// Rule reports whether a cell with n living neighbours is alive next
// generation.
func Rule(alive bool, n int) bool {
	if alive {
		return n == 2 || n == 3
	}
	return n == 3
}

// Neighbors counts living Moore neighbours for every coordinate within one
// step of a living cell. Coordinates absent from the result have zero.
func Neighbors(alive Population) map[core.Point]int {
	counts := make(map[core.Point]int, len(alive)*8)
	for pt := range alive {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				counts[core.Point{X: pt.X + dx, Y: pt.Y + dy}]++
			}
		}
	}
	return counts
}

// Next computes the following generation.
func Next(alive Population) Population {
	next := make(Population, len(alive))
	for pt, n := range Neighbors(alive) {
		if Rule(alive.Alive(pt), n) {
			next[pt] = struct{}{}
		}
	}
	return next
}

// Diff computes the following generation as a change set against alive.
// Cells that keep their state appear in neither slice. Both slices are
// sorted.
func Diff(alive Population) (born, died []core.Point) {
	next := Next(alive)
	for pt := range alive {
		if !next.Alive(pt) {
			died = append(died, pt)
		}
	}
	for pt := range next {
		if !alive.Alive(pt) {
			born = append(born, pt)
		}
	}
	SortPoints(born)
	SortPoints(died)
	return born, died
}
