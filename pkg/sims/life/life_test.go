package life

import (
	"slices"
	"testing"

	"github.com/nagy135/convex-game-of-life/pkg/core"
)

func pts(xy ...int) []core.Point {
	out := make([]core.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, core.Point{X: xy[i], Y: xy[i+1]})
	}
	SortPoints(out)
	return out
}

func TestBlinkerOscillation(t *testing.T) {
	start := NewPopulation(pts(1, 1, 1, 2, 1, 3)...)

	next := Next(start)
	if got, want := next.Points(), pts(0, 2, 1, 2, 2, 2); !slices.Equal(got, want) {
		t.Fatalf("after one step got %v, want %v", got, want)
	}

	next = Next(next)
	if got, want := next.Points(), start.Points(); !slices.Equal(got, want) {
		t.Fatalf("after second step got %v, want %v", got, want)
	}
}

func TestDiffLeavesUnchangedCellsAlone(t *testing.T) {
	born, died := Diff(NewPopulation(pts(1, 1, 1, 2, 1, 3)...))

	if want := pts(0, 2, 2, 2); !slices.Equal(born, want) {
		t.Fatalf("born = %v, want %v", born, want)
	}
	if want := pts(1, 1, 1, 3); !slices.Equal(died, want) {
		t.Fatalf("died = %v, want %v", died, want)
	}
}

func TestEmptyPopulationIsFixedPoint(t *testing.T) {
	born, died := Diff(Population{})
	if len(born) != 0 || len(died) != 0 {
		t.Fatalf("empty board produced born=%v died=%v", born, died)
	}
}

func TestBlockIsStillLife(t *testing.T) {
	born, died := Diff(NewPopulation(pts(-1, -1, 0, -1, -1, 0, 0, 0)...))
	if len(born) != 0 || len(died) != 0 {
		t.Fatalf("block changed: born=%v died=%v", born, died)
	}
}

func TestGliderTranslatesAcrossNegativeCoordinates(t *testing.T) {
	glider := NewPopulation(pts(-10, -10, -9, -9, -11, -8, -10, -8, -9, -8)...)

	p := glider
	for i := 0; i < 4; i++ {
		p = Next(p)
	}

	want := make([]core.Point, 0, len(glider))
	for pt := range glider {
		want = append(want, core.Point{X: pt.X + 1, Y: pt.Y + 1})
	}
	SortPoints(want)
	if got := p.Points(); !slices.Equal(got, want) {
		t.Fatalf("glider after 4 steps = %v, want %v", got, want)
	}
}

func TestRuleMatchesNeighbourCounts(t *testing.T) {
	alive := NewPopulation(core.NewRNG(3).Scatter(core.Rect{X: 0, Y: 0, W: 12, H: 12}, 0.4)...)
	counts := Neighbors(alive)
	next := Next(alive)

	for y := -2; y < 14; y++ {
		for x := -2; x < 14; x++ {
			pt := core.Point{X: x, Y: y}
			n := counts[pt]
			switch {
			case n == 3 && !next.Alive(pt):
				t.Fatalf("%+v has 3 neighbours but is dead", pt)
			case alive.Alive(pt) && (n < 2 || n > 3) && next.Alive(pt):
				t.Fatalf("%+v has %d neighbours but survived", pt, n)
			case alive.Alive(pt) && n == 2 && !next.Alive(pt):
				t.Fatalf("%+v has 2 neighbours but died", pt)
			case !alive.Alive(pt) && n != 3 && next.Alive(pt):
				t.Fatalf("%+v has %d neighbours but was born", pt, n)
			}
		}
	}
}

func TestSparseMatchesDenseGrid(t *testing.T) {
	// A wide margin keeps the dead border out of reach for a few steps.
	const size, margin, steps = 48, 16, 5
	seed := core.NewRNG(11).Scatter(core.Rect{X: margin, Y: margin, W: size - 2*margin, H: size - 2*margin}, 0.35)

	grid := NewGrid(core.Rect{W: size, H: size})
	grid.Load(NewPopulation(seed...))
	sparse := NewPopulation(seed...)

	for i := 0; i < steps; i++ {
		grid.Step()
		sparse = Next(sparse)
	}

	if got, want := sparse.Points(), grid.Population().Points(); !slices.Equal(got, want) {
		t.Fatalf("sparse and dense disagree after %d steps:\n sparse=%v\n dense=%v", steps, got, want)
	}
}

func TestPreviewMatchesSparseInsideView(t *testing.T) {
	// Population spills well past the view so edge handling matters.
	alive := NewPopulation(core.NewRNG(5).Scatter(core.Rect{X: -20, Y: -20, W: 60, H: 60}, 0.4)...)
	view := core.Rect{X: -3, Y: 2, W: 12, H: 9}
	const generations = 4

	want := alive
	for i := 0; i < generations; i++ {
		want = Next(want)
	}
	inView := make(Population)
	for pt := range want {
		if view.Contains(pt) {
			inView[pt] = struct{}{}
		}
	}

	if got := Preview(alive, view, generations); !slices.Equal(got.Points(), inView.Points()) {
		t.Fatalf("preview disagrees with sparse rule:\n preview=%v\n sparse=%v", got.Points(), inView.Points())
	}
}

func TestPreviewZeroGenerationsClipsToView(t *testing.T) {
	alive := NewPopulation(pts(0, 0, 5, 5, 50, 50)...)
	got := Preview(alive, core.Rect{W: 10, H: 10}, 0)
	if want := pts(0, 0, 5, 5); !slices.Equal(got.Points(), want) {
		t.Fatalf("Preview = %v, want %v", got.Points(), want)
	}
}
