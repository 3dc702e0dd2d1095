package render

import (
	"image/color"

	"github.com/nagy135/convex-game-of-life/internal/core"
	"github.com/nagy135/convex-game-of-life/pkg/sims/life"
)

// Rasterize marks the cells that fall inside grid and clears the rest.
// Cells outside the window are skipped; the board itself is unbounded.
func Rasterize(grid *core.ByteGrid, cells []core.Cell) {
	grid.Clear()
	for _, c := range cells {
		grid.Set(c.Point(), 1)
	}
}

// RasterizePopulation is Rasterize for a sparse point set.
func RasterizePopulation(grid *core.ByteGrid, p life.Population) {
	grid.Clear()
	for pt := range p {
		grid.Set(pt, 1)
	}
}

// Population converts stored cells into a sparse point set.
func Population(cells []core.Cell) life.Population {
	p := make(life.Population, len(cells))
	for _, c := range cells {
		p[c.Point()] = struct{}{}
	}
	return p
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
