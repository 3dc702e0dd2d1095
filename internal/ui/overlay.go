//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 14

// Overlay draws the board status panel on top of the cell view.
type Overlay struct {
	hidden bool
	panel  *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Update toggles visibility with H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
}

// Draw renders the status lines in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image, s Status) {
	if o.hidden {
		return
	}
	lines := s.Lines()
	w := screen.Bounds().Dx()
	h := lineHeight*len(lines) + 6
	if o.panel == nil || o.panel.Bounds().Dx() != w || o.panel.Bounds().Dy() != h {
		o.panel = ebiten.NewImage(w, h)
		o.panel.Fill(color.RGBA{A: 160})
	}
	screen.DrawImage(o.panel, nil)

	face := basicfont.Face7x13
	for i, line := range lines {
		text.Draw(screen, line, face, 4, lineHeight*(i+1), color.White)
	}
}
