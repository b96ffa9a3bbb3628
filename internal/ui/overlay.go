//go:build ebiten

package ui

import (
	"image/color"

	"term-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay outlines the cursor cell on top of the grid image.
type Overlay struct {
	scale int
	tint  color.RGBA
	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for a grid drawn at the given scale.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{scale: scale, tint: color.RGBA{R: 255, G: 80, B: 60, A: 255}}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw outlines the cell at cursor.
func (o *Overlay) Draw(screen *ebiten.Image, cursor core.Point) {
	if o == nil || o.pixel == nil {
		return
	}
	s := float64(o.scale)
	x := float64(cursor.X) * s
	y := float64(cursor.Y) * s
	t := 1.0
	if o.scale >= 8 {
		t = 2
	}
	o.fillRect(screen, x, y, s, t)
	o.fillRect(screen, x, y+s-t, s, t)
	o.fillRect(screen, x, y, t, s)
	o.fillRect(screen, x+s-t, y, t, s)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(o.tint)
	screen.DrawImage(o.pixel, op)
}
