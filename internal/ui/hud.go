//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const hudPadding = 4

// HUD renders the session status in a strip below the grid.
type HUD struct {
	width int
	panel *ebiten.Image
}

// NewHUD constructs a HUD of the given pixel width.
func NewHUD(width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{width: width}
	h.panel = ebiten.NewImage(width, HUDHeight)
	return h
}

// Draw paints status into the strip whose top edge sits at offsetY.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int, status string) {
	if h == nil {
		return
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	text.Draw(h.panel, status, face, hudPadding, HUDHeight-hudPadding-1, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}
