//go:build ebiten

package app

import (
	"image/color"
	"time"

	"term-life/internal/core"
	"term-life/internal/game"
	"term-life/internal/render"
	"term-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyEvents = []struct {
	key  ebiten.Key
	kind core.EventKind
}{
	{ebiten.KeyQ, core.EventQuit},
	{ebiten.KeyArrowUp, core.EventUp},
	{ebiten.KeyArrowDown, core.EventDown},
	{ebiten.KeyArrowLeft, core.EventLeft},
	{ebiten.KeyArrowRight, core.EventRight},
	{ebiten.KeySpace, core.EventToggle},
	{ebiten.KeyEnter, core.EventConfirm},
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *game.Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided session and starts it.
func New(s *game.Session, scale int) *Game {
	size := s.Size()
	g := &Game{
		session:  s,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(scale),
		hud:      ui.NewHUD(size.W * scale),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
	s.Start(time.Now())
	return g
}

// Update applies this frame's key presses and advances the simulation when
// the step interval has elapsed.
func (g *Game) Update() error {
	for _, k := range keyEvents {
		if !inpututil.IsKeyJustPressed(k.key) {
			continue
		}
		if _, err := g.session.Apply(core.Key(k.kind)); err != nil {
			return err
		}
	}
	if !g.session.State().Active() {
		return ebiten.Termination
	}
	g.session.Advance(time.Now())
	return nil
}

// Draw renders the grid, the cursor highlight and the status strip.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Grid().Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, g.session.Cursor())
	g.hud.Draw(screen, g.session.Size().H*g.scale, g.session.Status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Size()
	return s.W * g.scale, s.H*g.scale + ui.HUDHeight
}
