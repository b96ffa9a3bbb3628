package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// View draws a Board onto a Surface. The border and outer frame only change
// on start and resize, so they are drawn separately from the cells.
type View struct {
	Glyphs Glyphs
	Style  tcell.Style
	// Frame draws a line box around the whole terminal.
	Frame bool
	// StatusLine shows Board.Status below the border when there is room.
	StatusLine bool
}

// NewView returns a View with default glyphs, frame and status line.
func NewView() *View {
	return &View{
		Glyphs:     DefaultGlyphs(),
		Style:      tcell.StyleDefault,
		Frame:      true,
		StatusLine: true,
	}
}

// DrawBorder clears the surface and draws the frame and playfield border.
func (v *View) DrawBorder(s Surface, b Board) {
	s.Clear()
	if v.Frame {
		v.drawFrame(s)
	}

	size := b.Size()
	off := b.Offset()
	right := off.X + size.W + 1
	bottom := off.Y + size.H + 1

	for x := off.X + 1; x < right; x++ {
		s.SetContent(x, off.Y, v.Glyphs.Horizontal, nil, v.Style)
		s.SetContent(x, bottom, v.Glyphs.Horizontal, nil, v.Style)
	}
	for y := off.Y + 1; y < bottom; y++ {
		s.SetContent(off.X, y, v.Glyphs.Vertical, nil, v.Style)
		s.SetContent(right, y, v.Glyphs.Vertical, nil, v.Style)
	}
	s.SetContent(off.X, off.Y, v.Glyphs.Corner, nil, v.Style)
	s.SetContent(right, off.Y, v.Glyphs.Corner, nil, v.Style)
	s.SetContent(off.X, bottom, v.Glyphs.Corner, nil, v.Style)
	s.SetContent(right, bottom, v.Glyphs.Corner, nil, v.Style)
	s.Show()
}

// DrawBoard draws every cell, the status line and places the terminal caret
// on the cursor cell. It does not flush; callers Show once per tick.
func (v *View) DrawBoard(s Surface, b Board) {
	grid := b.Grid()
	off := b.Offset()
	cells := grid.Cells()
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			r := v.Glyphs.Dead
			if cells[grid.Index(x, y)] {
				r = v.Glyphs.Live
			}
			s.SetContent(off.X+1+x, off.Y+1+y, r, nil, v.Style)
		}
	}
	if v.StatusLine {
		v.drawStatus(s, b)
	}
	c := b.Cursor()
	s.ShowCursor(off.X+1+c.X, off.Y+1+c.Y)
}

func (v *View) drawStatus(s Surface, b Board) {
	_, termH := s.Size()
	off := b.Offset()
	row := off.Y + b.Size().H + 2
	if row >= termH-1 || row < 0 {
		return
	}
	// Pad to the border width so a shorter status erases a longer one.
	width := b.Size().W + 2
	text := runewidth.FillRight(runewidth.Truncate(b.Status(), width, ""), width)
	x := off.X
	for _, r := range text {
		s.SetContent(x, row, r, nil, v.Style)
		x += runewidth.RuneWidth(r)
	}
}

func (v *View) drawFrame(s Surface) {
	w, h := s.Size()
	if w < 2 || h < 2 {
		return
	}
	for x := 1; x < w-1; x++ {
		s.SetContent(x, 0, tcell.RuneHLine, nil, v.Style)
		s.SetContent(x, h-1, tcell.RuneHLine, nil, v.Style)
	}
	for y := 1; y < h-1; y++ {
		s.SetContent(0, y, tcell.RuneVLine, nil, v.Style)
		s.SetContent(w-1, y, tcell.RuneVLine, nil, v.Style)
	}
	s.SetContent(0, 0, tcell.RuneULCorner, nil, v.Style)
	s.SetContent(w-1, 0, tcell.RuneURCorner, nil, v.Style)
	s.SetContent(0, h-1, tcell.RuneLLCorner, nil, v.Style)
	s.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, v.Style)
}
