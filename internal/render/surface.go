package render

import (
	"github.com/gdamore/tcell/v2"

	"term-life/internal/core"
)

// Surface is the subset of tcell.Screen the terminal renderer draws on.
type Surface interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	ShowCursor(x, y int)
	Clear()
	Show()
}

// Board is what the renderer needs to know about a session.
type Board interface {
	Size() core.Size
	Offset() core.Point
	Grid() *core.Grid
	Cursor() core.Point
	Status() string
}
