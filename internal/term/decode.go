package term

import (
	"github.com/gdamore/tcell/v2"

	"term-life/internal/core"
)

// Quit, toggle and confirm keys.
const (
	QuitRune   = 'q'
	ToggleRune = ' '
)

var keyEvents = map[tcell.Key]core.EventKind{
	tcell.KeyUp:    core.EventUp,
	tcell.KeyDown:  core.EventDown,
	tcell.KeyLeft:  core.EventLeft,
	tcell.KeyRight: core.EventRight,
	tcell.KeyEnter: core.EventConfirm,
	tcell.KeyLF:    core.EventConfirm,
	tcell.KeyCtrlC: core.EventQuit,
}

// Decode maps a tcell event to a playfield event. Unknown input decodes to
// EventNone.
func Decode(ev tcell.Event) core.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case QuitRune:
				return core.Key(core.EventQuit)
			case ToggleRune:
				return core.Key(core.EventToggle)
			}
			return core.Key(core.EventNone)
		}
		if kind, ok := keyEvents[ev.Key()]; ok {
			return core.Key(kind)
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		return core.Resize(w, h)
	}
	return core.Key(core.EventNone)
}
