package core

// EventKind enumerates the discrete inputs the session understands.
type EventKind uint8

const (
	// EventNone is a tick without input.
	EventNone EventKind = iota
	EventQuit
	EventResize
	EventUp
	EventDown
	EventLeft
	EventRight
	EventToggle
	EventConfirm
)

// Event is one decoded input. W and H carry the new terminal size for
// EventResize and are zero otherwise.
type Event struct {
	Kind EventKind
	W, H int
}

// Key returns a sizeless event of the given kind.
func Key(kind EventKind) Event { return Event{Kind: kind} }

// Resize returns a resize event for a w×h surface.
func Resize(w, h int) Event { return Event{Kind: EventResize, W: w, H: h} }

var eventNames = [...]string{
	EventNone:    "none",
	EventQuit:    "quit",
	EventResize:  "resize",
	EventUp:      "up",
	EventDown:    "down",
	EventLeft:    "left",
	EventRight:   "right",
	EventToggle:  "toggle",
	EventConfirm: "confirm",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}
