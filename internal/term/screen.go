// Package term adapts a tcell screen to the playfield's input events and
// drawing surface.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"term-life/internal/core"
)

// Screen owns a tcell.Screen for the lifetime of a session.
type Screen struct {
	tcell.Screen
	closed bool
}

// Open initialises the real terminal and switches it to raw mode.
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return Wrap(s), nil
}

// Wrap adopts an already initialised tcell screen, such as a
// tcell.SimulationScreen in tests.
func Wrap(s tcell.Screen) *Screen {
	return &Screen{Screen: s}
}

// Poll returns the next pending input without blocking. With nothing queued
// it returns an EventNone event.
func (s *Screen) Poll() core.Event {
	if s.closed || !s.HasPendingEvent() {
		return core.Key(core.EventNone)
	}
	return Decode(s.PollEvent())
}

// Close restores the terminal. It is safe to call more than once.
func (s *Screen) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.Fini()
	return nil
}
