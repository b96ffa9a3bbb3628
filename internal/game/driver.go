package game

import (
	"fmt"
	"log"
	"time"

	"term-life/internal/core"
	"term-life/internal/render"
)

// DefaultTick is the fixed sleep between loop iterations.
const DefaultTick = 100 * time.Millisecond

// Terminal is the I/O provider a Driver runs on.
type Terminal interface {
	render.Surface
	// Poll returns the next input without blocking.
	Poll() core.Event
	// Close restores the terminal to its prior mode.
	Close() error
}

// Driver runs the tick loop: poll input, step when due, redraw, sleep.
type Driver struct {
	session *Session
	term    Terminal
	view    *render.View
	clock   Clock
	tick    time.Duration

	// OnStep, if set, is called after every generation.
	OnStep func(generation, alive int)
}

// NewDriver wires a session to a terminal. A nil clock uses SystemClock and a
// non-positive tick uses DefaultTick.
func NewDriver(s *Session, t Terminal, v *render.View, clock Clock, tick time.Duration) *Driver {
	if clock == nil {
		clock = SystemClock{}
	}
	if tick <= 0 {
		tick = DefaultTick
	}
	if v == nil {
		v = render.NewView()
	}
	return &Driver{session: s, term: t, view: v, clock: clock, tick: tick}
}

// Run starts the session and loops until it stops. The terminal is closed on
// every return path.
func (d *Driver) Run() (err error) {
	defer func() {
		if cerr := d.term.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close terminal: %w", cerr)
		}
	}()

	s := d.session
	s.Start(d.clock.Now())
	w, h := d.term.Size()
	s.Center(w, h)
	d.view.DrawBorder(d.term, s)
	log.Printf("session started: %dx%d grid on %dx%d terminal", s.width, s.height, w, h)

	for s.State().Active() {
		if err := d.Tick(); err != nil {
			return err
		}
		if !s.State().Active() {
			break
		}
		d.clock.Sleep(d.tick)
	}
	log.Printf("session stopped after %d generations", s.Generation())
	return nil
}

// Tick runs a single loop iteration without sleeping.
func (d *Driver) Tick() error {
	s := d.session
	ev := d.term.Poll()
	redraw, err := s.Apply(ev)
	if err != nil {
		return fmt.Errorf("apply %s: %w", ev.Kind, err)
	}
	if !s.State().Active() {
		return nil
	}
	if redraw {
		log.Printf("resized to %dx%d, offset %+v", ev.W, ev.H, s.Offset())
		d.view.DrawBorder(d.term, s)
	}
	if s.Advance(d.clock.Now()) {
		alive := s.Grid().Alive()
		log.Printf("generation %d: %d alive", s.Generation(), alive)
		if d.OnStep != nil {
			d.OnStep(s.Generation(), alive)
		}
	}
	d.view.DrawBoard(d.term, s)
	d.term.Show()
	return nil
}
