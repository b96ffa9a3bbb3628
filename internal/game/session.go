// Package game holds the playfield session and the loop that drives it.
package game

import (
	"fmt"
	"time"

	"term-life/internal/core"
	"term-life/internal/sims/life"
)

// Config describes a session.
type Config struct {
	Width  int
	Height int
	// Step is the minimum wall-clock time between generations while running.
	Step time.Duration
	// Seed, when non-zero, populates the grid randomly at Density.
	Seed    int64
	Density float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 40, Height: 20, Step: time.Second, Density: 0.3}
}

// Session is the single owner of all playfield state: grid, cursor, run
// state and display offsets.
type Session struct {
	width, height    int
	xOffset, yOffset int

	sim        *life.Life
	cursor     core.Cursor
	state      core.RunState
	timer      *core.StepTimer
	generation int
}

// NewSession creates a stopped session with an empty (or seeded) grid and the
// cursor at the origin.
func NewSession(cfg Config) *Session {
	s := &Session{
		sim:   life.New(cfg.Width, cfg.Height),
		timer: core.NewStepTimer(cfg.Step),
	}
	size := s.sim.Size()
	s.width, s.height = size.W, size.H
	if cfg.Seed != 0 {
		s.sim.Reset(cfg.Seed, cfg.Density)
	}
	return s
}

// Start moves a stopped session to Running and starts the step timer at now.
func (s *Session) Start(now time.Time) {
	if s.state != core.Stopped {
		return
	}
	s.state = core.Running
	s.timer.Reset(now)
}

// Center recomputes the display offsets so the playfield sits in the middle
// of a termW×termH surface. Offsets may go negative on small terminals.
func (s *Session) Center(termW, termH int) {
	s.xOffset = termW/2 - s.width/2
	s.yOffset = termH/2 - s.height/2
}

// Apply handles one input event. It reports whether the border has to be
// redrawn. An event either takes full effect or changes nothing.
func (s *Session) Apply(ev core.Event) (bool, error) {
	switch ev.Kind {
	case core.EventQuit:
		s.state = core.Stopped
	case core.EventResize:
		s.Center(ev.W, ev.H)
		return true, nil
	case core.EventUp:
		if s.cursor.Y > 0 {
			s.cursor.Up()
		}
	case core.EventDown:
		if s.cursor.Y < s.height-1 {
			s.cursor.Down()
		}
	case core.EventLeft:
		if s.cursor.X > 0 {
			s.cursor.Left()
		}
	case core.EventRight:
		if s.cursor.X < s.width-1 {
			s.cursor.Right()
		}
	case core.EventToggle:
		if _, err := s.sim.Grid().Toggle(s.cursor.X, s.cursor.Y); err != nil {
			return false, fmt.Errorf("toggle at cursor: %w", err)
		}
	case core.EventConfirm:
		switch s.state {
		case core.Running:
			s.state = core.Paused
		case core.Paused:
			s.state = core.Running
		}
	}
	return false, nil
}

// Advance steps the simulation if the session is running and the step
// interval has elapsed since the previous step. It reports whether a step
// happened.
func (s *Session) Advance(now time.Time) bool {
	if s.state != core.Running || !s.timer.Due(now) {
		return false
	}
	s.Step()
	s.timer.Reset(now)
	return true
}

// Step unconditionally advances the grid by one generation.
func (s *Session) Step() {
	s.sim.Step()
	s.generation++
}

// Size returns the grid dimensions.
func (s *Session) Size() core.Size { return core.Size{W: s.width, H: s.height} }

// Offset returns the screen position of the border's top-left corner.
func (s *Session) Offset() core.Point { return core.Point{X: s.xOffset, Y: s.yOffset} }

// Grid exposes the current generation.
func (s *Session) Grid() *core.Grid { return s.sim.Grid() }

// Cursor returns the cursor's cell.
func (s *Session) Cursor() core.Point { return core.Point{X: s.cursor.X, Y: s.cursor.Y} }

// State returns the run state.
func (s *Session) State() core.RunState { return s.state }

// Generation counts the steps taken since the session was created.
func (s *Session) Generation() int { return s.generation }

// Status is a one-line summary for status bars.
func (s *Session) Status() string {
	return fmt.Sprintf("%s  gen %d  alive %d  cursor %d,%d",
		s.state, s.generation, s.sim.Grid().Alive(), s.cursor.X, s.cursor.Y)
}
