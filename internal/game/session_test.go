package game

import (
	"strings"
	"testing"
	"time"

	"term-life/internal/core"
)

var epoch = time.Unix(1_700_000_000, 0)

func newStarted(t *testing.T, w, h int) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = w, h
	s := NewSession(cfg)
	s.Start(epoch)
	return s
}

func apply(t *testing.T, s *Session, kinds ...core.EventKind) {
	t.Helper()
	for _, k := range kinds {
		if _, err := s.Apply(core.Key(k)); err != nil {
			t.Fatalf("Apply(%v): %v", k, err)
		}
	}
}

func TestNewSessionIsStopped(t *testing.T) {
	s := NewSession(DefaultConfig())
	if s.State() != core.Stopped {
		t.Fatalf("new session state = %v", s.State())
	}
	if s.Grid().Alive() != 0 {
		t.Fatal("unseeded session has live cells")
	}
	if c := s.Cursor(); c != (core.Point{}) {
		t.Fatalf("cursor starts at %+v", c)
	}

	// Confirm before start has no effect.
	apply(t, s, core.EventConfirm)
	if s.State() != core.Stopped {
		t.Fatalf("confirm while stopped moved to %v", s.State())
	}

	s.Start(epoch)
	if s.State() != core.Running {
		t.Fatalf("started session state = %v", s.State())
	}
}

func TestSeededSession(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 9
	cfg.Density = 0.5
	a, b := NewSession(cfg), NewSession(cfg)
	if a.Grid().Alive() == 0 {
		t.Fatal("seeded session is empty")
	}
	if a.Grid().String() != b.Grid().String() {
		t.Fatal("same seed produced different grids")
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	s := newStarted(t, 3, 2)
	seq := []core.EventKind{
		core.EventUp, core.EventLeft, core.EventUp,
		core.EventRight, core.EventRight, core.EventRight, core.EventRight,
		core.EventDown, core.EventDown, core.EventDown,
		core.EventLeft, core.EventLeft, core.EventLeft, core.EventLeft,
		core.EventUp, core.EventUp,
	}
	for _, k := range seq {
		apply(t, s, k)
		c := s.Cursor()
		if c.X < 0 || c.X > 2 || c.Y < 0 || c.Y > 1 {
			t.Fatalf("cursor left the grid at %+v after %v", c, k)
		}
	}

	apply(t, s, core.EventRight, core.EventRight, core.EventRight, core.EventDown, core.EventDown)
	if c := s.Cursor(); c != (core.Point{X: 2, Y: 1}) {
		t.Fatalf("cursor = %+v, want bottom-right corner", c)
	}
}

func TestToggleAtCursor(t *testing.T) {
	s := newStarted(t, 3, 3)
	apply(t, s, core.EventRight, core.EventDown, core.EventToggle)
	if alive, _ := s.Grid().Get(1, 1); !alive {
		t.Fatalf("toggle did not set (1,1):\n%s", s.Grid())
	}
	apply(t, s, core.EventToggle)
	if s.Grid().Alive() != 0 {
		t.Fatalf("double toggle left cells alive:\n%s", s.Grid())
	}
}

func TestConfirmTogglesPause(t *testing.T) {
	s := newStarted(t, 3, 3)
	apply(t, s, core.EventConfirm)
	if s.State() != core.Paused {
		t.Fatalf("state = %v, want PAUSED", s.State())
	}
	apply(t, s, core.EventConfirm)
	if s.State() != core.Running {
		t.Fatalf("state = %v, want RUNNING", s.State())
	}
	apply(t, s, core.EventConfirm, core.EventConfirm)
	if s.State() != core.Running {
		t.Fatalf("state after second round trip = %v", s.State())
	}
}

func TestQuitStops(t *testing.T) {
	for _, start := range []core.EventKind{core.EventNone, core.EventConfirm} {
		s := newStarted(t, 3, 3)
		apply(t, s, start, core.EventQuit)
		if s.State() != core.Stopped {
			t.Fatalf("state = %v after quit", s.State())
		}
		apply(t, s, core.EventConfirm)
		if s.State() != core.Stopped {
			t.Fatal("confirm revived a stopped session")
		}
	}
}

func TestEditingWhilePaused(t *testing.T) {
	s := newStarted(t, 4, 4)
	apply(t, s, core.EventConfirm, core.EventDown, core.EventToggle)
	if alive, _ := s.Grid().Get(0, 1); !alive {
		t.Fatal("toggle ignored while paused")
	}
	if s.Advance(epoch.Add(10 * time.Second)) {
		t.Fatal("paused session advanced")
	}
}

func TestAdvanceGatedByInterval(t *testing.T) {
	s := newStarted(t, 3, 3)
	if s.Advance(epoch.Add(900 * time.Millisecond)) {
		t.Fatal("stepped before the interval")
	}
	if !s.Advance(epoch.Add(time.Second)) {
		t.Fatal("did not step after the interval")
	}
	if s.Generation() != 1 {
		t.Fatalf("generation = %d", s.Generation())
	}
	if s.Advance(epoch.Add(1500 * time.Millisecond)) {
		t.Fatal("stepped twice within one interval")
	}
	if !s.Advance(epoch.Add(2 * time.Second)) {
		t.Fatal("second step missing")
	}
}

func TestResizeRecentersWithoutTouchingGrid(t *testing.T) {
	s := newStarted(t, 10, 4)
	apply(t, s, core.EventToggle)
	before := s.Grid().String()

	redraw, err := s.Apply(core.Resize(80, 24))
	if err != nil || !redraw {
		t.Fatalf("resize: redraw=%v err=%v", redraw, err)
	}
	if off := s.Offset(); off != (core.Point{X: 35, Y: 10}) {
		t.Fatalf("offset = %+v, want {35 10}", off)
	}
	if s.Grid().String() != before || s.Size() != (core.Size{W: 10, H: 4}) {
		t.Fatal("resize changed the grid")
	}

	redraw, _ = s.Apply(core.Key(core.EventToggle))
	if redraw {
		t.Fatal("toggle requested a border redraw")
	}
}

func TestEndToEndHorizontalRun(t *testing.T) {
	s := newStarted(t, 3, 3)
	apply(t, s,
		core.EventToggle, core.EventRight,
		core.EventToggle, core.EventRight,
		core.EventToggle,
	)
	if got := s.Grid().String(); got != "###\n...\n...\n" {
		t.Fatalf("edited grid:\n%s", got)
	}

	if !s.Advance(epoch.Add(time.Second)) {
		t.Fatal("no step")
	}
	// (1,1) and (2,1) see only their top-left and top neighbours, so nothing
	// reaches three. Classical Life would keep (1,0) and birth (1,1).
	if got := s.Grid().String(); got != "...\n...\n...\n" {
		t.Fatalf("after one step:\n%s", got)
	}
}

func TestStatus(t *testing.T) {
	s := newStarted(t, 3, 3)
	apply(t, s, core.EventToggle, core.EventConfirm)
	got := s.Status()
	for _, want := range []string{"PAUSED", "gen 0", "alive 1", "cursor 0,0"} {
		if !strings.Contains(got, want) {
			t.Fatalf("Status() = %q, missing %q", got, want)
		}
	}
}
