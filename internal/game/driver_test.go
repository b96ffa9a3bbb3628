package game

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"term-life/internal/core"
	"term-life/internal/render"
)

// scriptedTerminal draws into a simulation screen and replays a fixed list of
// events, one per poll.
type scriptedTerminal struct {
	tcell.SimulationScreen
	events []core.Event
	polls  int
	closed int
}

func newScriptedTerminal(t *testing.T, w, h int, events ...core.Event) *scriptedTerminal {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	return &scriptedTerminal{SimulationScreen: screen, events: events}
}

func (s *scriptedTerminal) Poll() core.Event {
	s.polls++
	if len(s.events) == 0 {
		return core.Key(core.EventNone)
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func (s *scriptedTerminal) Close() error {
	s.closed++
	s.Fini()
	return nil
}

// fakeClock advances only when the driver sleeps.
type fakeClock struct {
	now    time.Time
	sleeps int
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps++
	c.now = c.now.Add(d)
}

func keys(kinds ...core.EventKind) []core.Event {
	out := make([]core.Event, len(kinds))
	for i, k := range kinds {
		out[i] = core.Key(k)
	}
	return out
}

func TestDriverRunsUntilQuit(t *testing.T) {
	events := keys(core.EventToggle, core.EventRight, core.EventToggle)
	// Idle for long enough to reach two steps, then quit.
	for i := 0; i < 25; i++ {
		events = append(events, core.Key(core.EventNone))
	}
	events = append(events, core.Key(core.EventQuit))

	term := newScriptedTerminal(t, 20, 10, events...)
	clock := &fakeClock{now: epoch}
	s := NewSession(Config{Width: 4, Height: 3, Step: time.Second})

	var steps []int
	d := NewDriver(s, term, nil, clock, 0)
	d.OnStep = func(gen, alive int) { steps = append(steps, gen) }

	if err := d.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.State() != core.Stopped {
		t.Fatalf("state = %v after quit", s.State())
	}
	if term.closed != 1 {
		t.Fatalf("terminal closed %d times, want 1", term.closed)
	}
	if term.polls != len(events) {
		t.Fatalf("polled %d times for %d events", term.polls, len(events))
	}
	// 28 full ticks of 100ms before the quit tick: steps at 1.0s and 2.0s.
	if len(steps) != 2 || steps[0] != 1 || steps[1] != 2 {
		t.Fatalf("steps = %v, want [1 2]", steps)
	}
	if clock.sleeps != len(events)-1 {
		t.Fatalf("slept %d times, want %d", clock.sleeps, len(events)-1)
	}
}

func TestDriverPausedDoesNotStep(t *testing.T) {
	events := keys(core.EventConfirm)
	for i := 0; i < 30; i++ {
		events = append(events, core.Key(core.EventNone))
	}
	events = append(events, core.Key(core.EventQuit))

	term := newScriptedTerminal(t, 20, 10, events...)
	s := NewSession(Config{Width: 3, Height: 3, Step: time.Second})
	d := NewDriver(s, term, render.NewView(), &fakeClock{now: epoch}, DefaultTick)
	if err := d.Run(); err != nil {
		t.Fatal(err)
	}
	if s.Generation() != 0 {
		t.Fatalf("paused session reached generation %d", s.Generation())
	}
}

func TestDriverDrawsBoard(t *testing.T) {
	term := newScriptedTerminal(t, 12, 9, keys(core.EventDown, core.EventToggle)...)
	s := NewSession(Config{Width: 4, Height: 3, Step: time.Hour})
	d := NewDriver(s, term, nil, &fakeClock{now: epoch}, DefaultTick)
	defer term.Close()

	s.Start(epoch)
	s.Center(term.Size())
	for i := 0; i < 2; i++ {
		if err := d.Tick(); err != nil {
			t.Fatal(err)
		}
	}

	// Offset is (12/2-4/2, 9/2-3/2) = (4, 3); cell (0,1) is at screen (5, 5).
	r, _, _, _ := term.GetContent(5, 5)
	if r != render.DefaultGlyphs().Live {
		t.Fatalf("cell (0,1) drawn as %q", r)
	}
	x, y, _ := term.GetCursor()
	if x != 5 || y != 5 {
		t.Fatalf("caret at (%d,%d), want (5,5)", x, y)
	}
}

func TestDriverResizeRedrawsBorder(t *testing.T) {
	term := newScriptedTerminal(t, 10, 8, core.Resize(20, 8), core.Key(core.EventQuit))
	s := NewSession(Config{Width: 2, Height: 2, Step: time.Second})
	d := NewDriver(s, term, nil, &fakeClock{now: epoch}, DefaultTick)
	if err := d.Run(); err != nil {
		t.Fatal(err)
	}
	if off := s.Offset(); off != (core.Point{X: 9, Y: 3}) {
		t.Fatalf("offset after resize = %+v", off)
	}
}
