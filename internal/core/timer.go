package core

import "time"

// StepTimer gates simulation steps to at most one per interval of wall-clock
// time. Unlike a fixed-rate accumulator it never catches up on missed steps.
type StepTimer struct {
	interval time.Duration
	last     time.Time
}

// NewStepTimer constructs a StepTimer with the given interval. Non-positive
// intervals fall back to one second.
func NewStepTimer(interval time.Duration) *StepTimer {
	t := &StepTimer{}
	t.SetInterval(interval)
	return t
}

// SetInterval changes the step interval. It is safe to call from the main loop.
func (t *StepTimer) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	t.interval = interval
}

// Interval returns the configured step interval.
func (t *StepTimer) Interval() time.Duration { return t.interval }

// Reset marks now as the time of the last step.
func (t *StepTimer) Reset(now time.Time) { t.last = now }

// Due reports whether at least one interval has passed since the last Reset.
func (t *StepTimer) Due(now time.Time) bool {
	return now.Sub(t.last) >= t.interval
}
