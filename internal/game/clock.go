package game

import "time"

// Clock supplies wall-clock time and the per-tick sleep to the Driver.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the real time source.
type SystemClock struct{}

// Now returns the current time with monotonic clock reading.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep blocks for d.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }
