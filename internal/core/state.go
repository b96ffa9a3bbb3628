package core

// RunState controls whether the loop keeps going and whether steps happen.
type RunState uint8

const (
	// Stopped is both the state before Start and the terminal state.
	Stopped RunState = iota
	// Paused allows editing but no simulation steps.
	Paused
	// Running advances the simulation once per step interval.
	Running
)

// Active reports whether the loop should keep iterating.
func (s RunState) Active() bool { return s == Running || s == Paused }

func (s RunState) String() string {
	switch s {
	case Stopped:
		return "STOPPED"
	case Paused:
		return "PAUSED"
	case Running:
		return "RUNNING"
	}
	return "UNKNOWN"
}
