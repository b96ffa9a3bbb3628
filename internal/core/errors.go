package core

import "fmt"

// BoundsError reports an access outside the grid.
type BoundsError struct {
	X, Y int
	W, H int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cell (%d,%d) outside %dx%d grid", e.X, e.Y, e.W, e.H)
}
