package core

import "strings"

// Grid stores a fixed-size 2D field of live/dead cells in row-major order.
type Grid struct {
	W, H int
	data []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]bool, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get reports whether the cell at (x, y) is alive.
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, g.boundsError(x, y)
	}
	return g.data[g.Index(x, y)], nil
}

// Set stores the liveness of the cell at (x, y).
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.InBounds(x, y) {
		return g.boundsError(x, y)
	}
	g.data[g.Index(x, y)] = alive
	return nil
}

// Toggle flips the cell at (x, y) and returns its new value.
func (g *Grid) Toggle(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, g.boundsError(x, y)
	}
	i := g.Index(x, y)
	g.data[i] = !g.data[i]
	return g.data[i], nil
}

// Alive counts the live cells.
func (g *Grid) Alive() int {
	n := 0
	for _, c := range g.data {
		if c {
			n++
		}
	}
	return n
}

// String renders the grid as rows of '#' (alive) and '.' (dead).
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.data[g.Index(x, y)] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) boundsError(x, y int) *BoundsError {
	return &BoundsError{X: x, Y: y, W: g.W, H: g.H}
}
