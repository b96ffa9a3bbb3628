// Package life implements the birth-only Life rule used by the playfield: a
// cell is alive in the next generation exactly when three of its counted
// neighbours are alive now.
package life

import (
	"fmt"

	"term-life/internal/core"
)

// neighbor is a relative offset together with the bounds test that decides
// whether it is counted for a cell at (x, y) on a w×h grid.
type neighbor struct {
	dx, dy int
	counts func(x, y, w, h int) bool
}

// offsets lists the eight surrounding cells in walk order. The top-right,
// bottom-left, left and right guards can never pass for in-grid coordinates,
// so only top-left, top, bottom and bottom-right ever contribute.
var offsets = [8]neighbor{
	{-1, -1, func(x, y, w, h int) bool { return x > 0 && y > 0 }},
	{0, -1, func(x, y, w, h int) bool { return y > 0 }},
	{+1, -1, func(x, y, w, h int) bool { return x < w-1 && y < 0 }},
	{-1, +1, func(x, y, w, h int) bool { return x < 0 && y < h-1 }},
	{0, +1, func(x, y, w, h int) bool { return y < h-1 }},
	{+1, +1, func(x, y, w, h int) bool { return x < w-1 && y < h-1 }},
	{-1, 0, func(x, y, w, h int) bool { return x < 0 }},
	{+1, 0, func(x, y, w, h int) bool { return x > w }},
}

// Birth is the exact neighbour count that makes a cell alive.
const Birth = 3

// Neighbors counts the live neighbours of (x, y) that the rule considers.
func Neighbors(g *core.Grid, x, y int) int {
	cells := g.Cells()
	n := 0
	for _, o := range offsets {
		if !o.counts(x, y, g.W, g.H) {
			continue
		}
		if cells[g.Index(x+o.dx, y+o.dy)] {
			n++
		}
	}
	return n
}

// Next writes the generation following src into dst. The grids must share
// dimensions and must not alias.
func Next(dst, src *core.Grid) error {
	if dst.W != src.W || dst.H != src.H {
		return fmt.Errorf("next generation of %dx%d grid into %dx%d grid", src.W, src.H, dst.W, dst.H)
	}
	out := dst.Cells()
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			out[src.Index(x, y)] = Neighbors(src, x, y) == Birth
		}
	}
	return nil
}

// Life owns a double-buffered grid and advances it in place.
type Life struct {
	cur *core.Grid
	nxt *core.Grid
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) *Life {
	return &Life{cur: core.NewGrid(w, h), nxt: core.NewGrid(w, h)}
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Grid exposes the current generation.
func (l *Life) Grid() *core.Grid { return l.cur }

// Reset randomizes the board using the provided seed and density.
func (l *Life) Reset(seed int64, density float64) {
	core.Populate(l.cur, seed, density)
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	// Buffers are allocated together with equal sizes.
	_ = Next(l.nxt, l.cur)
	l.cur, l.nxt = l.nxt, l.cur
}
