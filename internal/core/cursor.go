package core

// Cursor is the editing position on the grid. It never clamps itself; callers
// check the destination before moving.
type Cursor struct {
	X, Y int
}

// Pos returns the cursor coordinates.
func (c *Cursor) Pos() (int, int) { return c.X, c.Y }

// Up moves the cursor one row towards y=0.
func (c *Cursor) Up() { c.Y-- }

// Down moves the cursor one row away from y=0.
func (c *Cursor) Down() { c.Y++ }

// Left moves the cursor one column towards x=0.
func (c *Cursor) Left() { c.X-- }

// Right moves the cursor one column away from x=0.
func (c *Cursor) Right() { c.X++ }
