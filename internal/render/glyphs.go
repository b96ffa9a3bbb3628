package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Glyphs are the runes used to draw the playfield.
type Glyphs struct {
	Live       rune
	Dead       rune
	Horizontal rune
	Vertical   rune
	Corner     rune
}

// DefaultGlyphs returns a checkerboard for live cells and ASCII rules for the
// border.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Live:       tcell.RuneCkBoard,
		Dead:       ' ',
		Horizontal: '-',
		Vertical:   '|',
		Corner:     '*',
	}
}

// Validate rejects glyphs that do not occupy exactly one terminal column,
// since every cell maps to one column.
func (g Glyphs) Validate() error {
	named := []struct {
		name string
		r    rune
	}{
		{"live", g.Live},
		{"dead", g.Dead},
		{"horizontal", g.Horizontal},
		{"vertical", g.Vertical},
		{"corner", g.Corner},
	}
	for _, n := range named {
		if w := runewidth.RuneWidth(n.r); w != 1 {
			return fmt.Errorf("%s glyph %q is %d columns wide, want 1", n.name, n.r, w)
		}
	}
	return nil
}
