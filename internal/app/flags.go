package app

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"term-life/internal/game"
	"term-life/internal/render"
)

// Config represents the command-line parameters for both frontends.
type Config struct {
	Width   int
	Height  int
	Step    time.Duration
	Tick    time.Duration
	Seed    int64
	Density float64

	// Terminal frontend.
	Live  string
	Sound bool
	Debug bool

	// Windowed frontend.
	Scale int
	TPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := game.DefaultConfig()
	return &Config{
		Width:   def.Width,
		Height:  def.Height,
		Step:    def.Step,
		Tick:    game.DefaultTick,
		Density: def.Density,
		Live:    string(render.DefaultGlyphs().Live),
		Scale:   12,
		TPS:     10,
	}
}

// Bind attaches the shared and terminal options to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.bindShared(fs)
	fs.DurationVar(&c.Tick, "tick", c.Tick, "delay between input polls and redraws")
	fs.StringVar(&c.Live, "live", c.Live, "glyph drawn for live cells")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play a tone on every generation")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write a debug log to "+LogPath())
}

// BindWindow attaches the shared and windowed options to the provided FlagSet.
func (c *Config) BindWindow(fs *flag.FlagSet) {
	c.bindShared(fs)
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "input polls per second")
}

func (c *Config) bindShared(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.DurationVar(&c.Step, "step", c.Step, "minimum time between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random fill seed (0 starts empty)")
	fs.Float64Var(&c.Density, "density", c.Density, "share of cells alive after a random fill")
}

// Validate reports the first invalid option.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height)
	case c.Step <= 0:
		return errors.New("step must be positive")
	case c.Tick <= 0:
		return errors.New("tick must be positive")
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("density %v outside [0,1]", c.Density)
	case c.Scale <= 0:
		return errors.New("scale must be positive")
	case c.TPS <= 0:
		return errors.New("tps must be positive")
	}
	if _, err := c.Glyphs(); err != nil {
		return err
	}
	return nil
}

// Game returns the session configuration.
func (c *Config) Game() game.Config {
	return game.Config{
		Width:   c.Width,
		Height:  c.Height,
		Step:    c.Step,
		Seed:    c.Seed,
		Density: c.Density,
	}
}

// Glyphs returns the render glyphs with the configured live glyph.
func (c *Config) Glyphs() (render.Glyphs, error) {
	g := render.DefaultGlyphs()
	r := []rune(c.Live)
	if len(r) != 1 {
		return g, fmt.Errorf("live glyph %q must be a single character", c.Live)
	}
	g.Live = r[0]
	return g, g.Validate()
}
