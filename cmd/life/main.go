package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"term-life/internal/app"
	"term-life/internal/audio"
	"term-life/internal/game"
	"term-life/internal/render"
	"term-life/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid options: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "life: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config) error {
	glyphs, err := cfg.Glyphs()
	if err != nil {
		return err
	}

	if f := app.SetupLogging(cfg.Debug); f != nil {
		defer f.Close()
	}

	screen, err := term.Open()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	// Restore the terminal before reporting a crash so the trace is readable.
	defer func() {
		if r := recover(); r != nil {
			screen.Close()
			fmt.Fprintf(os.Stderr, "\r\nlife crashed: %v\r\n%s\r\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	session := game.NewSession(cfg.Game())
	view := render.NewView()
	view.Glyphs = glyphs
	driver := game.NewDriver(session, screen, view, game.SystemClock{}, cfg.Tick)

	if cfg.Sound {
		beeper, err := audio.NewBeeper()
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			driver.OnStep = beeper.Step
			defer beeper.Close()
		}
	}

	return driver.Run()
}
