//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"term-life/internal/app"
	"term-life/internal/game"
	"term-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.BindWindow(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid options: %v", err)
	}

	session := game.NewSession(cfg.Game())
	g := app.New(session, cfg.Scale)
	size := session.Size()

	ebiten.SetWindowTitle("life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale+ui.HUDHeight)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
