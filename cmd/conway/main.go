//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smeesters/conway-life/internal/app"
	"github.com/smeesters/conway-life/internal/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.ParseArgs(os.Args[1:], os.Stdout)

	engine, err := life.New(cfg.GridW, cfg.GridH, time.Now().UnixNano())
	if err != nil {
		log.Fatalf("create engine: %v", err)
	}
	cfg.Seed(engine)

	game := app.New(engine, cfg)

	ebiten.SetWindowTitle("Conway's Game of Life. Press R to reset.")
	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	ebiten.SetTPS(cfg.FPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
