//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smeesters/conway-life/internal/core"
	"github.com/smeesters/conway-life/internal/life"
	"github.com/smeesters/conway-life/internal/render"
)

// Game adapts the grid engine to the ebiten.Game interface, driving one
// generation per tick.
type Game struct {
	engine  *life.Engine
	painter *render.GridPainter
	times   core.StepTimes

	cfg    Config
	scaleX float64
	scaleY float64

	onColor  color.Color
	offColor color.Color
}

// New constructs a Game around an already seeded engine. The scale factors
// map one grid cell to a block of screen pixels per axis.
func New(engine *life.Engine, cfg Config) *Game {
	s := engine.Size()
	return &Game{
		engine:   engine,
		painter:  render.NewGridPainter(s.W, s.H),
		cfg:      cfg,
		scaleX:   float64(cfg.WindowW / s.W),
		scaleY:   float64(cfg.WindowH / s.H),
		onColor:  color.RGBA{R: 0xff, A: 0xff},
		offColor: color.Black,
	}
}

// Update polls input, then advances one generation and times it for the
// title bar's moving average. The quit keys are checked before the reset key
// so quitting wins when both arrive in the same poll. Resetting keeps the
// timing history.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.cfg.Seed(g.engine)
	}

	start := time.Now()
	g.engine.Advance()
	g.times.Record(time.Since(start))

	avg := float64(g.times.Average()) / float64(time.Millisecond)
	ebiten.SetWindowTitle(fmt.Sprintf("Conway's Game of Life. Press R to reset. Average computation time: %.1f ms", avg))
	return nil
}

// Draw renders the current generation, one scaled point per live cell over a
// cleared frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.engine.Cells(), g.onColor, g.offColor, g.scaleX, g.scaleY)
}

// Layout returns the logical screen size, which stays fixed at the configured
// window dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowW, g.cfg.WindowH
}
