package vantage

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window dimensions in pixels.
	Width, Height int
	// Fullscreen starts the window in full-screen mode; the surface then
	// takes the monitor dimensions instead of the content rectangle.
	Fullscreen bool
	// Debug enables the view-state overlay and stderr gesture logging.
	Debug bool
	// Script, when set, drives the input poller with scripted gestures for
	// automated visual testing.
	Script *ScriptRunner
}

// game adapts an Engine to the ebiten.Game interface.
type game struct {
	engine *Engine
	poller *Poller
	script *ScriptRunner
}

func (g *game) Update() error {
	if g.script != nil {
		g.script.Step(g.engine, g.poller)
	}
	g.poller.SetBounds(g.engine.bounds)
	g.poller.Poll()
	g.engine.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if surf := g.engine.Surface(); surf != nil {
		screen.DrawImage(surf, nil)
	}
}

// Layout forwards size changes to the engine's resize handler. In
// full-screen mode the outside size is the monitor's, otherwise the window
// content rectangle's, so both resize triggers flow through the same path.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.engine.size.Width || outsideHeight != g.engine.size.Height {
		g.engine.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens a window, attaches an input Poller to the engine, and drives the
// update/draw loop until the window closes. It blocks until the loop ends
// and detaches input on the way out.
func Run(e *Engine, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("vantage: invalid window size %dx%d", cfg.Width, cfg.Height)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	}
	e.SetDebugMode(cfg.Debug)

	poller := &Poller{}
	e.Attach(poller)
	defer e.Detach()

	return ebiten.RunGame(&game{engine: e, poller: poller, script: cfg.Script})
}
