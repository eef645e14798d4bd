package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/pong/debugui"
	"github.com/plus3/pong/input"
	"github.com/plus3/pong/render"
	"github.com/plus3/pong/sim"
)

// Game implements ebiten.Game on top of the fixed-step scheduler.
type Game struct {
	cfg       sim.Config
	scheduler *sim.Scheduler
	keys      *input.Snapshot
	renderer  *render.Renderer
	overlay   *debugui.Overlay
}

func newGame(cfg sim.Config, overlay *debugui.Overlay) *Game {
	scheduler := sim.NewScheduler(sim.NewScene(cfg), cfg.DT)
	left, right := sim.NewPaddleMovementSystems(cfg)
	scheduler.Register(left)
	scheduler.Register(right)

	return &Game{
		cfg:       cfg,
		scheduler: scheduler,
		keys:      input.NewSnapshot(),
		renderer:  render.NewRenderer(),
		overlay:   overlay,
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(debugui.ToggleKey) {
		g.overlay.Toggle()
	}

	input.Poll(g.keys)
	if g.overlay.CapturesKeyboard() {
		g.keys.Reset()
	}

	g.scheduler.Advance(1.0/float64(ebiten.TPS()), g.keys)

	g.overlay.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.scheduler.Scene())
	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.overlay.Layout(outsideWidth, outsideHeight)
	return int(g.cfg.WindowWidth), int(g.cfg.WindowHeight)
}
