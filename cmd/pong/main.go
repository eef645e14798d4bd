package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/pong/debugui"
	"github.com/plus3/pong/sim"
)

func main() {
	cfg := sim.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	session := uuid.NewString()
	bounds := cfg.Bounds()
	log.Printf("pong session %s: left %s, right %s, paddle bounds [%.0f, %.0f]",
		session, cfg.LeftKeys, cfg.RightKeys, bounds.Min, bounds.Max)

	overlay := debugui.NewOverlay(sim.WindowTitle, int(cfg.WindowWidth), int(cfg.WindowHeight))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(sim.TicksPerSecond)

	game := newGame(cfg, overlay)
	overlay.Add(&debugui.SceneInspector{
		Scene:   game.scheduler.Scene(),
		Bounds:  bounds,
		Input:   game.keys,
		Session: session,
	})
	overlay.Add(debugui.NewPerformanceStats(game.scheduler, 120))

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	log.Printf("pong session %s ended after %d ticks", session, game.scheduler.Ticks())
}
