package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/pong/sim"
)

func main() {
	duration := flag.Duration("duration", 5*time.Second, "How long to run the simulation for.")
	interval := flag.Duration("interval", time.Second/sim.TicksPerSecond, "Wall-clock interval between scheduler advances.")
	patternName := flag.String("pattern", "alternate", "Scripted input: idle, up, down, both or alternate.")
	period := flag.Int("period", 90, "Ticks between direction changes for the alternate pattern.")
	flag.Parse()

	cfg := sim.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	pattern, err := parsePattern(*patternName)
	if err != nil {
		log.Fatal(err)
	}

	scene := sim.NewScene(cfg)
	scheduler := sim.NewScheduler(scene, cfg.DT)
	left, right := sim.NewPaddleMovementSystems(cfg)
	scheduler.Register(left)
	scheduler.Register(right)

	script := newScript(cfg, pattern, *period)
	bounds := cfg.Bounds()

	report := &Report{
		Duration: *duration,
		Interval: *interval,
		Pattern:  pattern.String(),
		Bounds:   bounds,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %s pattern for %s...\n", pattern, *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	scheduler.Run(ctx, *interval, func() sim.KeyState {
		keys := script.next(scheduler.Ticks())
		report.observe(scene, bounds)
		return keys
	})
	report.observe(scene, bounds)

	report.TotalTime = time.Since(startTime)
	report.Scheduler = scheduler.GetStats()
	report.Left = scene.Left.Pos
	report.Right = scene.Right.Pos
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if report.Violations > 0 {
		log.Fatalf("%d bound violations observed", report.Violations)
	}
}
