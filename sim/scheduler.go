package sim

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Ticks           uint64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// InputSource supplies the key snapshot for the next tick.
type InputSource func() KeyState

// Scheduler runs systems against a scene at a fixed timestep.
type Scheduler struct {
	scene       *Scene
	dt          float64
	accumulator float64
	ticks       uint64
	systems     []System
	systemStats []*systemStatsInternal
}

// NewScheduler creates a scheduler that advances scene in steps of dt
// seconds.
func NewScheduler(scene *Scene, dt float64) *Scheduler {
	if dt <= 0 {
		panic("sim: scheduler timestep must be positive")
	}
	return &Scheduler{
		scene:   scene,
		dt:      dt,
		systems: make([]System, 0),
	}
}

// Register appends a system. Systems execute in registration order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	var name string
	if named, ok := system.(interface{ Name() string }); ok {
		name = named.Name()
	} else {
		systemType := reflect.TypeOf(system)
		if systemType.Kind() == reflect.Ptr {
			systemType = systemType.Elem()
		}
		name = systemType.Name()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Scene returns the scene the scheduler drives.
func (s *Scheduler) Scene() *Scene {
	return s.scene
}

// Ticks returns the number of fixed steps taken so far.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Once executes every registered system exactly once with a full timestep.
func (s *Scheduler) Once(input KeyState) {
	frame := &UpdateFrame{
		Tick:      s.ticks,
		DeltaTime: s.dt,
		Input:     input,
		Scene:     s.scene,
	}

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.ticks++
}

// Advance adds elapsed seconds to the accumulator and runs as many whole
// steps as fit. The remainder carries over to the next call. It returns the
// number of steps run.
func (s *Scheduler) Advance(elapsed float64, input KeyState) int {
	if elapsed > 0 {
		s.accumulator += elapsed
	}

	steps := 0
	for s.accumulator >= s.dt {
		s.Once(input)
		s.accumulator -= s.dt
		steps++
	}
	return steps
}

// Run advances the scheduler from a ticker firing every interval until ctx
// is cancelled. Input is sampled from source once per tick of the ticker.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, source InputSource) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			elapsed := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Advance(elapsed, source())
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Ticks:       s.ticks,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
