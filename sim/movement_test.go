package sim_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/pong/input"
	"github.com/plus3/pong/sim"
)

var referenceBounds = sim.Bounds{Min: -252, Max: 252}

func sampleYs() []float64 {
	return []float64{-252, -251.5, -200, -10, -0.001, 0, 3.3, 100, 245.4, 246, 251.9, 252}
}

func TestDefaultBounds(t *testing.T) {
	assert.Equal(t, referenceBounds, sim.DefaultConfig().Bounds())
}

func TestBoundsClamp(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"inside", 12.5, 12.5},
		{"at max", 252, 252},
		{"at min", -252, -252},
		{"above", 253.3, 252},
		{"below", -1000, -252},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, referenceBounds.Clamp(tt.in))
		})
	}
}

func TestResolveDirection(t *testing.T) {
	keys := sim.Bindings{Up: ebiten.KeyA, Down: ebiten.KeyD}

	tests := []struct {
		name string
		held []ebiten.Key
		want sim.Direction
	}{
		{"none", nil, sim.Idle},
		{"up", []ebiten.Key{ebiten.KeyA}, sim.Up},
		{"down", []ebiten.Key{ebiten.KeyD}, sim.Down},
		{"both prefers up", []ebiten.Key{ebiten.KeyD, ebiten.KeyA}, sim.Up},
		{"unrelated keys", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowRight}, sim.Idle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sim.ResolveDirection(input.NewSnapshot(tt.held...), keys))
		})
	}
}

func TestMovePaddle(t *testing.T) {
	speed, dt := float64(sim.PaddleSpeed), float64(sim.DT)
	step := speed * dt

	t.Run("idle does not drift", func(t *testing.T) {
		for _, y := range sampleYs() {
			assert.Equal(t, y, sim.MovePaddle(y, sim.Idle, sim.PaddleSpeed, sim.DT, referenceBounds))
		}
	})

	t.Run("up and down integrate then clamp", func(t *testing.T) {
		for _, y := range sampleYs() {
			assert.Equal(t, referenceBounds.Clamp(y+step), sim.MovePaddle(y, sim.Up, speed, dt, referenceBounds))
			assert.Equal(t, referenceBounds.Clamp(y-step), sim.MovePaddle(y, sim.Down, speed, dt, referenceBounds))
		}
	})

	t.Run("never leaves bounds", func(t *testing.T) {
		for _, y := range sampleYs() {
			for _, dir := range []sim.Direction{sim.Down, sim.Idle, sim.Up} {
				got := sim.MovePaddle(y, dir, sim.PaddleSpeed, sim.DT, referenceBounds)
				assert.True(t, referenceBounds.Contains(got), "y=%v dir=%v -> %v", y, dir, got)
			}
		}
	})

	t.Run("saturates at the edges", func(t *testing.T) {
		assert.Equal(t, 252.0, sim.MovePaddle(252, sim.Up, sim.PaddleSpeed, sim.DT, referenceBounds))
		assert.Equal(t, -252.0, sim.MovePaddle(-252, sim.Down, sim.PaddleSpeed, sim.DT, referenceBounds))
	})
}

func newReferenceScheduler(t *testing.T) (*sim.Scheduler, *sim.Scene) {
	t.Helper()

	cfg := sim.DefaultConfig()
	require.NoError(t, cfg.Validate())

	scene := sim.NewScene(cfg)
	scheduler := sim.NewScheduler(scene, cfg.DT)
	left, right := sim.NewPaddleMovementSystems(cfg)
	scheduler.Register(left)
	scheduler.Register(right)
	return scheduler, scene
}

func TestPaddleMovementSystemBothKeysMatchUp(t *testing.T) {
	for _, y := range sampleYs() {
		a, sceneA := newReferenceScheduler(t)
		b, sceneB := newReferenceScheduler(t)
		sceneA.Left.Pos.Y, sceneB.Left.Pos.Y = y, y

		a.Once(input.NewSnapshot(ebiten.KeyA, ebiten.KeyD))
		b.Once(input.NewSnapshot(ebiten.KeyA))

		assert.Equal(t, sceneB.Left.Pos.Y, sceneA.Left.Pos.Y, "y=%v", y)
	}
}

func TestPaddleMovementSystemHoldUpUntilClamped(t *testing.T) {
	scheduler, scene := newReferenceScheduler(t)
	up := input.NewSnapshot(ebiten.KeyA, ebiten.KeyArrowRight)

	for range 37 {
		scheduler.Once(up)
	}
	assert.InDelta(t, 37*400.0/60.0, scene.Left.Pos.Y, 1e-9)
	assert.Less(t, scene.Left.Pos.Y, 252.0)

	scheduler.Once(up)
	assert.Equal(t, 252.0, scene.Left.Pos.Y)
	assert.Equal(t, -252.0, scene.Right.Pos.Y)

	for range 100 {
		scheduler.Once(up)
		require.Equal(t, 252.0, scene.Left.Pos.Y)
	}
}

func TestPaddleMovementSystemLeavesXAndBallAlone(t *testing.T) {
	scheduler, scene := newReferenceScheduler(t)
	before := *scene

	for range 20 {
		scheduler.Once(input.NewSnapshot(ebiten.KeyD, ebiten.KeyArrowLeft))
	}

	assert.Equal(t, before.Left.Pos.X, scene.Left.Pos.X)
	assert.Equal(t, before.Right.Pos.X, scene.Right.Pos.X)
	assert.Equal(t, before.Ball, scene.Ball)
	assert.Less(t, scene.Left.Pos.Y, 0.0)
	assert.Greater(t, scene.Right.Pos.Y, 0.0)
}

func TestPaddleSystemsAreOrderIndependent(t *testing.T) {
	cfg := sim.DefaultConfig()
	left, right := sim.NewPaddleMovementSystems(cfg)

	forward := sim.NewScheduler(sim.NewScene(cfg), cfg.DT)
	forward.Register(left)
	forward.Register(right)

	reverse := sim.NewScheduler(sim.NewScene(cfg), cfg.DT)
	reverse.Register(right)
	reverse.Register(left)

	frames := [][]ebiten.Key{
		{ebiten.KeyA},
		{ebiten.KeyA, ebiten.KeyArrowRight},
		{ebiten.KeyD, ebiten.KeyArrowLeft},
		{ebiten.KeyArrowLeft, ebiten.KeyArrowRight},
		nil,
	}
	for i := range 200 {
		keys := input.NewSnapshot(frames[i%len(frames)]...)
		forward.Once(keys)
		reverse.Once(keys)
	}

	assert.Equal(t, forward.Scene().Left, reverse.Scene().Left)
	assert.Equal(t, forward.Scene().Right, reverse.Scene().Right)
}

func TestPaddleMovementSystemName(t *testing.T) {
	left, right := sim.NewPaddleMovementSystems(sim.DefaultConfig())
	assert.Equal(t, "PaddleMovement(left)", left.Name())
	assert.Equal(t, "PaddleMovement(right)", right.Name())
}
