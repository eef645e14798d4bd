package sim

import "github.com/hajimehoshi/ebiten/v2"

// KeyState reports whether a key is currently held.
type KeyState interface {
	Pressed(key ebiten.Key) bool
}

// Direction is the vertical intent of a paddle for one tick.
type Direction int

const (
	Down Direction = -1
	Idle Direction = 0
	Up   Direction = 1
)

// Bounds is a closed interval on the Y axis.
type Bounds struct {
	Min, Max float64
}

// Clamp saturates y to the interval.
func (b Bounds) Clamp(y float64) float64 {
	return min(max(y, b.Min), b.Max)
}

// Contains reports whether y lies inside the closed interval.
func (b Bounds) Contains(y float64) bool {
	return y >= b.Min && y <= b.Max
}

// ResolveDirection turns the held keys into a direction. If both keys are
// held, up wins.
func ResolveDirection(keys KeyState, b Bindings) Direction {
	if keys.Pressed(b.Up) {
		return Up
	} else if keys.Pressed(b.Down) {
		return Down
	}
	return Idle
}

// MovePaddle integrates one step of paddle motion and clamps the result.
func MovePaddle(y float64, dir Direction, speed, dt float64, bounds Bounds) float64 {
	return bounds.Clamp(y + float64(dir)*speed*dt)
}

// PaddleMovementSystem moves a single paddle from its key bindings once per
// tick.
type PaddleMovementSystem struct {
	Tag    Tag
	Keys   Bindings
	Speed  float64
	Bounds Bounds
}

// NewPaddleMovementSystems returns the left and right movement systems for
// cfg.
func NewPaddleMovementSystems(cfg Config) (left, right *PaddleMovementSystem) {
	bounds := cfg.Bounds()
	left = &PaddleMovementSystem{Tag: TagLeft, Keys: cfg.LeftKeys, Speed: cfg.PaddleSpeed, Bounds: bounds}
	right = &PaddleMovementSystem{Tag: TagRight, Keys: cfg.RightKeys, Speed: cfg.PaddleSpeed, Bounds: bounds}
	return left, right
}

// Name identifies the system in scheduler statistics.
func (s *PaddleMovementSystem) Name() string {
	return "PaddleMovement(" + s.Tag.String() + ")"
}

func (s *PaddleMovementSystem) Execute(frame *UpdateFrame) {
	paddle := frame.Scene.Paddle(s.Tag)
	dir := ResolveDirection(frame.Input, s.Keys)
	paddle.Pos.Y = MovePaddle(paddle.Pos.Y, dir, s.Speed, frame.DeltaTime, s.Bounds)
}
