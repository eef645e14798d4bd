package sim

import "fmt"

// Scene holds every entity in a session. Entities are created once by
// NewScene and are never added or removed afterwards.
type Scene struct {
	Camera Camera
	Left   Paddle
	Right  Paddle
	Ball   Ball
}

// NewScene lays out the camera, both paddles and the ball for cfg.
func NewScene(cfg Config) *Scene {
	paddle := Rect{Width: cfg.PaddleWidth, Height: cfg.PaddleHeight}
	halfWidth := cfg.WindowWidth / 2

	return &Scene{
		Left: Paddle{
			Tag:   TagLeft,
			Pos:   Vec2{X: -halfWidth + cfg.PaddleInset},
			Shape: paddle,
		},
		Right: Paddle{
			Tag:   TagRight,
			Pos:   Vec2{X: halfWidth - cfg.PaddleInset},
			Shape: paddle,
		},
		Ball: Ball{
			Tag:   TagBall,
			Shape: Polygon{Sides: cfg.BallSides, Radius: cfg.BallRadius},
		},
	}
}

// Paddle returns the paddle with the given tag. Asking for anything other
// than a paddle tag is a programming error and panics.
func (s *Scene) Paddle(tag Tag) *Paddle {
	switch tag {
	case TagLeft:
		return &s.Left
	case TagRight:
		return &s.Right
	default:
		panic(fmt.Sprintf("sim: no paddle with tag %s", tag))
	}
}
