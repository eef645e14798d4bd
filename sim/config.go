// Package sim holds the Pong scene and the fixed-timestep simulation that
// moves the paddles.
package sim

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	WindowWidth  = 800
	WindowHeight = 600

	// DT is the fixed simulation step in seconds.
	DT = 1.0 / 60.0

	PaddleSpeed    = 400.0
	PaddleWidth    = 16.0
	PaddleHeight   = 64.0
	PaddleMargin   = 16.0
	PaddleInset    = 64.0
	BallRadius     = 8.0
	BallSides      = 4
	WindowTitle    = "Pong!"
	TicksPerSecond = 60
)

// ErrEmptyBounds is returned when the paddle and its margin do not fit in
// the window height.
var ErrEmptyBounds = errors.New("paddle bounds are empty")

// Bindings maps a paddle's up and down actions to keys.
type Bindings struct {
	Up   ebiten.Key
	Down ebiten.Key
}

func (b Bindings) String() string {
	return fmt.Sprintf("up=%s down=%s", b.Up, b.Down)
}

// Config describes the playfield and paddle behaviour.
type Config struct {
	WindowWidth  float64
	WindowHeight float64
	DT           float64

	PaddleSpeed  float64
	PaddleWidth  float64
	PaddleHeight float64
	PaddleMargin float64
	PaddleInset  float64

	BallRadius float64
	BallSides  int

	LeftKeys  Bindings
	RightKeys Bindings
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		DT:           DT,
		PaddleSpeed:  PaddleSpeed,
		PaddleWidth:  PaddleWidth,
		PaddleHeight: PaddleHeight,
		PaddleMargin: PaddleMargin,
		PaddleInset:  PaddleInset,
		BallRadius:   BallRadius,
		BallSides:    BallSides,
		LeftKeys:     Bindings{Up: ebiten.KeyA, Down: ebiten.KeyD},
		RightKeys:    Bindings{Up: ebiten.KeyArrowLeft, Down: ebiten.KeyArrowRight},
	}
}

// Validate reports configurations whose paddle bounds would be empty or
// whose timing would never advance.
func (c Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %vx%v", c.WindowWidth, c.WindowHeight)
	}
	if c.DT <= 0 {
		return fmt.Errorf("invalid timestep %v", c.DT)
	}
	if c.PaddleSpeed < 0 {
		return fmt.Errorf("invalid paddle speed %v", c.PaddleSpeed)
	}
	if c.PaddleWidth <= 0 || c.PaddleHeight <= 0 || c.PaddleMargin < 0 {
		return fmt.Errorf("invalid paddle size %vx%v margin %v", c.PaddleWidth, c.PaddleHeight, c.PaddleMargin)
	}
	if b := c.Bounds(); b.Min > b.Max {
		return fmt.Errorf("%w: [%v, %v]", ErrEmptyBounds, b.Min, b.Max)
	}
	if c.BallSides < 3 || c.BallRadius <= 0 {
		return fmt.Errorf("invalid ball polygon: %d sides radius %v", c.BallSides, c.BallRadius)
	}
	if c.LeftKeys == c.RightKeys {
		return fmt.Errorf("left and right paddles share bindings %s", c.LeftKeys)
	}
	return nil
}

// Bounds returns the closed interval a paddle centre may occupy.
func (c Config) Bounds() Bounds {
	limit := c.WindowHeight/2 - c.PaddleHeight/2 - c.PaddleMargin
	return Bounds{Min: -limit, Max: limit}
}
