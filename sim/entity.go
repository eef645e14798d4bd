package sim

import (
	"fmt"
	"math"
)

// Tag identifies one of the fixed scene entities.
type Tag uint8

const (
	TagLeft Tag = iota + 1
	TagRight
	TagBall
)

func (t Tag) String() string {
	switch t {
	case TagLeft:
		return "left"
	case TagRight:
		return "right"
	case TagBall:
		return "ball"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

// Vec2 is a point in world space. The origin is the window centre and +Y
// points up.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rect is an axis-aligned rectangle centred on its owner's position.
type Rect struct {
	Width, Height float64
}

// Polygon is a regular polygon centred on its owner's position. Radius is
// the circumradius.
type Polygon struct {
	Sides  int
	Radius float64
}

// Vertices returns the polygon's corners around centre, counter-clockwise.
// The first corner is rotated back by half the interior angle so that even
// sided polygons sit flat on the X axis.
func (p Polygon) Vertices(centre Vec2) []Vec2 {
	if p.Sides < 3 {
		return nil
	}
	n := float64(p.Sides)
	offset := -(n - 2) * math.Pi / n / 2
	step := 2 * math.Pi / n

	out := make([]Vec2, p.Sides)
	for i := range out {
		a := offset + float64(i)*step
		out[i] = Vec2{
			X: centre.X + p.Radius*math.Cos(a),
			Y: centre.Y + p.Radius*math.Sin(a),
		}
	}
	return out
}

// Paddle is a player's bat. Pos.X is fixed at creation; only Pos.Y moves.
type Paddle struct {
	Tag   Tag
	Pos   Vec2
	Shape Rect
}

// Ball is the (currently stationary) ball.
type Ball struct {
	Tag   Tag
	Pos   Vec2
	Shape Polygon
}

// Camera is the 2D view. The renderer centres the window on Pos.
type Camera struct {
	Pos Vec2
}
