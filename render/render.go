// Package render draws a sim.Scene with ebiten.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/pong/sim"
)

// WorldToScreen maps a world point, seen through camera, to screen pixels for
// a screen of the given size. World space is centred with +Y up; screen space
// has its origin top-left with +Y down.
func WorldToScreen(p sim.Vec2, camera sim.Camera, width, height float64) (x, y float32) {
	rel := p.Sub(camera.Pos)
	return float32(width/2 + rel.X), float32(height/2 - rel.Y)
}

// Renderer fills every scene entity with a solid colour.
type Renderer struct {
	Background color.Color
	Foreground color.Color
	Antialias  bool

	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer returns a renderer drawing white shapes on black.
func NewRenderer() *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &Renderer{
		Background: color.Black,
		Foreground: color.White,
		Antialias:  true,
		white:      white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Draw clears screen and draws both paddles and the ball.
func (r *Renderer) Draw(screen *ebiten.Image, scene *sim.Scene) {
	screen.Fill(r.Background)

	bounds := screen.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	r.drawPaddle(screen, &scene.Left, scene.Camera, w, h)
	r.drawPaddle(screen, &scene.Right, scene.Camera, w, h)
	r.drawPolygon(screen, scene.Ball.Shape.Vertices(scene.Ball.Pos), scene.Camera, w, h)
}

func (r *Renderer) drawPaddle(screen *ebiten.Image, p *sim.Paddle, camera sim.Camera, w, h float64) {
	topLeft := sim.Vec2{X: p.Pos.X - p.Shape.Width/2, Y: p.Pos.Y + p.Shape.Height/2}
	x, y := WorldToScreen(topLeft, camera, w, h)
	vector.DrawFilledRect(screen, x, y, float32(p.Shape.Width), float32(p.Shape.Height), r.Foreground, r.Antialias)
}

func (r *Renderer) drawPolygon(screen *ebiten.Image, corners []sim.Vec2, camera sim.Camera, w, h float64) {
	if len(corners) < 3 {
		return
	}

	var path vector.Path
	for i, c := range corners {
		x, y := WorldToScreen(c, camera, w, h)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])

	cr, cg, cb, ca := r.Foreground.RGBA()
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = float32(cr) / 0xffff
		r.vertices[i].ColorG = float32(cg) / 0xffff
		r.vertices[i].ColorB = float32(cb) / 0xffff
		r.vertices[i].ColorA = float32(ca) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = r.Antialias
	screen.DrawTriangles(r.vertices, r.indices, r.white, op)
}
