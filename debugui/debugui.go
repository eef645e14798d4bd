// Package debugui draws a Dear ImGui overlay on top of the game for
// inspecting the scene and scheduler while playing.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// ToggleKey shows or hides the overlay.
const ToggleKey = ebiten.KeyF1

// Panel renders one ImGui window. It is called once per frame while the
// overlay is visible.
type Panel interface {
	Render()
}

// PanelFunc adapts a plain function to Panel.
type PanelFunc func()

func (f PanelFunc) Render() { f() }

// Overlay owns the ImGui backend and the panels drawn through it.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	panels  []Panel
	visible bool
}

// NewOverlay creates the ImGui backend and configures the ebiten window.
// ImGui layout persistence is disabled.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{backend: backend}
}

// Add registers a panel. Panels render in registration order.
func (o *Overlay) Add(p Panel) {
	o.panels = append(o.panels, p)
}

// Visible reports whether panels are being drawn.
func (o *Overlay) Visible() bool {
	return o.visible
}

// Toggle flips visibility.
func (o *Overlay) Toggle() {
	o.visible = !o.visible
}

// CapturesKeyboard reports whether a visible ImGui widget wants keyboard
// focus, in which case game input should be ignored for this tick.
func (o *Overlay) CapturesKeyboard() bool {
	return o.visible && imgui.CurrentIO().WantCaptureKeyboard()
}

// Update builds this frame's ImGui draw list. Call it from ebiten's Update.
func (o *Overlay) Update() {
	o.backend.BeginFrame()
	if o.visible {
		for _, p := range o.panels {
			p.Render()
		}
	}
	o.backend.EndFrame()
}

// Draw composites the overlay onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

// Layout forwards the outside size to the backend.
func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}
