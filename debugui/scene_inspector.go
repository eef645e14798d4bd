package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/pong/input"
	"github.com/plus3/pong/sim"
)

// SceneInspector lists entity positions, the paddle bounds and the keys
// held on the last tick.
type SceneInspector struct {
	Scene   *sim.Scene
	Bounds  sim.Bounds
	Input   *input.Snapshot
	Session string
}

func (si *SceneInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 210), imgui.CondOnce)

	if !imgui.BeginV("Scene", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Session: " + si.Session)
	imgui.Text(fmt.Sprintf("Bounds: [%.1f, %.1f]", si.Bounds.Min, si.Bounds.Max))
	imgui.Separator()

	for _, p := range []*sim.Paddle{&si.Scene.Left, &si.Scene.Right} {
		imgui.BulletText(fmt.Sprintf("%s paddle: (%.1f, %.2f)", p.Tag, p.Pos.X, p.Pos.Y))
	}
	ball := si.Scene.Ball
	imgui.BulletText(fmt.Sprintf("%s: (%.1f, %.1f) %d-gon r=%.0f", ball.Tag, ball.Pos.X, ball.Pos.Y, ball.Shape.Sides, ball.Shape.Radius))

	if imgui.TreeNodeStr("Held Keys") {
		if si.Input != nil {
			for _, k := range si.Input.Keys() {
				imgui.BulletText(k.String())
			}
		}
		imgui.TreePop()
	}

	imgui.End()
}
