package sim

// UpdateFrame is passed to every system during a tick.
type UpdateFrame struct {
	Tick      uint64
	DeltaTime float64
	Input     KeyState
	Scene     *Scene
}
