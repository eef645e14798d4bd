package sim

// System is a unit of per-tick behaviour. Systems may keep their own state
// between ticks.
type System interface {
	Execute(frame *UpdateFrame)
}
