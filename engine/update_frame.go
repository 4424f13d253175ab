package engine

// UpdateFrame is handed to every system during one tick.
type UpdateFrame struct {
	// Tick counts frames from zero.
	Tick      uint64
	DeltaTime float64
	Commands  *Commands
	Resources *Resources
}

func newUpdateFrame(tick uint64, dt float64, resources *Resources) *UpdateFrame {
	return &UpdateFrame{
		Tick:      tick,
		DeltaTime: dt,
		Commands:  newCommands(),
		Resources: resources,
	}
}
