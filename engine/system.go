// Package engine runs game systems in a fixed order once per tick. Systems
// share state through typed singletons and request structural changes, such
// as halting the loop, through deferred commands applied at the end of a tick.
package engine

// System represents one phase of a tick. Implementations are structs whose
// Singleton fields are wired by the Scheduler at registration; other fields
// persist between ticks.
type System interface {
	Execute(frame *UpdateFrame)
}
