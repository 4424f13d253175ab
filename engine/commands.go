package engine

// Commands buffers operations that must not take effect while systems are
// still executing. They are applied after the last system of the tick.
type Commands struct {
	defers []func()
	halt   bool
	reason string
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run after every system of the current tick.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Halt stops the scheduler once the current tick completes. The first reason
// given is kept.
func (c *Commands) Halt(reason string) {
	if !c.halt {
		c.reason = reason
	}
	c.halt = true
}

// Flush runs deferred functions in queue order, resets the buffer and reports
// whether a halt was requested.
func (c *Commands) Flush() (halt bool, reason string) {
	for _, fn := range c.defers {
		fn()
	}
	halt, reason = c.halt, c.reason

	c.defers = c.defers[:0]
	c.halt = false
	c.reason = ""
	return halt, reason
}
