package driver

// Commands buffers input collected during a frame so it can be applied to a
// Driver in one batch at the end of the frame. The zero value is ready to
// use. A Commands is not safe for concurrent use.
type Commands struct {
	cmds   []Command
	defers []func()
}

// Push queues a command.
func (c *Commands) Push(cmd Command) {
	if cmd == CommandNone {
		return
	}
	c.cmds = append(c.cmds, cmd)
}

// Defer queues a function to run after the queued commands are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.cmds)
}

// Flush applies the queued commands in order, runs deferred functions, and
// resets the buffer. It returns how many commands were accepted.
func (c *Commands) Flush(d *Driver) int {
	accepted := d.applyAll(c.cmds)

	for _, fn := range c.defers {
		fn()
	}

	c.cmds = c.cmds[:0]
	c.defers = c.defers[:0]

	return accepted
}
