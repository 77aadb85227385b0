package logfox

// dispatch filters m, writes the stdout line, and calls each sink in order.
// The caller holds the State's lock.
func (c *config) dispatch(m *Message) {
	if m.Level > c.min {
		return
	}

	segs := Segments(m.Namespace)
	for _, prefix := range c.exclude {
		if hasSegmentPrefix(segs, prefix) {
			return
		}
	}

	// one time for stdout and every sink
	now := c.clock()

	if c.stdout {
		c.writeLine(now, m, segs)
	}

	for _, sink := range c.sinks {
		sink.Receive(now, m)
	}
}
