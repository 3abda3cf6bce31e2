package input

// CursorTracker turns absolute cursor positions into per-event deltas.
// The first sample after Reset only primes the tracker.
type CursorTracker struct {
	lastX, lastY float64
	primed       bool
}

// Move returns the delta from the previous sample. ok is false for the
// priming sample.
func (c *CursorTracker) Move(x, y float64) (dx, dy float32, ok bool) {
	if !c.primed {
		c.lastX, c.lastY = x, y
		c.primed = true
		return 0, 0, false
	}
	dx = float32(x - c.lastX)
	dy = float32(y - c.lastY)
	c.lastX, c.lastY = x, y
	return dx, dy, true
}

func (c *CursorTracker) Reset() {
	c.primed = false
}
