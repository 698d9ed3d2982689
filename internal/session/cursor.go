package session

// Cursor is an optional index into the current row sequence.
// It is unset exactly when the sequence is empty.
type Cursor struct {
	index int
	set   bool
}

// Selected returns the index and whether one is set.
func (c Cursor) Selected() (int, bool) {
	return c.index, c.set
}

// Advance moves to the next row, wrapping to the first.
func (c *Cursor) Advance(n int) {
	if n == 0 {
		return
	}
	if !c.set {
		c.index, c.set = 0, true
		return
	}
	c.index = (c.index + 1) % n
}

// Retreat moves to the previous row, wrapping to the last.
func (c *Cursor) Retreat(n int) {
	if n == 0 {
		return
	}
	if !c.set {
		c.index, c.set = 0, true
		return
	}
	c.index = (c.index - 1 + n) % n
}

// First selects row 0.
func (c *Cursor) First(n int) {
	if n > 0 {
		c.index, c.set = 0, true
	}
}

// Last selects the final row.
func (c *Cursor) Last(n int) {
	if n > 0 {
		c.index, c.set = n-1, true
	}
}

// Select sets the index if it is within [0, n).
func (c *Cursor) Select(i, n int) bool {
	if i < 0 || i >= n {
		return false
	}
	c.index, c.set = i, true
	return true
}

// Clamp re-fits the cursor to a sequence of length n after a rebuild.
func (c *Cursor) Clamp(n int) {
	switch {
	case n == 0:
		c.index, c.set = 0, false
	case !c.set:
		c.index, c.set = 0, true
	case c.index >= n:
		c.index = n - 1
	}
}
