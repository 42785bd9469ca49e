package state

// MoveCursorUp moves the highlight one item up. No wrapping.
func (c *Column) MoveCursorUp() bool {
	return c.moveCursorBy(-1)
}

// MoveCursorDown moves the highlight one item down. No wrapping.
func (c *Column) MoveCursorDown() bool {
	return c.moveCursorBy(1)
}

// MoveCursorHome moves the highlight to the first item.
func (c *Column) MoveCursorHome() bool {
	if len(c.Items) == 0 {
		c.Cursor = 0
		return false
	}
	old := c.Cursor
	c.Cursor = 0
	return old != c.Cursor
}

// MoveCursorEnd moves the highlight to the last item.
func (c *Column) MoveCursorEnd() bool {
	n := len(c.Items)
	if n == 0 {
		c.Cursor = 0
		return false
	}
	old := c.Cursor
	c.Cursor = n - 1
	return old != c.Cursor
}

// MoveCursorPageUp moves the highlight up by one viewport page.
func (c *Column) MoveCursorPageUp(maxVisible int) bool {
	return c.moveCursorBy(-c.pageSize(maxVisible))
}

// MoveCursorPageDown moves the highlight down by one viewport page.
func (c *Column) MoveCursorPageDown(maxVisible int) bool {
	return c.moveCursorBy(c.pageSize(maxVisible))
}

func (c *Column) moveCursorBy(delta int) bool {
	if len(c.Items) == 0 {
		c.Cursor = 0
		return false
	}
	old := c.Cursor
	if c.Cursor < 0 {
		c.Cursor = 0
	}
	c.Cursor += delta
	if c.Cursor < 0 {
		c.Cursor = 0
	}
	if c.Cursor >= len(c.Items) {
		c.Cursor = len(c.Items) - 1
	}
	return c.Cursor != old
}

func (c *Column) pageSize(maxVisible int) int {
	total := len(c.Items)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the highlight stays in
// view for the given column height.
func (c *Column) EnsureCursorVisible(maxVisible int) {
	if len(c.Items) == 0 {
		c.Cursor = 0
		c.ViewportOffset = 0
		return
	}
	if c.Cursor < 0 {
		c.Cursor = 0
	}
	if c.Cursor >= len(c.Items) {
		c.Cursor = len(c.Items) - 1
	}
	if maxVisible <= 0 {
		c.ViewportOffset = 0
		return
	}
	maxOffset := len(c.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.ViewportOffset > maxOffset {
		c.ViewportOffset = maxOffset
	}
	if c.ViewportOffset < 0 {
		c.ViewportOffset = 0
	}
	if c.Cursor < c.ViewportOffset {
		c.ViewportOffset = c.Cursor
	}
	upper := c.ViewportOffset + maxVisible - 1
	if c.Cursor > upper {
		c.ViewportOffset = c.Cursor - maxVisible + 1
		if c.ViewportOffset < 0 {
			c.ViewportOffset = 0
		}
		if c.ViewportOffset > maxOffset {
			c.ViewportOffset = maxOffset
		}
	}
}
