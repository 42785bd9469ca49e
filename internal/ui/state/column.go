// Package state holds the per-column browsing state: the backing item list,
// the filtered view over it, cursor and viewport positions, and the load
// generation used to discard stale fetch results.
package state

// Status describes where a column is in its load lifecycle.
type Status int

const (
	// StatusIdle means no load has been issued yet.
	StatusIdle Status = iota
	// StatusLoading means a fetch is in flight for the current generation.
	StatusLoading
	// StatusPopulated means the column holds at least one item.
	StatusPopulated
	// StatusEmpty means the last load completed with zero items.
	StatusEmpty
	// StatusError means the last load failed; Err holds the cause.
	StatusError
)

// String returns the lowercase status name used in trace payloads.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusPopulated:
		return "populated"
	case StatusEmpty:
		return "empty"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Column is one drill-down level of the browser. Items is the filtered view
// over Full; the filter term survives reloads, the cursor only survives
// refreshes of the same scope.
type Column struct {
	ID             string
	Title          string
	Full           []string
	Items          []string
	Filter         string
	Cursor         int
	LastCursor     int
	LastItem       string
	ViewportOffset int
	Status         Status
	Err            error
	Generation     int
	Selected       string
}

// NewColumn constructs an idle, empty column.
func NewColumn(id, title string) *Column {
	return &Column{
		ID:         id,
		Title:      title,
		LastCursor: -1,
	}
}

// BeginLoad marks the column loading and returns the new generation. Any
// result carrying an older generation must be discarded by Apply/Fail.
func (c *Column) BeginLoad() int {
	c.Generation++
	c.Status = StatusLoading
	c.Err = nil
	return c.Generation
}

// Apply installs a completed fetch. It reports false, changing nothing, when
// generation does not match the column's current one. With preserveCursor the
// highlight follows the previously highlighted item into the new list when it
// still exists there, falling back to the clamped index; that is what a
// refresh of the same scope wants.
func (c *Column) Apply(generation int, items []string, preserveCursor bool) bool {
	if generation != c.Generation {
		return false
	}
	prevItem, _ := c.Current()
	c.Full = cloneItems(items)
	c.Err = nil
	prevCursor := c.Cursor
	prevOffset := c.ViewportOffset
	c.applyFilter()
	if preserveCursor {
		if idx := c.IndexOf(prevItem); prevItem != "" && idx >= 0 {
			c.Cursor = idx
		} else {
			c.Cursor = clamp(prevCursor, len(c.Items))
		}
		if prevOffset >= 0 && prevOffset < len(c.Items) {
			c.ViewportOffset = prevOffset
		}
	} else {
		c.Cursor = 0
		c.ViewportOffset = 0
	}
	if len(c.Full) == 0 {
		c.Status = StatusEmpty
	} else {
		c.Status = StatusPopulated
	}
	return true
}

// Fail records a load error. Stale errors are discarded like stale results.
func (c *Column) Fail(generation int, err error) bool {
	if generation != c.Generation {
		return false
	}
	c.Status = StatusError
	c.Err = err
	return true
}

// Reset empties the column back to idle. Used when an upstream column loses
// its selection and everything downstream goes blank.
func (c *Column) Reset() {
	c.Full = nil
	c.Items = nil
	c.Cursor = 0
	c.LastCursor = -1
	c.LastItem = ""
	c.ViewportOffset = 0
	c.Status = StatusIdle
	c.Err = nil
	c.Selected = ""
}

// Current returns the highlighted item, if any.
func (c *Column) Current() (string, bool) {
	if c.Cursor < 0 || c.Cursor >= len(c.Items) {
		return "", false
	}
	return c.Items[c.Cursor], true
}

// IndexOf returns the position of name in the filtered view, or -1.
func (c *Column) IndexOf(name string) int {
	for i, item := range c.Items {
		if item == name {
			return i
		}
	}
	return -1
}

func cloneItems(items []string) []string {
	dup := make([]string, len(items))
	copy(dup, items)
	return dup
}

func clamp(cursor, n int) int {
	if n == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
