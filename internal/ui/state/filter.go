package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter installs a filter term and recomputes the visible items. Entering
// a filter remembers the highlighted item so clearing the term can put the
// highlight back on it; committing a non-empty term puts the cursor on the
// first match.
func (c *Column) SetFilter(term string) {
	trimmed := strings.TrimSpace(term)
	prevTrimmed := strings.TrimSpace(c.Filter)
	c.Filter = term
	if trimmed != "" {
		if prevTrimmed == "" {
			c.LastCursor = c.Cursor
			c.LastItem, _ = c.Current()
		}
		c.applyFilter()
		c.Cursor = 0
		c.ViewportOffset = 0
		return
	}
	restore := c.LastItem
	c.applyFilter()
	if prevTrimmed != "" {
		// The remembered item may have vanished from a refresh that landed
		// while the filter was active; then the highlight goes to the top.
		if idx := c.IndexOf(restore); restore != "" && idx >= 0 {
			c.Cursor = idx
		} else {
			c.Cursor = 0
		}
		c.LastCursor = -1
		c.LastItem = ""
	}
}

// ClearFilter removes the filter term, restoring the pre-filter cursor when
// it still points at a valid item.
func (c *Column) ClearFilter() {
	c.SetFilter("")
}

// Filtered reports whether a non-empty filter term is active.
func (c *Column) Filtered() bool {
	return strings.TrimSpace(c.Filter) != ""
}

func (c *Column) applyFilter() {
	c.Items = FilterItems(c.Full, c.Filter)
	if len(c.Items) == 0 {
		c.Cursor = 0
		c.ViewportOffset = 0
		return
	}
	if c.Cursor >= len(c.Items) {
		c.Cursor = len(c.Items) - 1
	}
	if c.Cursor < 0 {
		c.Cursor = 0
	}
	if c.ViewportOffset > len(c.Items)-1 {
		c.ViewportOffset = 0
	}
}

// FilterItems returns the items whose names contain the term,
// case-insensitively, in their original order. An empty or all-space term
// matches everything.
func FilterItems(items []string, term string) []string {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return cloneItems(items)
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]string, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), lower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex resolves a user-supplied name to an item index: exact match
// first, then prefix, then substring, then fuzzy. Used to honour startup
// arguments like a namespace or kind name typed approximately. Returns -1
// only for an empty item list.
func BestMatchIndex(items []string, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item, trimmed) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.Contains(strings.ToLower(item), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, items)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return 0
	}
	return best.OriginalIndex
}
