package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ktreeapp/ktree/internal/logging/events"
)

// enterFilter opens the filter editor for the focused pane, seeded with the
// current term so editing refines rather than restarts. On a column it edits
// the column filter; on the detail pane it edits the content search.
func (m *Model) enterFilter() {
	var seed string
	if m.focus == focusDetail {
		m.filterDetail = true
		seed = m.detail.search
	} else {
		col := m.focusedColumn()
		if col == nil {
			return
		}
		m.filterDetail = false
		seed = col.Filter
	}
	m.mode = ModeFilter
	m.filterInput.SetValue(seed)
	m.filterInput.CursorEnd()
	m.filterInput.Focus()
}

func (m *Model) handleFilterKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "enter":
		return m.commitFilter()
	case "esc", "ctrl+c":
		m.cancelFilter()
		return nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(key)
	return cmd
}

// commitFilter applies the edited term: as a content search when the detail
// pane was focused, otherwise as the focused column's filter, which cascades
// because the filtered highlight is a new highlight as far as the children
// are concerned.
func (m *Model) commitFilter() tea.Cmd {
	m.mode = ModeBrowse
	m.filterInput.Blur()
	if m.filterDetail {
		m.filterDetail = false
		m.setDetailSearch(m.filterInput.Value())
		return nil
	}
	col := m.focusedColumn()
	if col == nil {
		return nil
	}
	col.SetFilter(m.filterInput.Value())
	col.EnsureCursorVisible(m.columnHeight())
	events.Filter.Committed(col.ID, col.Filter, len(col.Items))
	m.resetDownstream(m.focus)
	if len(col.Items) == 0 {
		return nil
	}
	return m.cascadeFrom(m.focus, false)
}

// cancelFilter abandons the edit; the pane keeps whatever term it had.
func (m *Model) cancelFilter() {
	m.mode = ModeBrowse
	m.filterInput.Blur()
	if m.filterDetail {
		m.filterDetail = false
		events.Filter.Cancelled("detail")
		return
	}
	if col := m.focusedColumn(); col != nil {
		events.Filter.Cancelled(col.ID)
	}
}
