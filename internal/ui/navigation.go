package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ktreeapp/ktree/internal/logging/events"
	"github.com/ktreeapp/ktree/internal/ui/state"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode == ModeFilter {
		return m.handleFilterKey(key)
	}
	return m.handleBrowseKey(key)
}

func (m *Model) handleBrowseKey(key tea.KeyMsg) tea.Cmd {
	k := key.String()
	events.UI.Key(k)
	m.clearTransient()

	if m.showHelp {
		switch k {
		case "ctrl+c":
			return tea.Quit
		case "ctrl+b", "esc", "q":
			m.showHelp = false
		}
		return nil
	}

	switch k {
	case "ctrl+c", "q":
		return tea.Quit
	case "ctrl+b":
		m.showHelp = true
		return nil
	case "esc":
		return m.handleEscapeKey()
	case "left", "h":
		m.moveFocusLeft()
		return nil
	case "right", "l":
		return m.moveFocusRight()
	case "enter":
		return m.selectItem()
	case "/":
		m.enterFilter()
		return nil
	case "r", "ctrl+r":
		return m.refresh()
	case "d":
		return m.setDetailMode(detailDescribe)
	case "L":
		return m.setDetailMode(detailLogs)
	case "e":
		return m.setDetailMode(detailExec)
	case "1", "2", "3", "4":
		if m.detail.mode == detailExec {
			m.copyExecSlot(int(k[0] - '0'))
			return nil
		}
	}

	if m.focus == focusDetail {
		m.scrollDetail(k)
		return nil
	}
	return m.handleCursorKey(k)
}

func (m *Model) handleCursorKey(k string) tea.Cmd {
	col := m.focusedColumn()
	if col == nil {
		return nil
	}
	moved := false
	switch k {
	case "up", "k":
		moved = col.MoveCursorUp()
	case "down", "j":
		moved = col.MoveCursorDown()
	case "home", "g":
		moved = col.MoveCursorHome()
	case "end", "G":
		moved = col.MoveCursorEnd()
	case "pgup":
		moved = col.MoveCursorPageUp(m.columnHeight())
	case "pgdown":
		moved = col.MoveCursorPageDown(m.columnHeight())
	default:
		return nil
	}
	if !moved {
		return nil
	}
	col.EnsureCursorVisible(m.columnHeight())
	events.UI.Highlight(col.ID, col.Cursor)
	m.resetDownstream(m.focus)
	return m.cascadeFrom(m.focus, false)
}

// handleEscapeKey steps back: an active detail search, then the detail pane,
// then an active column filter, then the program.
func (m *Model) handleEscapeKey() tea.Cmd {
	if m.focus == focusDetail {
		if m.detail.search != "" {
			m.setDetailSearch("")
			return nil
		}
		m.focus = colObjects
		events.UI.Focus(m.columns[colObjects].ID, int(colObjects))
		return nil
	}
	if col := m.focusedColumn(); col != nil && col.Filtered() {
		col.ClearFilter()
		col.EnsureCursorVisible(m.columnHeight())
		events.Filter.Cancelled(col.ID)
		m.resetDownstream(m.focus)
		return m.cascadeFrom(m.focus, false)
	}
	return tea.Quit
}

func (m *Model) moveFocusLeft() {
	if m.focus == focusDetail {
		m.focus = colObjects
	} else if m.focus > colNamespaces {
		m.focus--
	}
	if m.focus < columnCount {
		events.UI.Focus(m.columns[m.focus].ID, int(m.focus))
	}
}

// moveFocusRight advances the focus one pane. A column that is still loading,
// empty, errored, or filtered down to nothing cannot take the focus: there is
// nothing in it to highlight.
func (m *Model) moveFocusRight() tea.Cmd {
	if m.focus == focusDetail {
		return nil
	}
	if m.focus == colObjects {
		if !m.detail.hasContent() {
			return nil
		}
		m.focus = focusDetail
		events.UI.Focus("detail", int(focusDetail))
		return nil
	}
	target := m.columns[m.focus+1]
	if target.Status != state.StatusPopulated || len(target.Items) == 0 {
		return nil
	}
	m.focus++
	events.UI.Focus(target.ID, int(m.focus))
	return nil
}

// selectItem commits the highlighted item and moves on. The child column
// already tracks the highlight, so selection is focus movement plus the
// recorded choice.
func (m *Model) selectItem() tea.Cmd {
	col := m.focusedColumn()
	if col == nil {
		return nil
	}
	item, ok := col.Current()
	if !ok {
		return nil
	}
	col.Selected = item
	events.UI.Select(col.ID, item)
	return m.moveFocusRight()
}

// refresh re-fetches the focused column in place: same scope, same filter
// term, highlight clamped rather than reset.
func (m *Model) refresh() tea.Cmd {
	if m.focus == focusDetail {
		return m.reloadDetail()
	}
	return m.loadColumnCmd(m.focus, true)
}
