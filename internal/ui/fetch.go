package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ktreeapp/ktree/internal/logging"
	"github.com/ktreeapp/ktree/internal/logging/events"
	"github.com/ktreeapp/ktree/internal/ui/state"
)

// columnLoadedMsg mirrors an async column fetch. generation is the column
// generation the fetch was issued under; results from an older generation are
// discarded without touching the column.
type columnLoadedMsg struct {
	col            columnIndex
	generation     int
	items          []string
	preserveCursor bool
	err            error
}

// loadColumnCmd snapshots the column's upstream scope, bumps its generation
// and returns the command performing the fetch. preserveCursor marks a
// refresh of the same scope; a scope change always resets the highlight.
func (m *Model) loadColumnCmd(col columnIndex, preserveCursor bool) tea.Cmd {
	c := m.columns[col]
	gen := c.BeginLoad()
	namespace := m.currentNamespace()
	kind := m.currentKind()
	provider := m.provider
	events.Load.Issued(c.ID, gen)
	return func() tea.Msg {
		var (
			items []string
			err   error
		)
		ctx := context.Background()
		switch col {
		case colNamespaces:
			items, err = provider.ListNamespaces(ctx)
		case colKinds:
			items, err = provider.ListObjectKinds(ctx, namespace)
		case colObjects:
			items, err = provider.ListObjects(ctx, namespace, kind)
		}
		if err != nil {
			logging.Error(err)
		}
		return columnLoadedMsg{col: col, generation: gen, items: items, preserveCursor: preserveCursor, err: err}
	}
}

func (m *Model) handleColumnLoadedMsg(msg tea.Msg) tea.Cmd {
	load, ok := msg.(columnLoadedMsg)
	if !ok {
		return nil
	}
	col := m.columns[load.col]
	if load.err != nil {
		if !col.Fail(load.generation, load.err) {
			events.Load.Stale(col.ID, load.generation, col.Generation)
			return nil
		}
		events.Load.Failed(col.ID, load.generation, load.err)
		m.resetDownstream(load.col)
		m.snapFocusTo(load.col)
		return nil
	}
	if !col.Apply(load.generation, load.items, load.preserveCursor) {
		events.Load.Stale(col.ID, load.generation, col.Generation)
		return nil
	}
	events.Load.Applied(col.ID, load.generation, len(col.Items))
	m.resolveStartupArg(load.col)
	col.EnsureCursorVisible(m.columnHeight())
	if col.Status == state.StatusEmpty || len(col.Items) == 0 {
		m.resetDownstream(load.col)
		m.snapFocusTo(load.col)
		return nil
	}
	return m.cascadeFrom(load.col, load.preserveCursor)
}

// cascadeFrom reloads everything downstream of the column whose highlight
// just changed (or refreshed). The chain continues from the loaded messages,
// so it stops by itself at the first empty level.
func (m *Model) cascadeFrom(col columnIndex, preserveCursor bool) tea.Cmd {
	switch col {
	case colNamespaces:
		return m.loadColumnCmd(colKinds, preserveCursor)
	case colKinds:
		return m.loadColumnCmd(colObjects, preserveCursor)
	case colObjects:
		return m.reloadDetail()
	}
	return nil
}

// resetDownstream blanks the columns and detail below col: with nothing
// highlighted upstream there is nothing for them to show.
func (m *Model) resetDownstream(col columnIndex) {
	for i := col + 1; i < columnCount; i++ {
		m.columns[i].Reset()
	}
	m.clearDetail()
}

// snapFocusTo pulls the focus back onto col when it currently sits on a
// column that just went blank.
func (m *Model) snapFocusTo(col columnIndex) {
	if m.focus > col {
		m.focus = col
	}
}

// resolveStartupArg applies a --namespace/--type argument once its column has
// loaded for the first time, picking the best match for the given name.
func (m *Model) resolveStartupArg(col columnIndex) {
	c := m.columns[col]
	var query string
	switch col {
	case colNamespaces:
		query, m.startNamespace = m.startNamespace, ""
	case colKinds:
		query, m.startKind = m.startKind, ""
	default:
		return
	}
	if query == "" {
		return
	}
	if idx := state.BestMatchIndex(c.Items, query); idx >= 0 {
		c.Cursor = idx
		events.UI.Highlight(c.ID, c.Cursor)
	}
}
