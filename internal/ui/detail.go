package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ktreeapp/ktree/internal/clipboard"
	"github.com/ktreeapp/ktree/internal/kube"
	"github.com/ktreeapp/ktree/internal/logging"
	"github.com/ktreeapp/ktree/internal/logging/events"
)

type detailMode int

const (
	detailDescribe detailMode = iota
	detailLogs
	detailExec
)

func (d detailMode) String() string {
	switch d {
	case detailDescribe:
		return "describe"
	case detailLogs:
		return "logs"
	case detailExec:
		return "exec"
	}
	return "unknown"
}

// detailState is the right-hand pane: one object rendered in one of three
// modes. seq plays the role the column generation plays on the left; a
// response carrying an older seq is dropped.
type detailState struct {
	mode    detailMode
	content string
	search  string
	loading bool
	errMsg  string
	seq     int

	namespace string
	kind      string
	name      string

	exec []kube.ExecCommand

	viewport viewport.Model
	// manualScroll pins the logs view where the user scrolled it instead of
	// following the tail.
	manualScroll bool
}

// detailLoadedMsg mirrors an async detail fetch.
type detailLoadedMsg struct {
	seq  int
	mode detailMode
	text string
	err  error
}

func newDetailState() detailState {
	return detailState{viewport: viewport.New(0, 0)}
}

func (d *detailState) hasContent() bool {
	return d.content != "" || d.errMsg != "" || d.loading
}

func (m *Model) clearDetail() {
	seq := m.detail.seq
	vp := m.detail.viewport
	m.detail = newDetailState()
	m.detail.seq = seq + 1
	m.detail.viewport = vp
	m.detail.viewport.SetContent("")
	if m.focus == focusDetail {
		m.focus = colObjects
	}
}

// reloadDetail fetches the current mode for the highlighted object, or clears
// the pane when nothing is highlighted.
func (m *Model) reloadDetail() tea.Cmd {
	name, ok := m.columns[colObjects].Current()
	if !ok {
		m.clearDetail()
		return nil
	}
	return m.loadDetailCmd(m.detail.mode, m.currentNamespace(), m.currentKind(), name)
}

// setDetailMode switches the pane to the requested mode for the highlighted
// object. Logs and exec only apply to pods; for anything else the request is
// refused with a notice instead of an error.
func (m *Model) setDetailMode(mode detailMode) tea.Cmd {
	name, ok := m.columns[colObjects].Current()
	if !ok {
		return nil
	}
	kind := m.currentKind()
	if mode != detailDescribe && kind != kube.KindPods {
		m.notice = fmt.Sprintf("%s is only available for pods", mode)
		return nil
	}
	events.Detail.Mode(mode.String())
	return m.loadDetailCmd(mode, m.currentNamespace(), kind, name)
}

func (m *Model) loadDetailCmd(mode detailMode, namespace, kind, name string) tea.Cmd {
	m.detail.seq++
	seq := m.detail.seq
	// The scroll pin survives a same-mode reload (a logs refresh); it is
	// released on a mode switch and, via clearDetail, on selection change.
	if mode != m.detail.mode {
		m.detail.manualScroll = false
	}
	m.detail.mode = mode
	m.detail.loading = true
	m.detail.errMsg = ""
	m.detail.namespace = namespace
	m.detail.kind = kind
	m.detail.name = name

	if mode == detailExec {
		// Exec commands are built locally; no round trip needed.
		m.detail.exec = m.provider.BuildExecCommands(namespace, kind, name)
		return func() tea.Msg {
			return detailLoadedMsg{seq: seq, mode: mode, text: ""}
		}
	}

	provider := m.provider
	return func() tea.Msg {
		var (
			text string
			err  error
		)
		ctx := context.Background()
		switch mode {
		case detailDescribe:
			text, err = provider.GetObjectDetail(ctx, namespace, kind, name)
		case detailLogs:
			text, err = provider.GetLogs(ctx, namespace, name)
		}
		if err != nil {
			logging.Error(err)
		}
		return detailLoadedMsg{seq: seq, mode: mode, text: text, err: err}
	}
}

func (m *Model) handleDetailLoadedMsg(msg tea.Msg) tea.Cmd {
	load, ok := msg.(detailLoadedMsg)
	if !ok {
		return nil
	}
	if load.seq != m.detail.seq {
		events.Load.Stale("detail", load.seq, m.detail.seq)
		return nil
	}
	m.detail.loading = false
	if load.err != nil {
		m.detail.errMsg = load.err.Error()
		m.detail.content = ""
		m.detail.viewport.SetContent("")
		return nil
	}
	if load.mode == detailExec {
		m.detail.content = renderExecCommands(m.detail.exec)
	} else {
		m.detail.content = load.text
	}
	m.detail.viewport.SetContent(m.detailViewContent())
	switch {
	case load.mode == detailLogs && !m.detail.manualScroll:
		m.detail.viewport.GotoBottom()
	case load.mode == detailLogs:
		// Pinned: the viewport keeps its offset across the reload.
	default:
		m.detail.viewport.GotoTop()
	}
	events.Detail.Loaded(load.mode.String(), len(m.detail.content))
	return nil
}

func renderExecCommands(cmds []kube.ExecCommand) string {
	if len(cmds) == 0 {
		return "no exec commands available"
	}
	var b strings.Builder
	b.WriteString("press 1-4 to copy a command to the clipboard\n\n")
	for i, cmd := range cmds {
		fmt.Fprintf(&b, "[%d] %s (%s)\n    %s\n\n", i+1, cmd.Shell, cmd.Description, cmd.Command)
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// setDetailSearch narrows the detail pane to the lines containing term. An
// empty term restores the full content.
func (m *Model) setDetailSearch(term string) {
	m.detail.search = strings.TrimSpace(term)
	view := m.detailViewContent()
	m.detail.viewport.SetContent(view)
	m.detail.viewport.GotoTop()
	// A search pins the view; tail-follow resumes when it is cleared.
	m.detail.manualScroll = m.detail.search != ""
	events.Filter.Committed("detail", m.detail.search, strings.Count(view, "\n")+1)
}

// detailViewContent applies the active search term to the loaded content.
func (m *Model) detailViewContent() string {
	if m.detail.search == "" {
		return m.detail.content
	}
	lower := strings.ToLower(m.detail.search)
	var matched []string
	for _, line := range strings.Split(m.detail.content, "\n") {
		if strings.Contains(strings.ToLower(line), lower) {
			matched = append(matched, line)
		}
	}
	if len(matched) == 0 {
		return "no matches"
	}
	return strings.Join(matched, "\n")
}

// copyExecSlot copies the slot'th exec command (1-based) to the clipboard.
// A slot with no command behind it is a no-op.
func (m *Model) copyExecSlot(slot int) {
	if m.detail.mode != detailExec {
		return
	}
	if slot < 1 || slot > len(m.detail.exec) {
		events.Detail.CopySlot(slot, false)
		return
	}
	if !clipboard.Available() {
		m.notice = "clipboard unavailable"
		events.Detail.CopySlot(slot, false)
		return
	}
	cmd := m.detail.exec[slot-1]
	if err := clipboard.Write(cmd.Command); err != nil {
		logging.Error(err)
		m.errMsg = fmt.Sprintf("copy failed: %v", err)
		events.Detail.CopySlot(slot, false)
		return
	}
	m.notice = fmt.Sprintf("copied %s command", cmd.Shell)
	events.Detail.CopySlot(slot, true)
}

func (m *Model) scrollDetail(key string) {
	vp := &m.detail.viewport
	switch key {
	case "up", "k":
		vp.LineUp(1)
	case "down", "j":
		vp.LineDown(1)
	case "pgup":
		vp.ViewUp()
	case "pgdown":
		vp.ViewDown()
	case "g", "home":
		vp.GotoTop()
	case "G", "end":
		vp.GotoBottom()
	}
	m.detail.manualScroll = !vp.AtBottom()
}
