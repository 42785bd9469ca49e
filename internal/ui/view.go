package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/ktreeapp/ktree/internal/ui/state"
)

const (
	headerRows = 1
	footerRows = 1
	titleRows  = 1
)

// layout recomputes pane sizes from the current terminal dimensions.
func (m *Model) layout() {
	m.detail.viewport.Width = m.detailWidth() - 2
	m.detail.viewport.Height = m.bodyHeight() - titleRows
	if m.detail.viewport.Width < 0 {
		m.detail.viewport.Width = 0
	}
	if m.detail.viewport.Height < 0 {
		m.detail.viewport.Height = 0
	}
	m.filterInput.Width = m.columnWidth() - 4
	for _, col := range m.columns {
		col.EnsureCursorVisible(m.columnHeight())
	}
}

func (m *Model) bodyHeight() int {
	h := m.height - headerRows - footerRows
	if h < 0 {
		return 0
	}
	return h
}

func (m *Model) columnHeight() int {
	h := m.bodyHeight() - titleRows
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) detailWidth() int {
	w := m.width / 2
	if w < 0 {
		return 0
	}
	return w
}

func (m *Model) columnWidth() int {
	w := (m.width - m.detailWidth()) / int(columnCount)
	if w < 1 {
		return 1
	}
	return w
}

// View renders header, the three columns, the detail pane and the footer.
// While the help overlay is up it replaces the body wholesale.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.renderHelp(), m.renderFooter())
	}
	panes := make([]string, 0, int(columnCount)+1)
	for i := columnIndex(0); i < columnCount; i++ {
		panes = append(panes, m.renderColumn(i))
	}
	panes = append(panes, m.renderDetail())
	body := lipgloss.JoinHorizontal(lipgloss.Top, panes...)
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

func (m *Model) renderHeader() string {
	ns := m.currentNamespace()
	if ns == "" {
		ns = "-"
	}
	header := fmt.Sprintf("context: %s | namespace: %s", m.kubeContext, ns)
	return styles.Header.Render(truncateTo(header, m.width))
}

func truncateTo(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

func (m *Model) renderColumn(idx columnIndex) string {
	col := m.columns[idx]
	width := m.columnWidth()
	lines := make([]string, 0, m.columnHeight()+titleRows)
	lines = append(lines, m.renderColumnTitle(col, width))

	switch col.Status {
	case state.StatusLoading:
		lines = append(lines, styles.Loading.Render("loading…"))
	case state.StatusError:
		msg := "error"
		if col.Err != nil {
			msg = col.Err.Error()
		}
		lines = append(lines, styles.Error.Render(truncateTo(msg, width-1)))
	case state.StatusEmpty:
		lines = append(lines, styles.DimmedItem.Render("no items"))
	case state.StatusPopulated:
		if len(col.Items) == 0 {
			lines = append(lines, styles.DimmedItem.Render("no matches"))
			break
		}
		lines = append(lines, m.renderItems(col, idx, width)...)
	}

	block := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Width(width).Height(m.bodyHeight()).Render(block)
}

func (m *Model) renderColumnTitle(col *column, width int) string {
	title := col.Title
	if col.Filtered() {
		title += " /" + strings.TrimSpace(col.Filter)
		return styles.ColumnFiltered.Render(truncateTo(title, width-1))
	}
	return styles.ColumnTitle.Render(truncateTo(title, width-1))
}

func (m *Model) renderItems(col *column, idx columnIndex, width int) []string {
	height := m.columnHeight()
	start := col.ViewportOffset
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > len(col.Items) {
		end = len(col.Items)
	}
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		label := truncateTo(col.Items[i], width-3)
		marker := " "
		if col.Items[i] == col.Selected {
			marker = "*"
		}
		row := marker + " " + label
		switch {
		case i == col.Cursor && m.focus == idx:
			lines = append(lines, styles.SelectedItem.Render(row))
		case i == col.Cursor:
			lines = append(lines, styles.DimmedItem.Render(row))
		default:
			lines = append(lines, styles.Item.Render(row))
		}
	}
	return lines
}

func (m *Model) renderDetail() string {
	width := m.detailWidth()
	title := m.detailTitle()
	var body string
	switch {
	case m.detail.loading:
		body = styles.Loading.Render("loading…")
	case m.detail.errMsg != "":
		body = styles.Error.Render(m.detail.errMsg)
	default:
		body = m.detail.viewport.View()
	}
	block := lipgloss.JoinVertical(lipgloss.Left, title, body)
	return lipgloss.NewStyle().Width(width).Height(m.bodyHeight()).Render(block)
}

func (m *Model) detailTitle() string {
	if m.detail.name == "" {
		return styles.DetailTitle.Render("Details")
	}
	title := fmt.Sprintf("%s: %s", m.detail.mode, m.detail.name)
	if m.detail.search != "" {
		title += " /" + m.detail.search
	}
	if m.focus == focusDetail {
		title += " ●"
	}
	return styles.DetailTitle.Render(truncateTo(title, m.detailWidth()-1))
}

var helpBindings = []struct {
	keys string
	desc string
}{
	{"↑/↓, j/k", "move the highlight"},
	{"←/→, h/l", "move the focus between panes"},
	{"enter", "select the highlighted item"},
	{"/", "filter the focused column, or search the detail text"},
	{"r, ctrl+r", "refresh the focused pane"},
	{"d", "describe the highlighted object"},
	{"L", "pod logs"},
	{"e", "pod exec commands"},
	{"1-4", "copy an exec command to the clipboard"},
	{"g/G, home/end", "jump to top/bottom"},
	{"pgup/pgdown", "page through the list"},
	{"esc", "step back (search, detail, filter), then quit"},
	{"ctrl+b", "toggle this help"},
	{"q, ctrl+c", "quit"},
}

func (m *Model) renderHelp() string {
	lines := make([]string, 0, len(helpBindings)+2)
	lines = append(lines, styles.DetailTitle.Render("Key bindings"), "")
	for _, b := range helpBindings {
		lines = append(lines, fmt.Sprintf("  %-16s %s", b.keys, b.desc))
	}
	block := styles.Info.Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().Width(m.width).Height(m.bodyHeight()).Render(block)
}

func (m *Model) renderFooter() string {
	if m.mode == ModeFilter {
		return m.filterInput.View()
	}
	if m.errMsg != "" {
		return styles.Error.Render(truncateTo(m.errMsg, m.width))
	}
	if m.notice != "" {
		return styles.Notice.Render(m.notice)
	}
	help := "↑/↓ move · ←/→ focus · enter select · / filter · r refresh · d describe · L logs · e exec · ctrl+b help · q quit"
	return styles.Footer.Render(truncateTo(help, m.width))
}
