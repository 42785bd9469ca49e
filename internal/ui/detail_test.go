package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ktreeapp/ktree/internal/clipboard"
)

func swapClipboard(t *testing.T) *[]string {
	t.Helper()
	var copied []string
	prevWrite, prevAvail := clipboard.Write, clipboard.Available
	clipboard.Write = func(text string) error {
		copied = append(copied, text)
		return nil
	}
	clipboard.Available = func() bool { return true }
	t.Cleanup(func() {
		clipboard.Write = prevWrite
		clipboard.Available = prevAvail
	})
	return &copied
}

func TestLogsModeOnlyForPods(t *testing.T) {
	h := NewHarness(newTestModel(newTestProvider(), Options{}))
	m := h.Model()

	h.Send(keyRunes("L"))
	if m.detail.mode != detailLogs {
		t.Fatalf("expected logs mode for pods, got %v", m.detail.mode)
	}
	if m.detail.content != "line1\nline2\n" {
		t.Fatalf("unexpected logs %q", m.detail.content)
	}

	h.Send(keyRunes("l")) // kinds
	h.Send(keyRunes("j")) // Services; detail back to describe
	h.Send(keyRunes("L"))
	if m.detail.mode == detailLogs {
		t.Fatal("expected logs refused for services")
	}
	if m.notice == "" {
		t.Fatal("expected a notice explaining the refusal")
	}
}

func TestExecModeListsShellCommands(t *testing.T) {
	h := NewHarness(newTestModel(newTestProvider(), Options{}))
	m := h.Model()

	h.Send(keyRunes("e"))
	if m.detail.mode != detailExec {
		t.Fatalf("expected exec mode, got %v", m.detail.mode)
	}
	if len(m.detail.exec) != 4 {
		t.Fatalf("expected 4 exec commands, got %d", len(m.detail.exec))
	}
}

func TestCopyExecSlot(t *testing.T) {
	copied := swapClipboard(t)
	h := NewHarness(newTestModel(newTestProvider(), Options{}))
	m := h.Model()

	h.Send(keyRunes("e"))
	h.Send(keyRunes("2"))

	if len(*copied) != 1 {
		t.Fatalf("expected one copy, got %d", len(*copied))
	}
	if (*copied)[0] != "kubectl exec -it web-0 -n default --context test-ctx -- /bin/bash" {
		t.Fatalf("unexpected copied command %q", (*copied)[0])
	}
	if m.notice == "" {
		t.Fatal("expected a copy notice")
	}
}

func TestCopyExecSlotWithoutCommandIsNoOp(t *testing.T) {
	copied := swapClipboard(t)
	h := NewHarness(newTestModel(newTestProvider(), Options{}))
	m := h.Model()

	h.Send(keyRunes("e"))
	m.detail.exec = m.detail.exec[:2]
	h.Send(keyRunes("3"))

	if len(*copied) != 0 {
		t.Fatalf("expected no copy, got %#v", *copied)
	}

	// Outside exec mode the digits are ordinary keys.
	h.Send(keyRunes("d"))
	h.Send(keyRunes("1"))
	if len(*copied) != 0 {
		t.Fatalf("expected no copy outside exec mode, got %#v", *copied)
	}
}

func TestDetailSearchNarrowsLogLines(t *testing.T) {
	h := NewHarness(newTestModel(newTestProvider(), Options{}))
	m := h.Model()

	h.Send(keyRunes("L"))
	h.Send(keyRunes("l"))
	h.Send(keyRunes("l"))
	h.Send(keyRunes("l")) // into detail
	if m.focus != focusDetail {
		t.Fatalf("expected detail focus, got %d", m.focus)
	}

	h.Send(keyRunes("/"))
	h.Send(keyRunes("LINE1"))
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})

	if m.detail.search != "LINE1" {
		t.Fatalf("expected the search term recorded, got %q", m.detail.search)
	}
	if got := m.detailViewContent(); got != "line1" {
		t.Fatalf("expected only matching lines, got %q", got)
	}
	if !m.detail.manualScroll {
		t.Fatal("expected an active search to pin the view")
	}

	// First esc clears the search, second leaves the pane.
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if m.detail.search != "" {
		t.Fatalf("expected esc to clear the search, got %q", m.detail.search)
	}
	if m.detail.manualScroll {
		t.Fatal("expected tail-follow restored once the search is cleared")
	}
	if m.focus != focusDetail {
		t.Fatalf("expected focus still on the detail pane, got %d", m.focus)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != colObjects {
		t.Fatalf("expected focus back on objects, got %d", m.focus)
	}
}

func TestLogsRefreshKeepsScrollPin(t *testing.T) {
	h := NewHarness(newTestModel(newTestProvider(), Options{}))
	m := h.Model()

	h.Send(keyRunes("L"))
	h.Send(keyRunes("l"))
	h.Send(keyRunes("l"))
	h.Send(keyRunes("l")) // into detail
	m.detail.manualScroll = true

	h.Send(keyRunes("r"))
	if m.detail.mode != detailLogs {
		t.Fatalf("expected logs mode after refresh, got %v", m.detail.mode)
	}
	if !m.detail.manualScroll {
		t.Fatal("expected the scroll pin to survive a logs refresh")
	}

	// Switching mode releases the pin.
	h.Send(keyRunes("d"))
	if m.detail.manualScroll {
		t.Fatal("expected a mode switch to release the pin")
	}
}
