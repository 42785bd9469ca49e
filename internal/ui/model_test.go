package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ktreeapp/ktree/internal/kube"
	"github.com/ktreeapp/ktree/internal/ui/state"
)

// fakeProvider serves canned cluster data. Error fields, when set, fail the
// corresponding call.
type fakeProvider struct {
	namespaces []string
	kinds      []string
	objects    map[string]map[string][]string
	detail     string
	logs       string

	namespacesErr error
	objectsErr    error
	detailErr     error

	objectCalls int
}

func (f *fakeProvider) ListNamespaces(context.Context) ([]string, error) {
	return f.namespaces, f.namespacesErr
}

func (f *fakeProvider) ListObjectKinds(context.Context, string) ([]string, error) {
	return f.kinds, nil
}

func (f *fakeProvider) ListObjects(_ context.Context, namespace, kind string) ([]string, error) {
	f.objectCalls++
	if f.objectsErr != nil {
		return nil, f.objectsErr
	}
	return f.objects[namespace][kind], nil
}

func (f *fakeProvider) GetObjectDetail(_ context.Context, _, _, name string) (string, error) {
	if f.detailErr != nil {
		return "", f.detailErr
	}
	return f.detail + name, nil
}

func (f *fakeProvider) GetLogs(context.Context, string, string) (string, error) {
	return f.logs, nil
}

func (f *fakeProvider) BuildExecCommands(namespace, kind, name string) []kube.ExecCommand {
	if kind != kube.KindPods {
		return nil
	}
	return kube.ExecCommands("test-ctx", namespace, name)
}

func newTestProvider() *fakeProvider {
	return &fakeProvider{
		namespaces: []string{"default", "kube-system"},
		kinds:      []string{"Pods", "Services", "Deployments"},
		objects: map[string]map[string][]string{
			"default": {
				"Pods":     {"web-0", "web-1"},
				"Services": {"web"},
			},
			"kube-system": {
				"Pods": {"coredns-abc"},
			},
		},
		detail: "describe:",
		logs:   "line1\nline2\n",
	}
}

func newTestModel(provider Provider, opts Options) *Model {
	if opts.Width == 0 {
		opts.Width = 100
	}
	if opts.Height == 0 {
		opts.Height = 30
	}
	if opts.KubeContext == "" {
		opts.KubeContext = "test-ctx"
	}
	return NewModel(provider, opts)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStartupCascadePopulatesAllColumnsAndDetail(t *testing.T) {
	h := NewHarness(newTestModel(newTestProvider(), Options{}))
	m := h.Model()

	for i := columnIndex(0); i < columnCount; i++ {
		if m.columns[i].Status != state.StatusPopulated {
			t.Fatalf("expected column %s populated, got %v", m.columns[i].ID, m.columns[i].Status)
		}
	}
	if ns, _ := m.columns[colNamespaces].Current(); ns != "default" {
		t.Fatalf("expected first namespace highlighted, got %q", ns)
	}
	if kind, _ := m.columns[colKinds].Current(); kind != "Pods" {
		t.Fatalf("expected first kind highlighted, got %q", kind)
	}
	if m.detail.mode != detailDescribe {
		t.Fatalf("expected describe mode, got %v", m.detail.mode)
	}
	if m.detail.content != "describe:web-0" {
		t.Fatalf("expected detail for web-0, got %q", m.detail.content)
	}
}

func TestStartupArgumentsSelectBestMatch(t *testing.T) {
	h := NewHarness(newTestModel(newTestProvider(), Options{
		StartNamespace: "kube-sys",
		StartKind:      "pod",
	}))
	m := h.Model()

	if ns, _ := m.columns[colNamespaces].Current(); ns != "kube-system" {
		t.Fatalf("expected kube-system selected, got %q", ns)
	}
	if m.detail.content != "describe:coredns-abc" {
		t.Fatalf("expected detail for coredns-abc, got %q", m.detail.content)
	}
}

func TestStaleColumnResultIsDiscarded(t *testing.T) {
	h := NewHarness(newTestModel(newTestProvider(), Options{}))
	m := h.Model()
	col := m.columns[colObjects]
	current := col.Generation

	h.Send(columnLoadedMsg{col: colObjects, generation: current - 1, items: []string{"ghost"}})

	if col.IndexOf("ghost") >= 0 {
		t.Fatal("expected stale items to be discarded")
	}
	if col.Generation != current {
		t.Fatalf("expected generation unchanged, got %d", col.Generation)
	}
}

func TestStaleDetailResultIsDiscarded(t *testing.T) {
	h := NewHarness(newTestModel(newTestProvider(), Options{}))
	m := h.Model()

	h.Send(detailLoadedMsg{seq: m.detail.seq - 1, mode: detailDescribe, text: "ghost"})

	if m.detail.content == "ghost" {
		t.Fatal("expected stale detail to be discarded")
	}
}

func TestColumnLoadErrorResetsDownstream(t *testing.T) {
	provider := newTestProvider()
	h := NewHarness(newTestModel(provider, Options{}))
	m := h.Model()

	provider.objectsErr = errors.New("connection refused")
	h.Send(keyRunes("r"))
	h.Send(keyRunes("l"))
	h.Send(keyRunes("l")) // focus stops at kinds, objects errored

	if m.columns[colObjects].Status != state.StatusError {
		t.Fatalf("expected error status, got %v", m.columns[colObjects].Status)
	}
	if m.focus == colObjects {
		t.Fatal("expected focus not to enter the errored column")
	}
}
