package ui

import (
	"context"
	"reflect"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ktreeapp/ktree/internal/kube"
	"github.com/ktreeapp/ktree/internal/theme"
	"github.com/ktreeapp/ktree/internal/ui/state"
)

type column = state.Column

// Provider answers the cluster queries the browser issues. kube.Client is the
// production implementation; tests swap in a fake.
type Provider interface {
	ListNamespaces(ctx context.Context) ([]string, error)
	ListObjectKinds(ctx context.Context, namespace string) ([]string, error)
	ListObjects(ctx context.Context, namespace, kind string) ([]string, error)
	GetObjectDetail(ctx context.Context, namespace, kind, name string) (string, error)
	GetLogs(ctx context.Context, namespace, name string) (string, error)
	BuildExecCommands(namespace, kind, name string) []kube.ExecCommand
}

type columnIndex int

const (
	colNamespaces columnIndex = iota
	colKinds
	colObjects
	columnCount
)

// focusDetail is the pseudo-column the focus lands on past the object column.
const focusDetail = columnCount

// Mode switches key handling between browsing and filter editing.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeFilter
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the initial browser state.
type Options struct {
	// KubeContext is shown in the header and baked into exec commands.
	KubeContext string
	// Width/Height fix the layout instead of tracking the terminal.
	Width  int
	Height int
	// StartNamespace/StartKind pre-select items once their columns load.
	// They are resolved by best match, so approximate names work.
	StartNamespace string
	StartKind      string
}

// Model implements the Bubble Tea model for the cluster browser: three
// drill-down columns and a detail pane, each column loading its children as
// the highlight moves.
type Model struct {
	provider    Provider
	kubeContext string

	columns [columnCount]*column
	focus   columnIndex
	detail  detailState

	mode         Mode
	filterDetail bool
	filterInput  textinput.Model
	showHelp     bool

	startNamespace string
	startKind      string

	errMsg string
	notice string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the browser against the given provider.
func NewModel(provider Provider, opts Options) *Model {
	m := &Model{
		provider:       provider,
		kubeContext:    opts.KubeContext,
		startNamespace: opts.StartNamespace,
		startKind:      opts.StartKind,
	}
	m.columns[colNamespaces] = state.NewColumn("namespaces", "Namespaces")
	m.columns[colKinds] = state.NewColumn("kinds", "Kinds")
	m.columns[colObjects] = state.NewColumn("objects", "Objects")
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	ti := textinput.New()
	ti.Prompt = "/"
	if styles.FilterPrompt != nil {
		ti.PromptStyle = *styles.FilterPrompt
	}
	ti.CharLimit = 128
	m.filterInput = ti
	m.detail = newDetailState()
	m.registerHandlers()
	m.layout()
	return m
}

// Init kicks off the namespace load; the rest of the startup cascade follows
// from the loaded messages.
func (m *Model) Init() tea.Cmd {
	return m.loadColumnCmd(colNamespaces, false)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(columnLoadedMsg{}):   m.handleColumnLoadedMsg,
		reflect.TypeOf(detailLoadedMsg{}):   m.handleDetailLoadedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.layout()
	return nil
}

func (m *Model) focusedColumn() *column {
	if m.focus < 0 || m.focus >= columnCount {
		return nil
	}
	return m.columns[m.focus]
}

// currentNamespace returns the namespace the kind and object columns are
// scoped to: the highlighted entry of the namespace column.
func (m *Model) currentNamespace() string {
	ns, _ := m.columns[colNamespaces].Current()
	return ns
}

func (m *Model) currentKind() string {
	kind, _ := m.columns[colKinds].Current()
	return kind
}

func (m *Model) clearTransient() {
	m.errMsg = ""
	m.notice = ""
}
