// Package app is the root Bubble Tea model for docscout. It coordinates
// the tree, search and selection models so the three panes never
// contradict each other: every user gesture is handled here, mutates the
// models synchronously, and fires commands whose responses carry the
// sequence tags the models use to discard stale arrivals.
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docscout/docscout/internal/api"
	"github.com/docscout/docscout/internal/config"
	"github.com/docscout/docscout/internal/expansion"
	"github.com/docscout/docscout/internal/keymap"
	"github.com/docscout/docscout/internal/search"
	"github.com/docscout/docscout/internal/selection"
	"github.com/docscout/docscout/internal/styles"
	"github.com/docscout/docscout/internal/tree"
	"github.com/docscout/docscout/internal/viewstate"
)

// Focus identifies the pane receiving key input.
type Focus int

const (
	FocusTree Focus = iota
	FocusMain
	FocusSearch
)

// Model is the root Bubble Tea model.
type Model struct {
	cfg    *config.Config
	client *api.Client
	logger *slog.Logger

	keys *keymap.Registry

	// Domain state
	exp    *expansion.Set
	sel    *selection.Model
	srch   *search.Model
	corpus *tree.Tree
	stats  *api.Stats

	// Focus and per-pane cursors
	focus         Focus
	treeCursor    int
	treeScroll    int
	resultCursor  int
	resultScroll  int
	previewScroll int

	// Widgets
	searchInput textinput.Model
	spinner     spinner.Model

	// Layout
	width, height int
	ready         bool

	// Status/toast messages
	statusMsg     string
	statusExpiry  time.Time
	statusIsError bool
}

// New builds the root model. The backend is not contacted until Init.
func New(cfg *config.Config, client *api.Client, logger *slog.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "search documents"
	ti.Prompt = "/ "
	ti.CharLimit = 256

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.SpinnerStyle),
	)

	return &Model{
		cfg:         cfg,
		client:      client,
		logger:      logger,
		keys:        keymap.NewRegistry(),
		exp:         expansion.New(),
		sel:         selection.New(),
		srch:        search.New(),
		corpus:      tree.New(nil),
		focus:       FocusTree,
		searchInput: ti,
		spinner:     sp,
	}
}

// Init kicks off the initial tree and stats loads.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadTree(), m.loadStats(), tickCmd())
}

// mainState resolves what the main panel currently shows.
func (m *Model) mainState() viewstate.State {
	return viewstate.Resolve(viewstate.Inputs{
		HasPreview:  m.sel.Preview != nil,
		IsSearching: m.srch.IsSearching,
		ResultCount: len(m.srch.Results),
		Query:       m.srch.Query,
	})
}

// activeContext names the keymap context for the focused pane.
func (m *Model) activeContext() string {
	switch m.focus {
	case FocusSearch:
		return "search"
	case FocusMain:
		if m.mainState() == viewstate.Preview {
			return "preview"
		}
		return "results"
	default:
		return "tree"
	}
}

// visibleRows flattens the corpus tree under the current expansion state.
func (m *Model) visibleRows() []tree.Row {
	return m.corpus.Flatten(m.exp, m.sel.SelectedPath)
}

// setToast replaces the current toast.
func (m *Model) setToast(msg ToastMsg) {
	d := msg.Duration
	if d == 0 {
		d = 3 * time.Second
	}
	m.statusMsg = msg.Message
	m.statusExpiry = time.Now().Add(d)
	m.statusIsError = msg.IsError
}
