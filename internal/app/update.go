package app

import (
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docscout/docscout/internal/api"
	"github.com/docscout/docscout/internal/tree"
	"github.com/docscout/docscout/internal/viewstate"
)

// Update is the single message dispatcher.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchInput.Width = msg.Width - 8
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
			m.statusMsg = ""
		}
		return m, tickCmd()

	case spinner.TickMsg:
		if !m.srch.IsSearching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case TreeLoadedMsg:
		return m.handleTreeLoaded(msg)

	case StatsLoadedMsg:
		if msg.Err != nil {
			m.logger.Error("stats load failed", "error", msg.Err)
			return m, nil
		}
		m.stats = msg.Stats
		return m, nil

	case DocumentLoadedMsg:
		return m.handleDocumentLoaded(msg)

	case SearchDoneMsg:
		return m.handleSearchDone(msg)

	case ScanStartedMsg:
		if msg.Err != nil {
			m.logger.Error("rescan trigger failed", "error", msg.Err)
			return m, ShowErrorToast("rescan failed: "+msg.Err.Error(), 4*time.Second)
		}
		return m, ShowToast("rescan started", 2*time.Second)

	case ReloadTickMsg:
		// Documents may have changed on disk; cached resolutions are no
		// longer trustworthy.
		m.sel.InvalidateCache()
		return m, tea.Batch(m.loadTree(), m.loadStats())

	case ToastMsg:
		m.setToast(msg)
		return m, nil
	}

	return m, nil
}

func (m *Model) handleTreeLoaded(msg TreeLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Error("tree load failed", "error", msg.Err)
		return m, ShowErrorToast("backend unreachable: "+msg.Err.Error(), 5*time.Second)
	}
	firstLoad := m.corpus.Root == nil
	m.corpus = tree.New(msg.Root)
	if firstLoad && msg.Root != nil {
		m.exp.Expand(msg.Root.Path)
	}
	m.clampTreeCursor()
	return m, nil
}

func (m *Model) handleDocumentLoaded(msg DocumentLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.sel.Current(msg.Seq) {
		m.logger.Debug("discarding stale document response", "seq", msg.Seq)
		return m, nil
	}
	if msg.Err != nil {
		m.sel.Apply(msg.Seq, nil)
		if errors.Is(msg.Err, api.ErrNotFound) {
			return m, ShowToast("document not indexed yet", 3*time.Second)
		}
		m.logger.Error("document load failed", "error", msg.Err)
		return m, ShowErrorToast("load failed: "+msg.Err.Error(), 4*time.Second)
	}
	m.sel.Apply(msg.Seq, msg.Doc)
	m.previewScroll = 0
	return m, nil
}

func (m *Model) handleSearchDone(msg SearchDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		if !m.srch.Fail(msg.Seq) {
			m.logger.Debug("discarding stale search failure", "seq", msg.Seq)
			return m, nil
		}
		m.logger.Error("search failed", "error", msg.Err)
		return m, ShowErrorToast("search failed: "+msg.Err.Error(), 4*time.Second)
	}
	if !m.srch.Apply(msg.Seq, msg.Results) {
		m.logger.Debug("discarding stale search response", "seq", msg.Seq)
		return m, nil
	}
	m.resultCursor = 0
	m.resultScroll = 0
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus == FocusSearch {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.focus = FocusSearch
		m.searchInput.SetValue(m.srch.Query)
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()
	case "tab":
		if m.focus == FocusTree {
			m.focus = FocusMain
		} else {
			m.focus = FocusTree
		}
		return m, nil
	case "R":
		// The reload is armed alongside the trigger, not on its ack, so
		// a lost ack still refreshes and overlapping rescans each get
		// their own reload.
		return m, tea.Batch(m.rescan(), m.scheduleReload())
	}

	if m.focus == FocusTree {
		return m.handleTreeKey(msg)
	}
	return m.handleMainKey(msg)
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchInput.Blur()
		m.focus = FocusTree
		return m, nil
	case "enter":
		m.searchInput.Blur()
		m.focus = FocusMain
		return m, m.submitSearch(m.searchInput.Value())
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// submitSearch runs the query through the search model. Empty queries
// never reach the backend; the preview is closed either way so the main
// panel reflects the search, not a document from before it.
func (m *Model) submitSearch(query string) tea.Cmd {
	m.sel.ClearPreview()
	seq, ok := m.srch.Submit(query)
	if !ok {
		m.focus = FocusTree
		return nil
	}
	m.resultCursor = 0
	m.resultScroll = 0
	return tea.Batch(m.runSearch(seq, m.srch.Query), m.spinner.Tick)
}

func (m *Model) handleTreeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.visibleRows()
	switch msg.String() {
	case "j", "down":
		if m.treeCursor < len(rows)-1 {
			m.treeCursor++
		}
		m.clampTreeScroll()
	case "k", "up":
		if m.treeCursor > 0 {
			m.treeCursor--
		}
		m.clampTreeScroll()
	case "enter":
		if m.treeCursor < len(rows) {
			return m.activateNode(rows[m.treeCursor].Node)
		}
	case "y":
		if m.treeCursor < len(rows) {
			return m, m.copyPath(rows[m.treeCursor].Node.Path)
		}
	case "o":
		if m.treeCursor < len(rows) {
			if info := rows[m.treeCursor].Node.FileInfo; info != nil {
				return m, m.openDownload(info.ID)
			}
		}
	}
	return m, nil
}

// activateNode is the tree activation handler: folders toggle, files
// select and resolve. Selection is visible immediately; the document
// arrives whenever the backend answers, guarded by the sequence tag.
func (m *Model) activateNode(node *api.TreeNode) (tea.Model, tea.Cmd) {
	if node.IsDir() {
		m.exp.Toggle(node.Path)
		m.clampTreeCursor()
		return m, nil
	}
	seq := m.sel.Select(node.Path)
	m.previewScroll = 0
	m.focus = FocusMain
	relPath := tree.RelPath(m.corpus.Root.Path, node.Path)
	if doc, ok := m.sel.Cached(relPath); ok {
		m.sel.Apply(seq, doc)
		return m, nil
	}
	return m, m.resolveDocument(seq, relPath)
}

func (m *Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mainState() == viewstate.Preview {
		return m.handlePreviewKey(msg)
	}
	return m.handleResultsKey(msg)
}

func (m *Model) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	doc := m.sel.Preview
	switch msg.String() {
	case "esc":
		m.sel.ClearPreview()
		if len(m.srch.Results) == 0 && m.srch.Query == "" {
			m.focus = FocusTree
		}
	case "j", "down":
		m.previewScroll++
		m.clampPreviewScroll()
	case "k", "up":
		if m.previewScroll > 0 {
			m.previewScroll--
		}
	case "g":
		m.previewScroll = 0
	case "G":
		m.previewScroll = 1 << 30
		m.clampPreviewScroll()
	case "y":
		return m, m.copyPath(doc.Path)
	case "o":
		return m, m.openDownload(doc.ID)
	}
	return m, nil
}

func (m *Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.srch.Clear()
		m.focus = FocusTree
	case "j", "down":
		if m.resultCursor < len(m.srch.Results)-1 {
			m.resultCursor++
		}
		m.clampResultScroll()
	case "k", "up":
		if m.resultCursor > 0 {
			m.resultCursor--
		}
		m.clampResultScroll()
	case "enter":
		if m.resultCursor < len(m.srch.Results) {
			m.activateResult(m.srch.Results[m.resultCursor])
		}
	}
	return m, nil
}

// activateResult opens a search hit. The result already embeds the full
// document, so no backend round trip is needed: preview and selection are
// installed atomically, the tree is expanded down to the hit, and the
// tree cursor lands on it. A hit missing from the loaded tree (the index
// can run ahead of the last tree load) still previews; there is just no
// row for the cursor to land on.
func (m *Model) activateResult(r api.SearchResult) {
	doc := r.Document
	m.sel.SetPreview(doc.Path, &doc)
	m.exp.ExpandAncestorsOf(doc.Path)
	m.previewScroll = 0
	if m.corpus.FindByPath(doc.Path) == nil {
		m.logger.Debug("search hit not in the loaded tree", "path", doc.Path)
		return
	}
	m.moveTreeCursorTo(doc.Path)
}

func (m *Model) copyPath(path string) tea.Cmd {
	if err := clipboard.WriteAll(path); err != nil {
		m.logger.Error("clipboard write failed", "error", err)
		return ShowErrorToast("copy failed: "+err.Error(), 3*time.Second)
	}
	return ShowToast("path copied", 2*time.Second)
}

func (m *Model) openDownload(id string) tea.Cmd {
	return openURL(m.client.DownloadURL(id))
}

// moveTreeCursorTo points the tree cursor at the row for path, assuming
// the path's ancestors are already expanded.
func (m *Model) moveTreeCursorTo(path string) {
	for i, row := range m.visibleRows() {
		if row.Node.Path == path {
			m.treeCursor = i
			m.clampTreeScroll()
			return
		}
	}
}

// clampTreeCursor keeps the cursor inside the visible rows after the row
// set shrinks (collapse, reload).
func (m *Model) clampTreeCursor() {
	if n := len(m.visibleRows()); m.treeCursor >= n && n > 0 {
		m.treeCursor = n - 1
	} else if n == 0 {
		m.treeCursor = 0
	}
	m.clampTreeScroll()
}

func (m *Model) clampTreeScroll() {
	h := m.treeViewHeight()
	if h <= 0 {
		return
	}
	if m.treeCursor < m.treeScroll {
		m.treeScroll = m.treeCursor
	} else if m.treeCursor >= m.treeScroll+h {
		m.treeScroll = m.treeCursor - h + 1
	}
}

func (m *Model) clampResultScroll() {
	h := m.mainViewHeight() / resultRowHeight
	if h <= 0 {
		return
	}
	if m.resultCursor < m.resultScroll {
		m.resultScroll = m.resultCursor
	} else if m.resultCursor >= m.resultScroll+h {
		m.resultScroll = m.resultCursor - h + 1
	}
}

func (m *Model) clampPreviewScroll() {
	doc := m.sel.Preview
	if doc == nil {
		m.previewScroll = 0
		return
	}
	max := len(previewLines(doc)) - m.previewBodyHeight()
	if max < 0 {
		max = 0
	}
	if m.previewScroll > max {
		m.previewScroll = max
	}
}
