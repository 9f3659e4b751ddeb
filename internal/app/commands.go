package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docscout/docscout/internal/api"
)

// Message types for tea.Cmd
type (
	// TickMsg is sent on each clock tick, used for toast expiry.
	TickMsg time.Time

	// TreeLoadedMsg carries a freshly fetched corpus tree.
	TreeLoadedMsg struct {
		Root *api.TreeNode
		Err  error
	}

	// StatsLoadedMsg carries fresh index statistics.
	StatsLoadedMsg struct {
		Stats *api.Stats
		Err   error
	}

	// DocumentLoadedMsg carries a resolved document. Seq is the
	// selection tag the request was issued under; responses whose tag
	// is no longer current are discarded.
	DocumentLoadedMsg struct {
		Seq uint64
		Doc *api.Document
		Err error
	}

	// SearchDoneMsg carries search results. Seq is the submission tag
	// the request was issued under; stale responses are discarded.
	SearchDoneMsg struct {
		Seq     uint64
		Results []api.SearchResult
		Err     error
	}

	// ScanStartedMsg acknowledges a rescan trigger.
	ScanStartedMsg struct {
		Err error
	}

	// ReloadTickMsg fires after the rescan delay and triggers a tree
	// and stats reload.
	ReloadTickMsg time.Time

	// ToastMsg displays a temporary status message.
	ToastMsg struct {
		Message  string
		Duration time.Duration
		IsError  bool
	}
)

// tickCmd returns a command that ticks every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ShowToast returns a command to show a toast message.
func ShowToast(msg string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Message: msg, Duration: duration}
	}
}

// ShowErrorToast returns a command to show an error toast.
func ShowErrorToast(msg string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Message: msg, Duration: duration, IsError: true}
	}
}

func (m *Model) loadTree() tea.Cmd {
	return func() tea.Msg {
		root, err := m.client.FileTree(context.Background())
		return TreeLoadedMsg{Root: root, Err: err}
	}
}

func (m *Model) loadStats() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.client.Stats(context.Background())
		return StatsLoadedMsg{Stats: stats, Err: err}
	}
}

// resolveDocument fetches the document behind a tree selection. The seq
// tag travels with the response so the handler can tell whether the
// selection has moved on in the meantime.
func (m *Model) resolveDocument(seq uint64, relPath string) tea.Cmd {
	return func() tea.Msg {
		doc, err := m.client.DocumentByPath(context.Background(), relPath)
		return DocumentLoadedMsg{Seq: seq, Doc: doc, Err: err}
	}
}

func (m *Model) runSearch(seq uint64, query string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.client.Search(context.Background(), query, m.cfg.API.SearchLimit)
		return SearchDoneMsg{Seq: seq, Results: results, Err: err}
	}
}

// rescan triggers a backend scan. The scan runs server-side in the
// background; the response only acknowledges the trigger.
func (m *Model) rescan() tea.Cmd {
	return func() tea.Msg {
		err := m.client.Scan(context.Background())
		return ScanStartedMsg{Err: err}
	}
}

// scheduleReload arms a one-shot reload after the configured rescan
// delay. Each rescan arms its own reload; overlapping rescans simply
// reload twice, which is harmless because reloads replace state
// wholesale.
func (m *Model) scheduleReload() tea.Cmd {
	return tea.Tick(m.cfg.API.RescanReloadDelay, func(t time.Time) tea.Msg {
		return ReloadTickMsg(t)
	})
}
