package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/docscout/docscout/internal/api"
	"github.com/docscout/docscout/internal/styles"
	"github.com/docscout/docscout/internal/tree"
	"github.com/docscout/docscout/internal/viewstate"
)

// resultRowHeight is the rendered height of one search result entry:
// name line, snippet line, path line.
const resultRowHeight = 3

// View renders the full screen: header, tree and main panels side by
// side, search line, footer.
func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := m.renderHeader()
	searchLine := m.renderSearchLine()
	footer := m.renderFooter()

	bodyHeight := m.height - m.chromeHeight()
	if bodyHeight < 4 {
		bodyHeight = 4
	}
	treeWidth := m.width * m.cfg.UI.TreeWidthPercent / 100
	if treeWidth < 20 {
		treeWidth = 20
	}
	mainWidth := m.width - treeWidth

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderTreePanel(treeWidth, bodyHeight),
		m.renderMainPanel(mainWidth, bodyHeight),
	)

	parts := []string{header, body, searchLine}
	if m.cfg.UI.ShowFooter {
		parts = append(parts, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderHeader() string {
	title := styles.HeaderTitle.Render(" docscout ")
	stats := ""
	if m.stats != nil {
		stats = styles.HeaderStats.Render(fmt.Sprintf("%d documents · last scan %s",
			m.stats.TotalDocuments, humanTime(m.stats.LastScan)))
	}
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(stats) - 1
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + stats
}

func (m *Model) renderSearchLine() string {
	if m.focus == FocusSearch {
		return m.searchInput.View()
	}
	if m.srch.Query != "" {
		return styles.Muted.Render("/ " + m.srch.Query)
	}
	return styles.Muted.Render("/ to search")
}

func (m *Model) renderFooter() string {
	if m.statusMsg != "" {
		st := styles.ToastSuccess
		if m.statusIsError {
			st = styles.ToastError
		}
		return st.Render(" " + m.statusMsg + " ")
	}
	var parts []string
	for _, b := range m.keys.For(m.activeContext()) {
		parts = append(parts,
			styles.FooterKey.Render(b.Key)+" "+styles.FooterHelp.Render(b.Label))
	}
	return ansi.Truncate(strings.Join(parts, styles.FooterHelp.Render(" · ")), m.width, "…")
}

// chromeHeight is the rows outside the panels: header, search line and,
// when enabled, the footer.
func (m *Model) chromeHeight() int {
	if m.cfg.UI.ShowFooter {
		return 3
	}
	return 2
}

// treeViewHeight is the number of tree rows that fit in the tree panel.
func (m *Model) treeViewHeight() int {
	return m.height - m.chromeHeight() - 3
}

// mainViewHeight is the number of content lines that fit in the main
// panel.
func (m *Model) mainViewHeight() int {
	return m.height - m.chromeHeight() - 3
}

// previewBodyHeight is the number of document lines the preview shows
// once the metadata line and its separator are taken out.
func (m *Model) previewBodyHeight() int {
	h := m.mainViewHeight() - 2
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) renderTreePanel(width, height int) string {
	panel := styles.PanelInactive
	if m.focus == FocusTree {
		panel = styles.PanelActive
	}
	inner := width - 2
	// The panel styles pad one column each side; lines wider than the
	// padded area would wrap and break the row math.
	contentW := inner - 2
	innerH := height - 2

	var b strings.Builder
	b.WriteString(styles.PanelHeader.Render(padLine("Corpus", contentW)))
	b.WriteByte('\n')

	rows := m.visibleRows()
	visH := innerH - 1
	end := m.treeScroll + visH
	if end > len(rows) {
		end = len(rows)
	}
	for i := m.treeScroll; i < end; i++ {
		b.WriteString(m.renderTreeRow(rows[i], i == m.treeCursor, contentW))
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	if len(rows) == 0 {
		b.WriteString(styles.Muted.Render("no documents"))
	}

	return panel.Width(inner).Height(innerH).Render(b.String())
}

func (m *Model) renderTreeRow(row tree.Row, cursor bool, width int) string {
	indent := strings.Repeat("  ", row.Depth)
	var icon, name string
	if row.Node.IsDir() {
		if row.Expanded {
			icon = "▾"
		} else {
			icon = "▸"
		}
		name = styles.TreeFolder.Render(row.Node.Name)
	} else {
		icon = styles.TreeIcon.Render(tree.Icon(row.Node.Name))
		name = styles.TreeFile.Render(row.Node.Name)
	}
	line := indent + icon + " " + name
	if row.Selected {
		line = indent + icon + " " + styles.TreeSelected.Render(row.Node.Name)
	}
	if cursor {
		line = "› " + line
	} else {
		line = "  " + line
	}
	return ansi.Truncate(line, width, "…")
}

func (m *Model) renderMainPanel(width, height int) string {
	panel := styles.PanelInactive
	if m.focus == FocusMain {
		panel = styles.PanelActive
	}
	inner := width - 2
	contentW := inner - 2
	innerH := height - 2

	var title, content string
	switch m.mainState() {
	case viewstate.Preview:
		title = m.sel.Preview.Name
		content = m.renderPreview(contentW)
	case viewstate.Loading:
		title = "Searching"
		content = m.spinner.View() + styles.Muted.Render(" searching for "+m.srch.Query)
	case viewstate.Results:
		title = fmt.Sprintf("Results (%d)", len(m.srch.Results))
		content = m.renderResults(contentW, innerH-1)
	case viewstate.NoResults:
		title = "Results"
		content = styles.Muted.Render("no matches for " + m.srch.Query)
	default:
		title = "Welcome"
		content = m.renderWelcome()
	}

	var b strings.Builder
	b.WriteString(styles.PanelHeader.Render(padLine(title, contentW)))
	b.WriteByte('\n')
	b.WriteString(content)
	return panel.Width(inner).Height(innerH).Render(b.String())
}

func (m *Model) renderWelcome() string {
	var b strings.Builder
	b.WriteString(styles.WelcomeTitle.Render("docscout"))
	b.WriteString("\n\n")
	b.WriteString(styles.Muted.Render("Browse the tree on the left, or press / to search."))
	b.WriteString("\n")
	if m.stats != nil && m.stats.DocumentRoot != "" {
		b.WriteString(styles.Muted.Render("Corpus root: " + m.stats.DocumentRoot))
	} else {
		// Stats have not arrived; showing the backend helps diagnose a
		// wrong URL or a server that is down.
		b.WriteString(styles.Muted.Render("Backend: " + m.client.BaseURL()))
	}
	return b.String()
}

func (m *Model) renderResults(width, height int) string {
	perPage := height / resultRowHeight
	if perPage < 1 {
		perPage = 1
	}
	end := m.resultScroll + perPage
	if end > len(m.srch.Results) {
		end = len(m.srch.Results)
	}

	var b strings.Builder
	for i := m.resultScroll; i < end; i++ {
		r := m.srch.Results[i]
		name := styles.ResultName.Render(tree.Icon(r.Document.Name) + " " + r.Document.Name)
		if i == m.resultCursor {
			name = styles.ResultSelected.Render("› " + r.Document.Name)
		}
		score := styles.ResultScore.Render(fmt.Sprintf(" %.2f", r.RelevanceScore))
		b.WriteString(ansi.Truncate(name+score, width, "…"))
		b.WriteByte('\n')
		b.WriteString(ansi.Truncate(styles.ResultSnippet.Render("  "+oneLine(r.Snippet)), width, "…"))
		b.WriteByte('\n')
		b.WriteString(ansi.Truncate(styles.ResultPath.Render("  "+r.Document.RelativePath), width, "…"))
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m *Model) renderPreview(width int) string {
	doc := m.sel.Preview
	meta := styles.PreviewMeta.Render(fmt.Sprintf("%s · %s · indexed %s",
		strings.ToUpper(strings.TrimPrefix(doc.FileType, ".")),
		humanSize(doc.Size),
		humanTime(doc.IndexedAt)))

	lines := previewLines(doc)
	end := m.previewScroll + m.previewBodyHeight()
	if end > len(lines) {
		end = len(lines)
	}
	var b strings.Builder
	b.WriteString(ansi.Truncate(meta, width, "…"))
	b.WriteString("\n\n")
	for i := m.previewScroll; i < end; i++ {
		b.WriteString(ansi.Truncate(styles.PreviewBody.Render(lines[i]), width, "…"))
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// previewLines splits the extracted text for scrolling. Documents whose
// text extraction produced nothing get a placeholder.
func previewLines(doc *api.Document) []string {
	if doc.Content == "" {
		return []string{"(no extracted text)"}
	}
	return strings.Split(strings.ReplaceAll(doc.Content, "\r\n", "\n"), "\n")
}

func padLine(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return ansi.Truncate(s, width, "…")
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func humanTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Format("2006-01-02")
	}
}
