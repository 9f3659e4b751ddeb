// Package selection holds the selected tree path and the previewed
// document. Selection and preview move independently: clicking a file
// highlights it immediately while the document resolves in the
// background, so readers must tolerate a window where SelectedPath points
// at a node whose document has not arrived yet.
//
// Resolutions are tagged with a monotonically increasing sequence number.
// A response is applied only when its tag is still current, so a slow
// response for an earlier selection can never overwrite a later one.
package selection

import (
	"github.com/cespare/xxhash/v2"

	"github.com/docscout/docscout/internal/api"
)

// Model is the selection state container.
type Model struct {
	SelectedPath string
	Preview      *api.Document

	seq   uint64
	cache map[uint64]*api.Document
}

// New returns an empty selection model.
func New() *Model {
	return &Model{cache: make(map[uint64]*api.Document)}
}

// Select marks path as selected and returns the sequence tag for the
// resolution that should follow. Any earlier in-flight resolution becomes
// stale immediately.
func (m *Model) Select(path string) uint64 {
	m.SelectedPath = path
	m.seq++
	return m.seq
}

// Apply installs doc as the preview if seq is still the current
// resolution. Returns false when the response is stale and was discarded.
func (m *Model) Apply(seq uint64, doc *api.Document) bool {
	if seq != m.seq {
		return false
	}
	m.Preview = doc
	if doc != nil {
		m.Remember(doc)
	}
	return true
}

// Current reports whether seq identifies the outstanding resolution.
func (m *Model) Current(seq uint64) bool { return seq == m.seq }

// SetPreview selects path and installs doc atomically. Used when a search
// result is activated: its response already embeds the full document, so
// selection and preview become consistent in one step. In-flight
// resolutions are invalidated.
func (m *Model) SetPreview(path string, doc *api.Document) {
	m.SelectedPath = path
	m.Preview = doc
	m.seq++
	if doc != nil {
		m.Remember(doc)
	}
}

// ClearPreview drops the preview and invalidates in-flight resolutions so
// a late response cannot resurrect it. The selection highlight stays.
func (m *Model) ClearPreview() {
	m.Preview = nil
	m.seq++
}

// Cached returns a previously resolved document for the relative path, if
// any. Keys are xxhash digests of the relative path.
func (m *Model) Cached(relPath string) (*api.Document, bool) {
	doc, ok := m.cache[xxhash.Sum64String(relPath)]
	return doc, ok
}

// Remember stores doc in the resolution cache.
func (m *Model) Remember(doc *api.Document) {
	if doc.RelativePath == "" {
		return
	}
	m.cache[xxhash.Sum64String(doc.RelativePath)] = doc
}

// InvalidateCache empties the resolution cache. Called after a rescan
// reload, when document contents may have changed.
func (m *Model) InvalidateCache() {
	m.cache = make(map[uint64]*api.Document)
}
