// Package search holds the query, result list and in-flight flag for
// full-text search. Submissions are tagged with a sequence number; a
// response mutates the model only while its tag is current, so a slow
// earlier search can never clobber the results of a later one. In-flight
// requests are never cancelled, just ignored on arrival.
package search

import (
	"strings"

	"github.com/docscout/docscout/internal/api"
)

// Model is the search state container.
type Model struct {
	Query       string
	Results     []api.SearchResult
	IsSearching bool

	seq uint64
}

// New returns an empty search model.
func New() *Model {
	return &Model{}
}

// Submit records a new query and returns its sequence tag. An empty or
// whitespace-only query short-circuits: results are cleared, nothing is
// in flight, and ok is false so the caller skips the backend entirely.
func (m *Model) Submit(query string) (seq uint64, ok bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		m.Query = ""
		m.Results = nil
		m.IsSearching = false
		m.seq++
		return 0, false
	}
	m.Query = trimmed
	m.IsSearching = true
	m.seq++
	return m.seq, true
}

// Apply installs results if seq is still the current submission. Returns
// false when the response is stale and was discarded.
func (m *Model) Apply(seq uint64, results []api.SearchResult) bool {
	if seq != m.seq {
		return false
	}
	m.Results = results
	m.IsSearching = false
	return true
}

// Fail marks the current submission finished without touching results.
// Stale failures are ignored like stale responses; the return reports
// whether the failure belonged to the current submission.
func (m *Model) Fail(seq uint64) bool {
	if seq != m.seq {
		return false
	}
	m.IsSearching = false
	return true
}

// Clear resets the query and results, e.g. when the user closes search.
func (m *Model) Clear() {
	m.Query = ""
	m.Results = nil
	m.IsSearching = false
	m.seq++
}
