// Package viewstate derives what the main panel shows from the selection
// and search models. Several conditions can be true at once (a stale
// result list can coexist with a new in-flight search, a preview with
// both), so resolution is a strict priority order and the first match
// wins.
package viewstate

// State enumerates the main panel contents.
type State int

const (
	// Preview shows the selected document. An active preview always
	// beats search chrome: reading a document is a modal-like focus.
	Preview State = iota
	// Loading shows the in-flight indicator. Checked before Results
	// because stale results can coexist with a newer running search.
	Loading
	// Results shows the ranked result list.
	Results
	// NoResults shows the empty-result notice for a submitted query.
	NoResults
	// Welcome is the initial and terminal state: no query, no preview.
	Welcome
)

// String returns the state name for logs and tests.
func (s State) String() string {
	switch s {
	case Preview:
		return "preview"
	case Loading:
		return "loading"
	case Results:
		return "results"
	case NoResults:
		return "no-results"
	default:
		return "welcome"
	}
}

// Inputs are the observed values the resolution depends on.
type Inputs struct {
	HasPreview  bool
	IsSearching bool
	ResultCount int
	Query       string
}

// Resolve applies the priority order to the inputs.
func Resolve(in Inputs) State {
	switch {
	case in.HasPreview:
		return Preview
	case in.IsSearching:
		return Loading
	case in.ResultCount > 0:
		return Results
	case in.Query != "":
		return NoResults
	default:
		return Welcome
	}
}
