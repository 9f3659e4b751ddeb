// Package keymap declares the key bindings and renders per-context footer
// help. Contexts follow the focused pane: tree, results, preview, search.
package keymap

// Binding ties a key to a command in a context.
type Binding struct {
	Key     string
	Command string
	Label   string
	Context string
}

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "q", Command: "quit", Label: "quit", Context: "global"},
		{Key: "ctrl+c", Command: "quit", Label: "", Context: "global"},
		{Key: "/", Command: "focus-search", Label: "search", Context: "global"},
		{Key: "tab", Command: "switch-pane", Label: "switch pane", Context: "global"},
		{Key: "R", Command: "rescan", Label: "rescan", Context: "global"},

		// Tree context
		{Key: "j/k", Command: "cursor", Label: "move", Context: "tree"},
		{Key: "enter", Command: "activate", Label: "open", Context: "tree"},
		{Key: "y", Command: "copy-path", Label: "copy path", Context: "tree"},
		{Key: "o", Command: "download", Label: "download", Context: "tree"},

		// Results context
		{Key: "j/k", Command: "cursor", Label: "move", Context: "results"},
		{Key: "enter", Command: "activate", Label: "open", Context: "results"},
		{Key: "esc", Command: "clear-search", Label: "clear", Context: "results"},

		// Preview context
		{Key: "j/k", Command: "scroll", Label: "scroll", Context: "preview"},
		{Key: "g/G", Command: "scroll-ends", Label: "top/bottom", Context: "preview"},
		{Key: "o", Command: "download", Label: "download", Context: "preview"},
		{Key: "y", Command: "copy-path", Label: "copy path", Context: "preview"},
		{Key: "esc", Command: "close-preview", Label: "back", Context: "preview"},

		// Search input context
		{Key: "enter", Command: "submit", Label: "search", Context: "search"},
		{Key: "esc", Command: "cancel", Label: "cancel", Context: "search"},
	}
}

// Registry resolves bindings by context.
type Registry struct {
	bindings []Binding
}

// NewRegistry returns a registry with the default bindings.
func NewRegistry() *Registry {
	return &Registry{bindings: DefaultBindings()}
}

// For returns the labeled bindings for a context, global ones last.
func (r *Registry) For(context string) []Binding {
	var out []Binding
	for _, b := range r.bindings {
		if b.Context == context && b.Label != "" {
			out = append(out, b)
		}
	}
	for _, b := range r.bindings {
		if b.Context == "global" && b.Label != "" {
			out = append(out, b)
		}
	}
	return out
}
