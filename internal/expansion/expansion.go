// Package expansion tracks which folder paths in the corpus tree are
// expanded. Membership is pure string bookkeeping: entries for paths that
// no longer exist in the latest tree are harmless and simply never match
// at render time. The set is never cleared automatically.
package expansion

import "strings"

// Set holds the expanded folder paths.
type Set struct {
	expanded map[string]struct{}
}

// New returns an empty Set.
func New() *Set {
	return &Set{expanded: make(map[string]struct{})}
}

// Toggle flips the expansion state of path.
func (s *Set) Toggle(path string) {
	if _, ok := s.expanded[path]; ok {
		delete(s.expanded, path)
	} else {
		s.expanded[path] = struct{}{}
	}
}

// Expand marks path as expanded.
func (s *Set) Expand(path string) {
	s.expanded[path] = struct{}{}
}

// IsExpanded reports whether path is expanded.
func (s *Set) IsExpanded(path string) bool {
	_, ok := s.expanded[path]
	return ok
}

// ExpandAncestorsOf inserts every proper ancestor of path: each prefix
// ending at a "/" boundary. The path itself is untouched, as are
// unrelated entries.
func (s *Set) ExpandAncestorsOf(path string) {
	for i, r := range path {
		if r == '/' && i > 0 {
			s.expanded[path[:i]] = struct{}{}
		}
	}
}

// Len returns the number of expanded paths.
func (s *Set) Len() int { return len(s.expanded) }

// IsAncestorOf reports whether ancestor is a proper path prefix of path at
// a "/" boundary.
func IsAncestorOf(ancestor, path string) bool {
	return len(ancestor) < len(path) && strings.HasPrefix(path, ancestor+"/")
}
