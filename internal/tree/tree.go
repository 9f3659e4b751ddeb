// Package tree is the client-side view of the corpus tree: flattening the
// nested backend structure into visible rows, path lookups, and file-type
// icons. The tree is replaced wholesale on every reload; expansion state
// lives separately so it survives reloads.
package tree

import (
	"strings"

	"github.com/docscout/docscout/internal/api"
	"github.com/docscout/docscout/internal/expansion"
)

// Tree wraps a backend tree root.
type Tree struct {
	Root *api.TreeNode
}

// New wraps root. A nil root yields an empty tree.
func New(root *api.TreeNode) *Tree {
	return &Tree{Root: root}
}

// Row is one visible line of the rendered tree.
type Row struct {
	Node     *api.TreeNode
	Depth    int
	Expanded bool
	Selected bool
}

// Flatten walks the tree depth-first and returns the rows that are
// visible under the given expansion state. Children of collapsed folders
// are skipped; child order is the backend's.
func (t *Tree) Flatten(exp *expansion.Set, selectedPath string) []Row {
	if t == nil || t.Root == nil {
		return nil
	}
	var rows []Row
	var walk func(n *api.TreeNode, depth int)
	walk = func(n *api.TreeNode, depth int) {
		expanded := n.IsDir() && exp.IsExpanded(n.Path)
		rows = append(rows, Row{
			Node:     n,
			Depth:    depth,
			Expanded: expanded,
			Selected: n.Path == selectedPath,
		})
		if expanded {
			for _, c := range n.Children {
				walk(c, depth+1)
			}
		}
	}
	walk(t.Root, 0)
	return rows
}

// FindByPath returns the node with the given path, or nil.
func (t *Tree) FindByPath(path string) *api.TreeNode {
	if t == nil || t.Root == nil {
		return nil
	}
	var found *api.TreeNode
	var walk func(n *api.TreeNode)
	walk = func(n *api.TreeNode) {
		if found != nil {
			return
		}
		if n.Path == path {
			found = n
			return
		}
		// Paths nest lexically, so subtrees that cannot contain the
		// target are skipped.
		if n.IsDir() && (n == t.Root || expansion.IsAncestorOf(n.Path, path)) {
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	walk(t.Root)
	return found
}

// RelPath strips the corpus root prefix from an absolute node path,
// yielding the relative path the document endpoints key on.
func RelPath(root, full string) string {
	rel := strings.TrimPrefix(full, strings.TrimRight(root, "/"))
	return strings.TrimPrefix(rel, "/")
}

// Icon returns the file-type glyph for a tree entry or document name,
// looked up by lower-cased extension.
func Icon(name string) string {
	ext := strings.ToLower(name)
	if i := strings.LastIndexByte(ext, '.'); i >= 0 {
		ext = ext[i+1:]
	}
	switch ext {
	case "pdf":
		return "P"
	case "doc", "docx":
		return "W"
	case "xls", "xlsx":
		return "X"
	case "txt", "rtf":
		return "T"
	default:
		return "·"
	}
}
