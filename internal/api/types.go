// Package api holds the types and HTTP client for the document indexer
// backend. The wire format mirrors the backend's models exactly; the
// client never reinterprets or re-sorts what the server returns.
package api

import "time"

// NodeType discriminates tree entries.
type NodeType string

const (
	NodeFolder NodeType = "folder"
	NodeFile   NodeType = "file"
)

// Document is one indexed file. Identity is ID; Path and RelativePath are
// addressing fields used to correlate tree nodes and search results.
type Document struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	RelativePath string    `json:"relative_path"`
	FileType     string    `json:"file_type"`
	Size         int64     `json:"size"`
	Content      string    `json:"content,omitempty"`
	Thumbnail    string    `json:"thumbnail,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	IndexedAt    time.Time `json:"indexed_at"`
}

// TreeNode is one entry in the corpus tree. A child's Path is always
// parent.Path + "/" + child.Name; file nodes never have children.
type TreeNode struct {
	Name     string      `json:"name"`
	Path     string      `json:"path"`
	Type     NodeType    `json:"type"`
	Children []*TreeNode `json:"children,omitempty"`
	FileInfo *Document   `json:"file_info,omitempty"`
}

// IsDir reports whether the node is a folder.
func (n *TreeNode) IsDir() bool { return n.Type == NodeFolder }

// SearchResult pairs a matched document with its rank score and snippet.
// The backend's result order is authoritative.
type SearchResult struct {
	Document       Document `json:"document"`
	RelevanceScore float64  `json:"relevance_score"`
	Snippet        string   `json:"snippet"`
}

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// SearchResponse is the body returned by POST /api/search.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
	Query   string         `json:"query"`
}

// Stats are aggregate index statistics.
type Stats struct {
	TotalDocuments int       `json:"total_documents"`
	LastScan       time.Time `json:"last_scan"`
	DocumentRoot   string    `json:"document_root"`
}

// ScanResponse acknowledges a scan trigger. The scan itself runs in the
// background on the server; the message is informational only.
type ScanResponse struct {
	Message string `json:"message"`
}
