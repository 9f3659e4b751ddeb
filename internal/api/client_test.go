package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, nil)
}

func TestFileTree(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/file-tree" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "corpus", "path": "/corpus", "type": "folder",
			"children": [
				{"name": "a.txt", "path": "/corpus/a.txt", "type": "file",
				 "file_info": {"id": "1", "name": "a.txt", "relative_path": "a.txt"}}
			]
		}`))
	}))

	root, err := c.FileTree(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !root.IsDir() || root.Name != "corpus" {
		t.Errorf("root = %+v, want folder corpus", root)
	}
	if len(root.Children) != 1 || root.Children[0].FileInfo.ID != "1" {
		t.Errorf("children not decoded: %+v", root.Children)
	}
}

func TestSearchSendsQueryAndLimit(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/search" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.Query != "budget" || req.Limit != 20 {
			t.Errorf("request body = %+v, want query budget limit 20", req)
		}
		json.NewEncoder(w).Encode(SearchResponse{
			Results: []SearchResult{
				{Document: Document{ID: "7", Name: "budget.xlsx"}, RelevanceScore: 0.9, Snippet: "the budget"},
			},
			Total: 1, Query: "budget",
		})
	}))

	results, err := c.Search(context.Background(), "budget", 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Document.ID != "7" {
		t.Errorf("results = %+v", results)
	}
}

func TestDocumentByPath(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/api/documents/path/finance/q3%20report.pdf" {
			t.Errorf("path segments should be escaped individually, got %s", r.URL.EscapedPath())
		}
		json.NewEncoder(w).Encode(Document{ID: "3", RelativePath: "finance/q3 report.pdf"})
	}))

	doc, err := c.DocumentByPath(context.Background(), "finance/q3 report.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if doc.ID != "3" {
		t.Errorf("doc.ID = %s, want 3", doc.ID)
	}
}

func TestDocumentNotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "Document not found"}`, http.StatusNotFound)
	}))

	if _, err := c.DocumentByPath(context.Background(), "missing.txt"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if _, err := c.DocumentByID(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestServerError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := c.Stats(context.Background())
	if err == nil {
		t.Fatal("5xx should surface as an error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("5xx must not be reported as not-found")
	}
}

func TestScan(t *testing.T) {
	var hit bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		if r.URL.Path != "/api/scan" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(ScanResponse{Message: "Scan started in background"})
	}))

	if err := c.Scan(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Error("scan endpoint was never called")
	}
}

func TestDownloadURL(t *testing.T) {
	c := New("http://localhost:8000/", 0, nil)
	got := c.DownloadURL("abc123")
	want := "http://localhost:8000/api/documents/abc123/download"
	if got != want {
		t.Errorf("DownloadURL = %q, want %q", got, want)
	}
}
