package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned when the backend reports that a document does
// not exist. Callers use it to tell "not indexed" apart from transport
// failure.
var ErrNotFound = errors.New("document not found")

const defaultTimeout = 15 * time.Second

// Client talks to the document indexer API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// New creates a client for the given base URL (scheme + host, no /api
// suffix). A zero timeout falls back to the default.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// FileTree fetches the full corpus tree. The backend returns the whole
// tree each time; there is no incremental form.
func (c *Client) FileTree(ctx context.Context) (*TreeNode, error) {
	var root TreeNode
	if err := c.getJSON(ctx, "/api/file-tree", &root); err != nil {
		return nil, fmt.Errorf("load file tree: %w", err)
	}
	return &root, nil
}

// Stats fetches aggregate index statistics.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	if err := c.getJSON(ctx, "/api/stats", &s); err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	return &s, nil
}

// Scan triggers a backend rescan. The response acknowledges that the scan
// started, not that it finished.
func (c *Client) Scan(ctx context.Context) error {
	var ack ScanResponse
	if err := c.postJSON(ctx, "/api/scan", nil, &ack); err != nil {
		return fmt.Errorf("trigger scan: %w", err)
	}
	c.logger.Debug("scan triggered", "message", ack.Message)
	return nil
}

// Search runs a full-text query. Results arrive in rank order and are
// returned untouched.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	req := SearchRequest{Query: query, Limit: limit}
	var resp SearchResponse
	if err := c.postJSON(ctx, "/api/search", &req, &resp); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	return resp.Results, nil
}

// DocumentByPath resolves a document by its path relative to the corpus
// root. Returns ErrNotFound when the path is not indexed.
func (c *Client) DocumentByPath(ctx context.Context, relPath string) (*Document, error) {
	// The path segments are escaped individually so the separators survive.
	escaped := escapePath(relPath)
	var doc Document
	if err := c.getJSON(ctx, "/api/documents/path/"+escaped, &doc); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("resolve document %q: %w", relPath, err)
	}
	return &doc, nil
}

// DocumentByID fetches a single document by identity.
func (c *Client) DocumentByID(ctx context.Context, id string) (*Document, error) {
	var doc Document
	if err := c.getJSON(ctx, "/api/documents/"+url.PathEscape(id), &doc); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch document %s: %w", id, err)
	}
	return &doc, nil
}

// DownloadURL returns the browser-facing download URL for a document.
// The download itself is handled by the platform opener, outside this
// client.
func (c *Client) DownloadURL(id string) string {
	return c.baseURL + "/api/documents/" + url.PathEscape(id) + "/download"
}

func escapePath(relPath string) string {
	segs := strings.Split(relPath, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("backend returned %s", resp.Status)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
