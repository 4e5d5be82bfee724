package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"vocabcards/internal/domain"
)

// maxPayload bounds a fetched catalog body
const maxPayload = 16 << 20

// Source fetches a catalog once per call
type Source interface {
	Fetch(ctx context.Context) (*domain.Catalog, error)
}

// FileSource reads the catalog from a local file
type FileSource struct {
	Path string
}

// NewFileSource creates a file-backed source
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Fetch reads and parses the file
func (s *FileSource) Fetch(ctx context.Context) (*domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, dataError("read", err)
	}
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, dataError("read", err)
	}
	return ParseFormat(raw, FormatFor(s.Path))
}

func (s *FileSource) String() string {
	return "file " + s.Path
}

// HTTPSource fetches the catalog with a single GET. It does not retry; bound
// it with a context deadline.
type HTTPSource struct {
	URL    string
	Client *http.Client
	// MaxBytes bounds the body; zero uses maxPayload
	MaxBytes int64
}

// NewHTTPSource creates an HTTP-backed source using http.DefaultClient when
// client is nil
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{URL: url, Client: client}
}

// Fetch downloads and parses the catalog
func (s *HTTPSource) Fetch(ctx context.Context) (*domain.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, dataError("fetch", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, dataError("fetch", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, dataError("fetch", fmt.Errorf("unexpected status %s", resp.Status))
	}

	limit := s.MaxBytes
	if limit <= 0 {
		limit = maxPayload
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, dataError("fetch", err)
	}
	if int64(len(raw)) > limit {
		return nil, dataError("fetch", fmt.Errorf("payload too large: over %d bytes", limit))
	}
	return ParseFormat(raw, FormatFor(req.URL.Path))
}

func (s *HTTPSource) String() string {
	return "url " + s.URL
}

// NewSource prefers url when set and falls back to the file at path
func NewSource(url, path string, client *http.Client) Source {
	if url != "" {
		return NewHTTPSource(url, client)
	}
	return NewFileSource(path)
}
