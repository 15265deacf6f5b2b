package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// DocumentSource fetches the raw bytes of a question document.
type DocumentSource interface {
	Fetch(ctx context.Context) ([]byte, error)
	Name() string
}

// FileSource reads a question document from the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string { return s.path }

// Fetch reads the whole file.
func (s *FileSource) Fetch(_ context.Context) ([]byte, error) {
	return os.ReadFile(s.path)
}

// HTTPSource downloads a question document, bypassing any caches.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates an HTTPSource. A nil client means http.DefaultClient.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{url: url, client: client}
}

func (s *HTTPSource) Name() string { return s.url }

// Fetch performs a single no-cache GET request.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("could not load %s (HTTP %d)", s.url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
