package catalog

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"
	"sync"
	"time"

	"github.com/qyinm/folio/types"
)

const userAgent = "folio/1.0 (+https://github.com/qyinm/folio)"

// Fetcher implements types.ProjectSource over HTTP with an in-memory cache.
// YAML bodies are parsed as catalogs; HTML bodies as portfolio pages.
type Fetcher struct {
	url    string
	client *http.Client
	cache  map[string]cachedResult
	mu     sync.Mutex
}

type cachedResult struct {
	projects  []types.Project
	timestamp time.Time
}

// Compile-time interface check
var _ types.ProjectSource = (*Fetcher)(nil)

// NewFetcher creates a Fetcher for url with a configured HTTP client and empty cache.
func NewFetcher(url string) *Fetcher {
	return &Fetcher{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: make(map[string]cachedResult),
	}
}

// URL returns the address the fetcher reads from.
func (f *Fetcher) URL() string { return f.url }

// Projects fetches and parses the remote catalog, serving repeats from cache.
func (f *Fetcher) Projects() ([]types.Project, error) {
	f.mu.Lock()
	if cached, ok := f.cache[f.url]; ok {
		f.mu.Unlock()
		return cached.projects, nil
	}
	f.mu.Unlock()

	req, err := http.NewRequest(http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/yaml, text/yaml, text/html;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Read body for error context
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	projects, err := decodeBody(resp.Header.Get("Content-Type"), body)
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	f.mu.Lock()
	f.cache[f.url] = cachedResult{projects: projects, timestamp: time.Now()}
	f.mu.Unlock()
	return projects, nil
}

func decodeBody(contentType string, body []byte) ([]types.Project, error) {
	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType == "text/html" {
		projects, err := ParseGallery(bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		c, err := New(projects)
		if err != nil {
			return nil, err
		}
		return c.Items(), nil
	}

	c, err := Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return c.Items(), nil
}

// ClearCache clears the in-memory cache.
func (f *Fetcher) ClearCache() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache = make(map[string]cachedResult)
}
