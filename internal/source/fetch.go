package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// Fetcher retrieves the raw payload stored at a descriptor location.
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// HTTPFetcher resolves locations against a page URL and GETs them.
type HTTPFetcher struct {
	base *url.URL
	http *http.Client
}

func NewHTTPFetcher(pageURL string, httpClient *http.Client) (*HTTPFetcher, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("unsupported page url scheme: %q", base.Scheme)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPFetcher{base: base, http: httpClient}, nil
}

// Resolve returns the absolute URL for a location.
func (f *HTTPFetcher) Resolve(location string) (string, error) {
	ref, err := url.Parse(location)
	if err != nil {
		return "", fmt.Errorf("parse location %q: %w", location, err)
	}
	return f.base.ResolveReference(ref).String(), nil
}

func (f *HTTPFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	target, err := f.Resolve(location)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request %s: %v", ErrFetchFailed, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: %s returned status %d: %s", ErrFetchFailed, target, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body of %s: %v", ErrFetchFailed, target, err)
	}
	return body, nil
}

// FSFetcher reads locations from a file system rooted at the page directory.
type FSFetcher struct {
	fsys fs.FS
}

func NewFSFetcher(fsys fs.FS) *FSFetcher {
	return &FSFetcher{fsys: fsys}
}

func (f *FSFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	name := path.Clean(strings.TrimPrefix(location, "./"))
	data, err := fs.ReadFile(f.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s not found", ErrFetchFailed, name)
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrFetchFailed, name, err)
	}
	return data, nil
}
