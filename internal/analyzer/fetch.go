package analyzer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	maxBodyBytes = 10 << 20 // 10 MiB cap on fetched documents
	maxRedirects = 10
)

// Page is a fetched HTML document plus the transport facts the analyzers
// need. One Page is fetched per audit and shared across analyzers.
type Page struct {
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
	FetchTime  time.Duration
	Redirects  int
	Rendered   bool
}

// Fetcher retrieves pages over plain HTTP. JS-heavy sites go through
// Renderer instead.
type Fetcher struct {
	Client    *http.Client
	UserAgent string
}

func NewFetcher(timeout time.Duration) *Fetcher {
	f := &Fetcher{
		UserAgent: defaultUserAgent,
	}
	f.Client = &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}
	return f
}

// Fetch downloads pageURL and returns the document. The body is capped at
// maxBodyBytes; larger documents are truncated, not failed.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", f.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	start := time.Now()
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", pageURL, err)
	}

	finalURL := pageURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &Page{
		URL:        finalURL,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		FetchTime:  time.Since(start),
	}, nil
}
