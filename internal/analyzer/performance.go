package analyzer

import (
	"context"
	"io"
	"net/http"
	"time"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// PerformanceAnalyzer measures one GET request end to end.
type PerformanceAnalyzer struct {
	Timeout   time.Duration
	UserAgent string
	Client    *http.Client
}

// NewPerformanceAnalyzer returns a PerformanceAnalyzer with a generous
// timeout; slow pages are a finding, not a failure.
func NewPerformanceAnalyzer() *PerformanceAnalyzer {
	return &PerformanceAnalyzer{
		Timeout:   30 * time.Second,
		UserAgent: defaultUserAgent,
	}
}

// Analyze issues a single GET to url, following redirects, and reports
// latency, size, and response header observations.
func (p *PerformanceAnalyzer) Analyze(ctx context.Context, url string) *PerformanceResult {
	result := &PerformanceResult{}

	redirects := 0
	client := p.Client
	if client == nil {
		client = &http.Client{Timeout: p.Timeout}
	}
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		redirects = len(via)
		if len(via) >= 10 {
			return http.ErrUseLastResponse
		}
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	req.Header.Set("User-Agent", p.userAgent())

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer resp.Body.Close()

	size, err := io.Copy(io.Discard, resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.ResponseTimeMs = float64(elapsed) / float64(time.Millisecond)
	result.StatusCode = resp.StatusCode
	result.PageSize = size
	result.RedirectCount = redirects
	result.Server = resp.Header.Get("Server")
	result.PoweredBy = resp.Header.Get("X-Powered-By")
	result.ContentType = resp.Header.Get("Content-Type")
	result.Compression = resp.Header.Get("Content-Encoding")
	if result.Compression == "" {
		result.Compression = "none"
	}
	result.CacheHeaders = AnalyzeCachePolicy(resp.Header)
	result.PageSpeed = pageSpeedScore(result.ResponseTimeMs)

	return result
}

func (p *PerformanceAnalyzer) userAgent() string {
	if p.UserAgent != "" {
		return p.UserAgent
	}
	return defaultUserAgent
}

// AnalyzeCachePolicy extracts cache headers and flags missing directives.
func AnalyzeCachePolicy(h http.Header) *CachePolicy {
	if h == nil {
		return nil
	}

	policy := &CachePolicy{
		CacheControl: h.Get("Cache-Control"),
		Expires:      h.Get("Expires"),
		ETag:         h.Get("ETag"),
		LastModified: h.Get("Last-Modified"),
	}

	if policy.CacheControl == "" && policy.Expires == "" {
		policy.Issues = append(policy.Issues, "No caching headers (Cache-Control/Expires) present")
	}
	if policy.ETag == "" && policy.LastModified == "" {
		policy.Issues = append(policy.Issues, "No validators (ETag/Last-Modified) present")
	}

	return policy
}

// pageSpeedScore buckets wall-clock latency into a coarse mobile/desktop
// score pair, standing in for a real PageSpeed Insights call.
func pageSpeedScore(responseTimeMs float64) PageSpeedScore {
	switch {
	case responseTimeMs <= 0:
		return PageSpeedScore{}
	case responseTimeMs < 1000:
		return PageSpeedScore{Mobile: 85, Desktop: 90}
	case responseTimeMs < 2000:
		return PageSpeedScore{Mobile: 70, Desktop: 80}
	default:
		return PageSpeedScore{Mobile: 50, Desktop: 60}
	}
}
