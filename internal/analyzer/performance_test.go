package analyzer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestPerformanceAnalyze(t *testing.T) {
	body := []byte("<html><body>hello</body></html>")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua == "" {
			t.Error("expected a User-Agent header on the probe request")
		}
		w.Header().Set("Server", "nginx/1.24")
		w.Header().Set("X-Powered-By", "PHP/8.2")
		w.Header().Set("Cache-Control", "max-age=3600")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}))
	defer server.Close()

	p := NewPerformanceAnalyzer()
	result := p.Analyze(context.Background(), server.URL)

	if result.Error != "" {
		t.Fatalf("unexpected error: %s", result.Error)
	}
	if result.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", result.StatusCode)
	}
	if result.PageSize != int64(len(body)) {
		t.Errorf("PageSize = %d, want %d", result.PageSize, len(body))
	}
	if result.Server != "nginx/1.24" {
		t.Errorf("Server = %q", result.Server)
	}
	if result.PoweredBy != "PHP/8.2" {
		t.Errorf("PoweredBy = %q", result.PoweredBy)
	}
	if result.ResponseTimeMs < 0 {
		t.Errorf("ResponseTimeMs = %f, want >= 0", result.ResponseTimeMs)
	}
	if result.CacheHeaders == nil || result.CacheHeaders.CacheControl != "max-age=3600" {
		t.Errorf("cache policy not captured: %+v", result.CacheHeaders)
	}
}

func TestPerformanceAnalyzeCountsRedirects(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.Redirect(w, r, server.URL+"/final", http.StatusMovedPermanently)
			return
		}
		w.Write([]byte("done"))
	}))
	defer server.Close()

	p := NewPerformanceAnalyzer()
	result := p.Analyze(context.Background(), server.URL)

	if result.Error != "" {
		t.Fatalf("unexpected error: %s", result.Error)
	}
	if result.RedirectCount != 1 {
		t.Errorf("RedirectCount = %d, want 1", result.RedirectCount)
	}
	if result.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200 after following the redirect", result.StatusCode)
	}
}

func TestPerformanceAnalyzeUnreachable(t *testing.T) {
	p := &PerformanceAnalyzer{Timeout: time.Second}
	result := p.Analyze(context.Background(), "http://127.0.0.1:1/")

	if result.Error == "" {
		t.Fatal("expected an error for an unreachable host")
	}
}

func TestPageSpeedScoreBuckets(t *testing.T) {
	tests := []struct {
		ms          float64
		wantMobile  int
		wantDesktop int
	}{
		{500, 85, 90},
		{1500, 70, 80},
		{3000, 50, 60},
	}
	for _, tt := range tests {
		got := pageSpeedScore(tt.ms)
		if got.Mobile != tt.wantMobile || got.Desktop != tt.wantDesktop {
			t.Errorf("pageSpeedScore(%.0f) = %+v, want {%d %d}", tt.ms, got, tt.wantMobile, tt.wantDesktop)
		}
	}
}

func TestAnalyzeCachePolicy(t *testing.T) {
	h := http.Header{}
	policy := AnalyzeCachePolicy(h)
	if policy == nil {
		t.Fatal("expected a policy even for empty headers")
	}
	if len(policy.Issues) == 0 {
		t.Error("expected issues for a response with no caching headers")
	}

	h.Set("Cache-Control", "public, max-age=86400")
	h.Set("ETag", `"abc123"`)
	policy = AnalyzeCachePolicy(h)
	if policy.CacheControl == "" || policy.ETag == "" {
		t.Errorf("cache headers not captured: %+v", policy)
	}
}
