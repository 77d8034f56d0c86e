package auditor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"
	"time"
)

func TestAuditInvalidTargetFailsFast(t *testing.T) {
	// A failing transport would panic the test if any network call happened.
	aud := New(nil)
	aud.Fetcher.Client.Transport = panicTransport{t}
	aud.Perf.Client = &http.Client{Transport: panicTransport{t}}

	result := aud.Audit(context.Background(), "http://", AllModules())

	if result.Error == "" {
		t.Fatal("expected a validation error")
	}
	if result.DNS != nil || result.SSL != nil || result.Perf != nil || result.SEO != nil || result.Ranking != nil {
		t.Errorf("invalid target must not produce module results: %+v", result)
	}
}

type panicTransport struct{ t *testing.T }

func (p panicTransport) RoundTrip(*http.Request) (*http.Response, error) {
	p.t.Fatal("network call made for an invalid target")
	return nil, nil
}

func TestAuditModuleSelection(t *testing.T) {
	aud := New(nil)

	result := aud.Audit(context.Background(), "https://example.com", Modules{Ranking: true})

	if result.Error != "" {
		t.Fatalf("unexpected error: %s", result.Error)
	}
	if result.Ranking == nil {
		t.Fatal("ranking module was selected but produced nothing")
	}
	if result.DNS != nil || result.SSL != nil || result.Perf != nil || result.SEO != nil {
		t.Error("unselected modules should stay nil")
	}
	if result.Domain != "example.com" {
		t.Errorf("Domain = %q", result.Domain)
	}
}

func TestAuditSEOAgainstLocalServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<!DOCTYPE html><html lang="en"><head><title>Local test page for audits</title></head><body><h1>Hello</h1><p>some words here</p></body></html>`))
	}))
	defer server.Close()

	aud := New(nil)
	result := aud.Audit(context.Background(), server.URL, Modules{SEO: true})

	if result.Error != "" {
		t.Fatalf("unexpected error: %s", result.Error)
	}
	if result.SEO == nil {
		t.Fatal("expected an SEO result")
	}
	if result.SEO.Error != "" {
		t.Fatalf("SEO module error: %s", result.SEO.Error)
	}
	if result.SEO.Title != "Local test page for audits" {
		t.Errorf("Title = %q", result.SEO.Title)
	}
	if result.DurationMs < 0 {
		t.Errorf("DurationMs = %f", result.DurationMs)
	}
}

func TestAuditRankingDeterministicAcrossRuns(t *testing.T) {
	aud := New(nil)

	first := aud.Audit(context.Background(), "example.com", Modules{Ranking: true})
	second := aud.Audit(context.Background(), "www.example.com", Modules{Ranking: true})

	if !reflect.DeepEqual(first.Ranking, second.Ranking) {
		t.Error("www and bare forms of a domain should rank identically")
	}
}

func TestParseModules(t *testing.T) {
	tests := []struct {
		spec    string
		want    Modules
		wantErr bool
	}{
		{"all", AllModules(), false},
		{"", AllModules(), false},
		{"dns,ssl", Modules{DNS: true, SSL: true}, false},
		{" seo , ranking ", Modules{SEO: true, Ranking: true}, false},
		{"perf", Modules{Performance: true}, false},
		{"bogus", Modules{}, true},
	}
	for _, tt := range tests {
		got, err := ParseModules(tt.spec)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseModules(%q) expected error", tt.spec)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseModules(%q) unexpected error: %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseModules(%q) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}
}

func TestModulesNames(t *testing.T) {
	names := Modules{DNS: true, SEO: true}.Names()
	want := []string{"dns", "seo"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Names() = %v, want %v", names, want)
	}
}

func TestRunnerAuditsAllTargets(t *testing.T) {
	aud := New(nil)
	runner := &Runner{Concurrency: 2, RateLimit: 10, Timeout: 30 * time.Second}

	targets := []string{"one.example", "two.example", "three.example"}
	var mu chanCounter
	results := runner.Run(context.Background(), targets, aud, Modules{Ranking: true}, func(target string, result *Result, duration float64) {
		mu.inc()
	})

	if len(results) != len(targets) {
		t.Fatalf("got %d results, want %d", len(results), len(targets))
	}
	if mu.value() != len(targets) {
		t.Errorf("progress callback fired %d times, want %d", mu.value(), len(targets))
	}
	seen := make(map[string]bool)
	for _, result := range results {
		seen[result.Domain] = true
		if result.Ranking == nil {
			t.Errorf("missing ranking for %s", result.URL)
		}
	}
	if len(seen) != len(targets) {
		t.Errorf("expected every target audited once, got %v", seen)
	}
}

type chanCounter struct {
	mu sync.Mutex
	n  int
}

func (c *chanCounter) inc() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

func (c *chanCounter) value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

func TestResultJSONKeysStable(t *testing.T) {
	aud := New(nil)
	result := aud.Audit(context.Background(), "example.com", Modules{Ranking: true})
	if result.URL != "https://example.com" {
		t.Errorf("URL = %q, want normalized form", result.URL)
	}
	if len(result.ModulesRun) != 1 || result.ModulesRun[0] != "ranking" {
		t.Errorf("ModulesRun = %v", result.ModulesRun)
	}
}
