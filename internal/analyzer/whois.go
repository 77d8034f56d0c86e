package analyzer

import (
	"sync"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
)

// WhoisAnalyzer performs registry lookups with a per-process cache, since
// WHOIS servers are slow and aggressively rate limited.
type WhoisAnalyzer struct {
	Timeout time.Duration

	// lookup is swappable for tests.
	lookup func(domain string) (string, error)

	mu    sync.Mutex
	cache map[string]*WhoisResult
}

// NewWhoisAnalyzer returns a WhoisAnalyzer backed by the public WHOIS network.
func NewWhoisAnalyzer() *WhoisAnalyzer {
	timeout := 10 * time.Second
	client := whois.NewClient()
	client.SetTimeout(timeout)
	return &WhoisAnalyzer{
		Timeout: timeout,
		lookup: func(domain string) (string, error) {
			return client.Whois(domain)
		},
		cache: make(map[string]*WhoisResult),
	}
}

// Lookup fetches and parses WHOIS data for domain. Results, including
// failures, are cached for the life of the process.
func (w *WhoisAnalyzer) Lookup(domain string) *WhoisResult {
	w.mu.Lock()
	if cached, ok := w.cache[domain]; ok {
		w.mu.Unlock()
		return cached
	}
	w.mu.Unlock()

	result := w.fetch(domain)

	w.mu.Lock()
	if w.cache == nil {
		w.cache = make(map[string]*WhoisResult)
	}
	w.cache[domain] = result
	w.mu.Unlock()

	return result
}

func (w *WhoisAnalyzer) fetch(domain string) *WhoisResult {
	raw, err := w.lookup(domain)
	if err != nil {
		return &WhoisResult{Error: err.Error()}
	}

	parsed, err := whoisparser.Parse(raw)
	if err != nil {
		return &WhoisResult{Error: err.Error()}
	}

	result := &WhoisResult{}
	if parsed.Registrar != nil {
		result.Registrar = parsed.Registrar.Name
	}
	if parsed.Domain != nil {
		result.CreatedDate = parsed.Domain.CreatedDate
		result.UpdatedDate = parsed.Domain.UpdatedDate
		result.ExpirationDate = parsed.Domain.ExpirationDate
		result.NameServers = parsed.Domain.NameServers
		result.Statuses = parsed.Domain.Status
	}
	return result
}
