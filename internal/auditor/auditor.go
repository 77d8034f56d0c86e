package auditor

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/netssv/webaudit/internal/analyzer"
)

// Modules selects which audit modules run for a target.
type Modules struct {
	DNS         bool
	SSL         bool
	Performance bool
	SEO         bool
	Ranking     bool
}

// AllModules enables everything.
func AllModules() Modules {
	return Modules{DNS: true, SSL: true, Performance: true, SEO: true, Ranking: true}
}

// ParseModules parses a comma-separated module list ("dns,ssl,seo").
// "all" or an empty string selects every module.
func ParseModules(spec string) (Modules, error) {
	spec = strings.TrimSpace(strings.ToLower(spec))
	if spec == "" || spec == "all" {
		return AllModules(), nil
	}
	var m Modules
	for _, name := range strings.Split(spec, ",") {
		switch strings.TrimSpace(name) {
		case "dns":
			m.DNS = true
		case "ssl":
			m.SSL = true
		case "performance", "perf":
			m.Performance = true
		case "seo":
			m.SEO = true
		case "ranking":
			m.Ranking = true
		case "":
		default:
			return Modules{}, fmt.Errorf("unknown module %q (valid: dns, ssl, performance, seo, ranking)", strings.TrimSpace(name))
		}
	}
	return m, nil
}

// Names lists the enabled modules in a stable order.
func (m Modules) Names() []string {
	var names []string
	if m.DNS {
		names = append(names, "dns")
	}
	if m.SSL {
		names = append(names, "ssl")
	}
	if m.Performance {
		names = append(names, "performance")
	}
	if m.SEO {
		names = append(names, "seo")
	}
	if m.Ranking {
		names = append(names, "ranking")
	}
	sort.Strings(names)
	return names
}

// Result is one complete audit of one target.
type Result struct {
	URL        string                      `json:"url"`
	Domain     string                      `json:"domain"`
	Timestamp  time.Time                   `json:"timestamp"`
	ModulesRun []string                    `json:"modules_run"`
	DurationMs float64                     `json:"duration_ms"`
	DNS        *analyzer.DNSResult         `json:"dns_info,omitempty"`
	Whois      *analyzer.WhoisResult       `json:"whois_info,omitempty"`
	SSL        *analyzer.SSLResult         `json:"ssl_info,omitempty"`
	Perf       *analyzer.PerformanceResult `json:"performance,omitempty"`
	SEO        *analyzer.SEOResult         `json:"seo_analysis,omitempty"`
	Ranking    *analyzer.RankingResult     `json:"ranking_metrics,omitempty"`
	Error      string                      `json:"error,omitempty"`
}

// Auditor composes the analyzers into full audits.
type Auditor struct {
	DNS      *analyzer.DNSAnalyzer
	Whois    *analyzer.WhoisAnalyzer
	SSL      *analyzer.SSLAnalyzer
	Perf     *analyzer.PerformanceAnalyzer
	SEO      *analyzer.SEOAnalyzer
	Ranking  *analyzer.RankingAnalyzer
	Fetcher  *analyzer.Fetcher
	Renderer *analyzer.Renderer

	// RenderJS routes the page fetch through headless Chrome.
	RenderJS bool

	logger *zap.SugaredLogger
}

// New builds an Auditor with default analyzer settings.
func New(logger *zap.SugaredLogger) *Auditor {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Auditor{
		DNS:      analyzer.NewDNSAnalyzer(),
		Whois:    analyzer.NewWhoisAnalyzer(),
		SSL:      analyzer.NewSSLAnalyzer(),
		Perf:     analyzer.NewPerformanceAnalyzer(),
		SEO:      analyzer.NewSEOAnalyzer(),
		Ranking:  analyzer.NewRankingAnalyzer(),
		Fetcher:  analyzer.NewFetcher(30 * time.Second),
		Renderer: analyzer.NewRenderer(),
		logger:   logger,
	}
}

// Audit runs the selected modules against target. Invalid targets fail fast:
// the returned Result carries the validation error and no network traffic
// happens at all.
func (a *Auditor) Audit(ctx context.Context, target string, modules Modules) (result *Result) {
	start := time.Now()
	result = &Result{
		Timestamp:  start.UTC(),
		ModulesRun: modules.Names(),
	}
	defer func() {
		if r := recover(); r != nil {
			result.Error = fmt.Sprintf("audit panic: %v", r)
			a.logger.Errorw("audit panicked", "target", target, "panic", r)
		}
	}()

	info, err := analyzer.ParseTarget(target)
	if err != nil {
		result.URL = target
		result.Error = err.Error()
		return result
	}
	result.URL = info.FullURL
	result.Domain = info.Domain()

	a.logger.Infow("starting audit", "url", result.URL, "modules", result.ModulesRun)

	if modules.DNS {
		result.DNS = a.DNS.Analyze(ctx, result.Domain)
		result.Whois = a.Whois.Lookup(result.Domain)
	}
	if modules.SSL {
		result.SSL = a.SSL.Analyze(ctx, info.Host)
	}
	if modules.Performance {
		result.Perf = a.Perf.Analyze(ctx, info.FullURL)
	}
	if modules.SEO {
		page, fetchErr := a.fetchPage(ctx, info.FullURL)
		if fetchErr != nil {
			result.SEO = &analyzer.SEOResult{URL: info.FullURL, Error: fetchErr.Error()}
			a.logger.Warnw("page fetch failed", "url", info.FullURL, "error", fetchErr)
		} else {
			result.SEO = a.SEO.Analyze(info.FullURL, page)
		}
	}
	if modules.Ranking {
		result.Ranking = a.Ranking.Analyze(result.Domain)
	}

	result.DurationMs = float64(time.Since(start).Milliseconds())
	a.logger.Infow("audit complete", "url", result.URL, "duration_ms", result.DurationMs)
	return result
}

func (a *Auditor) fetchPage(ctx context.Context, pageURL string) (*analyzer.Page, error) {
	if a.RenderJS {
		page, err := a.Renderer.Render(ctx, pageURL)
		if err == nil {
			return page, nil
		}
		a.logger.Warnw("render failed, falling back to plain fetch", "url", pageURL, "error", err)
	}
	return a.Fetcher.Fetch(ctx, pageURL)
}
