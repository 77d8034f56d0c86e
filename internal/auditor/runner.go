package auditor

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ProgressFunc is invoked after each target completes.
type ProgressFunc func(target string, result *Result, duration float64)

// Runner audits multiple targets through a bounded worker pool with a global
// rate limit.
type Runner struct {
	Concurrency int           // Maximum number of concurrent audits
	RateLimit   int           // Audits started per second (global)
	Timeout     time.Duration // Timeout for each audit
}

// Run audits every target and returns results in completion order.
func (r *Runner) Run(ctx context.Context, targets []string, auditor *Auditor, modules Modules, progressFn ProgressFunc) []*Result {
	limiter := rate.NewLimiter(rate.Limit(r.RateLimit), r.RateLimit)

	sem := make(chan struct{}, r.Concurrency)
	var wg sync.WaitGroup
	mu := sync.Mutex{}
	results := make([]*Result, 0, len(targets))

	for _, target := range targets {
		wg.Add(1)
		go func(t string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			_ = limiter.Wait(ctx)

			start := time.Now()

			auditCtx, cancel := context.WithTimeout(ctx, r.Timeout)
			defer cancel()

			result := auditor.Audit(auditCtx, t, modules)

			duration := time.Since(start).Seconds()

			if progressFn != nil {
				progressFn(t, result, duration)
			}

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		}(target)
	}

	wg.Wait()
	return results
}
