// Package analyzer implements the individual website audit modules.
//
// Architecture overview:
//
//   - Each concern lives in its own analyzer type: DNSAnalyzer (record
//     lookups plus resolver benchmarking), WhoisAnalyzer (registration data,
//     cached per domain), SSLAnalyzer (certificate and handshake grading),
//     PerformanceAnalyzer (timing, size, cache policy, speed scores),
//     SEOAnalyzer (on-page scraping and category scoring) and
//     RankingAnalyzer (domain-seeded synthetic metrics).
//   - Analyzers never panic on bad input: failures land in the result's
//     Error field so a multi-module audit always produces a full report.
//   - ParseTarget normalizes user input once; everything downstream works
//     with the resulting TargetInfo instead of re-parsing URLs.
//   - Page is the single fetched document shared by the HTML-based
//     analyzers; Fetcher retrieves it over HTTP and Renderer through
//     headless Chrome when JS rendering is requested.
//
// The auditor package composes these analyzers into complete audit runs.
package analyzer
