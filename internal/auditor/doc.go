// Package auditor orchestrates the analyzer modules into complete website
// audits.
//
//   - Auditor wires the analyzers together, fetches the page once, and runs
//     whichever Modules the caller selected. A target that fails validation
//     produces a Result with only the error set; no network calls are made.
//   - Runner fans audits out across a worker pool with a global rate limit,
//     mirroring how batch runs are expected to behave against production
//     sites.
//   - Result is the aggregate consumed by the export package and the CLI.
package auditor
