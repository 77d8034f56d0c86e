package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netssv/webaudit/internal/auditor"
)

var reportFormat string
var reportOutputPath string
var reportDomain string
var reportFile string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a report from previously saved audit results",
	Long: `Report loads the audit_*.json files from the results directory and renders
them in the requested format. Use --domain to restrict the report to one site.`,
	RunE: runReportCommand,
}

func runReportCommand(cmd *cobra.Command, args []string) error {
	if !validFormat(reportFormat) {
		return &UnknownFormatError{Format: reportFormat}
	}

	var results []*auditor.Result
	var sources []string
	var err error
	if reportFile != "" {
		results, err = loadResultFile(reportFile)
		sources = []string{reportFile}
	} else {
		results, sources, err = loadSavedResults(resultsDir, reportDomain)
	}
	if err != nil {
		return err
	}
	if len(results) == 0 {
		if reportDomain != "" {
			return fmt.Errorf("no saved results for domain %s in %s", reportDomain, resultsDir)
		}
		return fmt.Errorf("no saved results in %s (run an audit first)", resultsDir)
	}

	logger.Debugf("loaded %d results from %d files", len(results), len(sources))
	return emitResults(results, reportFormat, reportOutputPath)
}

// loadSavedResults reads every audit_*.json under dir, newest first. Files
// that fail to decode are skipped with a warning rather than aborting the
// whole report.
func loadSavedResults(dir, domain string) ([]*auditor.Result, []string, error) {
	pattern := filepath.Join(dir, "audit_*.json")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(matches)))

	var results []*auditor.Result
	var sources []string
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warnw("skipping unreadable result file", "path", path, "error", err)
			continue
		}
		var result auditor.Result
		if err := json.Unmarshal(data, &result); err != nil {
			logger.Warnw("skipping malformed result file", "path", path, "error", err)
			continue
		}
		if domain != "" && !strings.EqualFold(result.Domain, domain) {
			continue
		}
		results = append(results, &result)
		sources = append(sources, path)
	}
	return results, sources, nil
}

// loadResultFile reads one saved result file, accepting both the single-result
// form written by audit --save and the list form written by --format json.
func loadResultFile(path string) ([]*auditor.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var list []*auditor.Result
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var single auditor.Result
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return []*auditor.Result{&single}, nil
}

func init() {
	flags := reportCmd.Flags()
	flags.StringVarP(&reportFormat, "format", "f", "markdown", "report format (text, json, csv, markdown, pdf)")
	flags.StringVarP(&reportOutputPath, "output", "O", "", "write the report to a file instead of stdout")
	flags.StringVarP(&reportDomain, "domain", "d", "", "only include results for this domain")
	flags.StringVar(&reportFile, "file", "", "render a specific saved results file instead of scanning the results directory")
}
