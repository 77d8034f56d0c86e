package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/netssv/webaudit/internal/auditor"
	"github.com/netssv/webaudit/internal/export"
)

var auditTargetsFile string
var auditOutputPath string

var auditCmd = &cobra.Command{
	Use:   "audit [urls...]",
	Short: "Run a website audit against one or more targets",
	Long: `Audit runs the selected modules (dns, ssl, performance, seo, ranking)
against each target and prints or exports the results. Targets come from the
arguments, from --file, or both.`,
	Example: `  webaudit audit example.com
  webaudit audit https://example.com --modules dns,ssl --format json
  webaudit audit --file targets.txt --format csv --output report.csv`,
	RunE: runAuditCommand,
}

func runAuditCommand(cmd *cobra.Command, args []string) error {
	cfg := cliConfig.Audit

	targets, err := collectTargets(args, auditTargetsFile)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return &NoTargetsError{File: auditTargetsFile}
	}

	modules, err := auditor.ParseModules(cfg.Modules)
	if err != nil {
		return err
	}
	if !validFormat(cfg.Format) {
		return &UnknownFormatError{Format: cfg.Format}
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			fmt.Printf("\n%s Received %s, finalizing partial results...\n", colorWarn("!"), sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	aud := auditor.New(logger)
	aud.RenderJS = cfg.RenderJS

	var progress *progressPrinter
	var progressFn auditor.ProgressFunc
	if cfg.ProgressEnabled && cfg.Format == "text" && len(targets) > 1 {
		progress = newProgressPrinter(len(targets))
		progress.Start()
		progressFn = func(target string, result *auditor.Result, duration float64) {
			progress.Increment(result.Error == "", duration)
		}
	}

	runner := &auditor.Runner{
		Concurrency: cfg.Concurrency,
		RateLimit:   cfg.RateLimit,
		Timeout:     time.Duration(cfg.TimeoutSecs) * time.Second,
	}
	results := runner.Run(ctx, targets, aud, modules, progressFn)

	if progress != nil {
		progress.Stop()
	}

	// stable output order regardless of completion order
	sort.Slice(results, func(i, j int) bool { return results[i].URL < results[j].URL })

	if cfg.SaveResults {
		for _, result := range results {
			if path, err := export.WriteJSON(resultsDir, result); err != nil {
				logger.Warnw("failed to save result", "url", result.URL, "error", err)
			} else {
				logger.Debugf("saved %s", path)
			}
		}
	}

	return emitResults(results, cfg.Format, auditOutputPath)
}

// collectTargets merges CLI arguments with an optional targets file; blank
// lines and #-comments in the file are skipped.
func collectTargets(args []string, file string) ([]string, error) {
	targets := append([]string(nil), args...)

	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("opening targets file: %w", err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			targets = append(targets, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading targets file: %w", err)
		}
	}

	seen := make(map[string]struct{}, len(targets))
	unique := targets[:0]
	for _, t := range targets {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		unique = append(unique, t)
	}
	return unique, nil
}

func validFormat(format string) bool {
	switch format {
	case "text", "json", "csv", "markdown", "pdf":
		return true
	}
	return false
}

// emitResults renders results in the requested format, to stdout or to the
// --output path.
func emitResults(results []*auditor.Result, format, outputPath string) error {
	var data []byte
	var err error

	switch format {
	case "json":
		data, err = export.JSON(results)
	case "csv":
		data, err = export.CSV(results)
	case "markdown":
		var b strings.Builder
		for _, result := range results {
			md, mdErr := export.Markdown(result)
			if mdErr != nil {
				return mdErr
			}
			b.WriteString(md)
			b.WriteString("\n")
		}
		data = []byte(b.String())
	case "pdf":
		data, err = export.PDF(results)
	case "text":
		if outputPath == "" {
			for _, result := range results {
				printResultText(result)
			}
			return nil
		}
		var b strings.Builder
		for _, result := range results {
			b.WriteString(export.Text(result))
			b.WriteString("\n")
		}
		data = []byte(b.String())
	}
	if err != nil {
		return err
	}

	if outputPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	fmt.Printf("%s Wrote %s report to %s\n", colorSuccess("✓"), format, outputPath)
	return nil
}

// printResultText writes the colored text summary for interactive use.
func printResultText(result *auditor.Result) {
	if result.Error != "" {
		fmt.Printf("%s %s: %s\n", colorError("✗"), result.URL, result.Error)
		return
	}

	fmt.Printf("%s %s\n", colorInfo("»"), result.URL)
	fmt.Print(export.Text(result))

	if seo := result.SEO; seo != nil && seo.Error == "" {
		score := seo.SEOScore
		fmt.Printf("SEO score: %s\n", colorForScore(score)(fmt.Sprintf("%d/100", score)))
	}
	if ssl := result.SSL; ssl != nil && ssl.Error == "" && ssl.HasSSL {
		fmt.Printf("SSL grade: %s\n", colorForGrade(ssl.Grade)(ssl.Grade))
	}
	fmt.Println()
}

func init() {
	flags := auditCmd.Flags()
	flags.StringVarP(&cliConfig.Audit.Modules, "modules", "m", "all", "comma-separated modules to run (dns,ssl,performance,seo,ranking)")
	flags.StringVarP(&cliConfig.Audit.Format, "format", "f", "text", "output format (text, json, csv, markdown, pdf)")
	flags.StringVarP(&auditOutputPath, "output", "O", "", "write the report to a file instead of stdout")
	flags.StringVar(&auditTargetsFile, "file", "", "file with one target per line")
	flags.IntVar(&cliConfig.Audit.TimeoutSecs, "timeout", defaultAuditTimeoutSecs, "per-target timeout in seconds")
	flags.IntVarP(&cliConfig.Audit.Concurrency, "concurrency", "c", defaultConcurrency, "maximum concurrent audits")
	flags.IntVarP(&cliConfig.Audit.RateLimit, "rate", "r", defaultRateLimit, "audits started per second")
	flags.BoolVar(&cliConfig.Audit.RenderJS, "render-js", false, "render pages in headless Chrome before scraping")
	flags.BoolVar(&cliConfig.Audit.ProgressEnabled, "progress", true, "show progress while auditing multiple targets")
	flags.BoolVar(&cliConfig.Audit.SaveResults, "save", true, "save each result as JSON under the results directory")
}
