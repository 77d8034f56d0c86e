package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/netssv/webaudit/internal/analyzer"
	"github.com/netssv/webaudit/internal/auditor"
)

func sampleResult() *auditor.Result {
	return &auditor.Result{
		URL:        "https://example.com",
		Domain:     "example.com",
		Timestamp:  time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		ModulesRun: []string{"dns", "ranking", "seo", "ssl"},
		DurationMs: 1234,
		DNS: &analyzer.DNSResult{
			IPAddress: "93.184.216.34",
			ARecords:  []string{"93.184.216.34"},
			NSRecords: []string{"a.iana-servers.net"},
			ServerBenchmark: []analyzer.ServerProbe{
				{ServerName: "Cloudflare", Status: analyzer.StatusSuccess, ResponseTimeMs: 12.5},
				{ServerName: "Quad9", Status: analyzer.StatusFailed, Error: "timeout"},
			},
			ResponseTimeMs: 18.2,
		},
		SSL: &analyzer.SSLResult{
			HasSSL:          true,
			Valid:           true,
			Grade:           "A",
			Protocol:        "TLSv1.2",
			Issuer:          "DigiCert Inc",
			NotAfter:        "2026-09-01T00:00:00Z",
			DaysUntilExpiry: 171,
		},
		SEO: &analyzer.SEOResult{
			URL:      "https://example.com",
			Title:    "Example Domain",
			SEOScore: 62,
			Links:    analyzer.LinkStats{Internal: 4, External: 1},
		},
		Ranking: &analyzer.RankingResult{
			DomainAuthority: 55,
			PageAuthority:   52,
		},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	original := []*auditor.Result{sampleResult()}

	data, err := JSON(original)
	if err != nil {
		t.Fatal(err)
	}

	var decoded []*auditor.Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("decoded %d results", len(decoded))
	}
	got := decoded[0]
	if got.URL != original[0].URL || got.Domain != original[0].Domain {
		t.Errorf("identity fields lost: %+v", got)
	}
	if got.DNS == nil || got.DNS.IPAddress != "93.184.216.34" {
		t.Errorf("DNS info lost: %+v", got.DNS)
	}
	if got.SSL == nil || got.SSL.Grade != "A" {
		t.Errorf("SSL info lost: %+v", got.SSL)
	}
	if got.Ranking == nil || got.Ranking.DomainAuthority != 55 {
		t.Errorf("ranking info lost: %+v", got.Ranking)
	}
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteJSON(dir, sampleResult())
	if err != nil {
		t.Fatal(err)
	}

	base := filepath.Base(path)
	if !strings.HasPrefix(base, "audit_example.com_") || !strings.HasSuffix(base, ".json") {
		t.Errorf("unexpected filename %q", base)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded auditor.Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("saved file is not valid JSON: %v", err)
	}
	if decoded.Domain != "example.com" {
		t.Errorf("Domain = %q", decoded.Domain)
	}
}

func TestCSVFlattensNestedFields(t *testing.T) {
	data, err := CSV([]*auditor.Result{sampleResult()})
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}

	header := lines[0]
	for _, column := range []string{"url", "domain", "ssl_info.ssl_grade", "ranking_metrics.domain_authority", "dns_info.ip_address"} {
		if !strings.Contains(header, column) {
			t.Errorf("header missing column %q: %s", column, header)
		}
	}
	if !strings.Contains(lines[1], "93.184.216.34") {
		t.Errorf("row missing flattened DNS value: %s", lines[1])
	}
}

func TestCSVUnionsColumnsAcrossRows(t *testing.T) {
	full := sampleResult()
	failed := &auditor.Result{
		URL:       "http://",
		Timestamp: time.Now().UTC(),
		Error:     "target \"http://\" has no host",
	}

	data, err := CSV([]*auditor.Result{full, failed})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus two rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "error") {
		t.Errorf("header missing error column: %s", lines[0])
	}
}

func TestTextIncludesModuleSections(t *testing.T) {
	out := Text(sampleResult())

	for _, want := range []string{"== DNS ==", "== SSL ==", "== SEO ==", "== Ranking ==", "example.com", "Grade:    A"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q\n%s", want, out)
		}
	}
}

func TestTextForFailedAudit(t *testing.T) {
	out := Text(&auditor.Result{URL: "http://", Error: "no host"})
	if !strings.Contains(out, "no host") {
		t.Errorf("error not surfaced: %s", out)
	}
	if strings.Contains(out, "== DNS ==") {
		t.Error("failed audits should not print module sections")
	}
}

func TestMarkdownRendering(t *testing.T) {
	md, err := Markdown(sampleResult())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Website Audit: https://example.com", "## DNS", "## SSL", "**A**", "## Ranking"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestPDFOutputNonEmpty(t *testing.T) {
	data, err := PDF([]*auditor.Result{sampleResult()})
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("empty PDF")
	}
	if !strings.HasPrefix(string(data[:5]), "%PDF-") {
		t.Errorf("output does not look like a PDF: %q", data[:5])
	}
}
