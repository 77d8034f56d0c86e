package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/netssv/webaudit/internal/auditor"
)

// PDF renders audits into a printable report.
func PDF(results []*auditor.Result) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Website Audit Report", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	for _, result := range results {
		if pdf.GetY() > 240 {
			pdf.AddPage()
		}

		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(0, 8, result.URL, "", 1, "", true, 0, "")

		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 5, fmt.Sprintf("Domain: %s | %s | Modules: %s",
			result.Domain, resultTimestamp(result.Timestamp), strings.Join(result.ModulesRun, ", ")), "", 1, "", false, 0, "")

		if result.Error != "" {
			pdf.SetFont("Arial", "I", 9)
			pdf.MultiCell(0, 5, "Error: "+result.Error, "", "", false)
			pdf.Ln(3)
			continue
		}

		if dns := result.DNS; dns != nil && dns.Error == "" {
			pdf.CellFormat(0, 5, fmt.Sprintf("DNS: %s (%.1f ms, %d resolvers probed)",
				dns.IPAddress, dns.ResponseTimeMs, len(dns.ServerBenchmark)), "", 1, "", false, 0, "")
		}
		if ssl := result.SSL; ssl != nil && ssl.Error == "" && ssl.HasSSL {
			pdf.CellFormat(0, 5, fmt.Sprintf("SSL: grade %s, %s, expires in %d days",
				ssl.Grade, ssl.Protocol, ssl.DaysUntilExpiry), "", 1, "", false, 0, "")
		}
		if perf := result.Perf; perf != nil && perf.Error == "" {
			pdf.CellFormat(0, 5, fmt.Sprintf("Performance: %.1f ms, %.1f KB, PageSpeed %d/%d",
				perf.ResponseTimeMs, float64(perf.PageSize)/1024, perf.PageSpeed.Mobile, perf.PageSpeed.Desktop), "", 1, "", false, 0, "")
		}
		if seo := result.SEO; seo != nil && seo.Error == "" {
			line := fmt.Sprintf("SEO: %d/100, %d words, %d internal links", seo.SEOScore, seo.WordCount, seo.Links.Internal)
			if seo.Breakdown != nil {
				line += fmt.Sprintf(", %d critical issues", seo.Breakdown.Issues.Critical)
			}
			pdf.CellFormat(0, 5, line, "", 1, "", false, 0, "")
		}
		if rank := result.Ranking; rank != nil {
			pdf.CellFormat(0, 5, fmt.Sprintf("Ranking: DA %d / PA %d, est. %d visits/mo",
				rank.DomainAuthority, rank.PageAuthority, rank.OrganicTrafficEstimate), "", 1, "", false, 0, "")
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}
