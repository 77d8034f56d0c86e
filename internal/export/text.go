package export

import (
	"fmt"
	"strings"

	"github.com/netssv/webaudit/internal/auditor"
)

// Text renders a plain-text summary of one audit. The CLI layers color on
// top; files written to disk get this form verbatim.
func Text(result *auditor.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Audit report for %s\n", result.URL)
	fmt.Fprintf(&b, "Domain:    %s\n", result.Domain)
	fmt.Fprintf(&b, "Timestamp: %s\n", resultTimestamp(result.Timestamp))
	fmt.Fprintf(&b, "Modules:   %s\n", strings.Join(result.ModulesRun, ", "))
	if result.Error != "" {
		fmt.Fprintf(&b, "Error:     %s\n", result.Error)
		return b.String()
	}

	if dns := result.DNS; dns != nil {
		b.WriteString("\n== DNS ==\n")
		if dns.Error != "" {
			fmt.Fprintf(&b, "  error: %s\n", dns.Error)
		} else {
			fmt.Fprintf(&b, "  IP address:    %s\n", dns.IPAddress)
			fmt.Fprintf(&b, "  A records:     %s\n", strings.Join(dns.ARecords, ", "))
			if len(dns.AAAARecords) > 0 {
				fmt.Fprintf(&b, "  AAAA records:  %s\n", strings.Join(dns.AAAARecords, ", "))
			}
			for _, mx := range dns.MXRecords {
				fmt.Fprintf(&b, "  MX:            %s (pref %d)\n", mx.Host, mx.Preference)
			}
			if len(dns.NSRecords) > 0 {
				fmt.Fprintf(&b, "  NS records:    %s\n", strings.Join(dns.NSRecords, ", "))
			}
			fmt.Fprintf(&b, "  Response time: %.1f ms\n", dns.ResponseTimeMs)
			for _, probe := range dns.ServerBenchmark {
				status := fmt.Sprintf("%.1f ms", probe.ResponseTimeMs)
				if probe.Status != "success" {
					status = "failed"
				}
				fmt.Fprintf(&b, "  resolver %-12s %s\n", probe.ServerName, status)
			}
		}
	}

	if w := result.Whois; w != nil {
		b.WriteString("\n== WHOIS ==\n")
		if w.Error != "" {
			fmt.Fprintf(&b, "  error: %s\n", w.Error)
		} else {
			fmt.Fprintf(&b, "  Registrar: %s\n", w.Registrar)
			fmt.Fprintf(&b, "  Created:   %s\n", w.CreatedDate)
			fmt.Fprintf(&b, "  Expires:   %s\n", w.ExpirationDate)
		}
	}

	if ssl := result.SSL; ssl != nil {
		b.WriteString("\n== SSL ==\n")
		switch {
		case ssl.Error != "":
			fmt.Fprintf(&b, "  error: %s\n", ssl.Error)
		case !ssl.HasSSL:
			b.WriteString("  no SSL detected\n")
		default:
			fmt.Fprintf(&b, "  Grade:    %s (%s, %s)\n", ssl.Grade, ssl.Protocol, ssl.CipherSuite)
			fmt.Fprintf(&b, "  Issuer:   %s\n", ssl.Issuer)
			fmt.Fprintf(&b, "  Expires:  %s (%d days)\n", ssl.NotAfter, ssl.DaysUntilExpiry)
			for _, issue := range ssl.SecurityIssues {
				fmt.Fprintf(&b, "  issue:    %s\n", issue)
			}
		}
	}

	if perf := result.Perf; perf != nil {
		b.WriteString("\n== Performance ==\n")
		if perf.Error != "" {
			fmt.Fprintf(&b, "  error: %s\n", perf.Error)
		} else {
			fmt.Fprintf(&b, "  Response time: %.1f ms\n", perf.ResponseTimeMs)
			fmt.Fprintf(&b, "  Page size:     %.1f KB\n", float64(perf.PageSize)/1024)
			fmt.Fprintf(&b, "  Status code:   %d (%d redirects)\n", perf.StatusCode, perf.RedirectCount)
			fmt.Fprintf(&b, "  Server:        %s\n", perf.Server)
			fmt.Fprintf(&b, "  PageSpeed:     mobile %d / desktop %d\n", perf.PageSpeed.Mobile, perf.PageSpeed.Desktop)
		}
	}

	if seo := result.SEO; seo != nil {
		b.WriteString("\n== SEO ==\n")
		if seo.Error != "" {
			fmt.Fprintf(&b, "  error: %s\n", seo.Error)
		} else {
			fmt.Fprintf(&b, "  Score:       %d/100\n", seo.SEOScore)
			fmt.Fprintf(&b, "  Title:       %s\n", seo.Title)
			fmt.Fprintf(&b, "  Words:       %d\n", seo.WordCount)
			fmt.Fprintf(&b, "  Links:       %d internal / %d external\n", seo.Links.Internal, seo.Links.External)
			if len(seo.MarketingTools) > 0 {
				fmt.Fprintf(&b, "  Marketing:   %s\n", strings.Join(seo.MarketingTools, ", "))
			}
			if bd := seo.Breakdown; bd != nil {
				fmt.Fprintf(&b, "  Overall:     %d/100 (%d critical, %d warnings)\n",
					bd.OverallScore, bd.Issues.Critical, bd.Issues.Warnings)
				for _, name := range []string{"meta_data", "page_quality", "page_structure", "links", "server", "external_factors"} {
					if cat, ok := bd.Categories[name]; ok {
						fmt.Fprintf(&b, "    %-18s %d/100\n", name, cat.Score)
					}
				}
			}
		}
	}

	if rank := result.Ranking; rank != nil {
		b.WriteString("\n== Ranking ==\n")
		fmt.Fprintf(&b, "  Domain authority: %d\n", rank.DomainAuthority)
		fmt.Fprintf(&b, "  Page authority:   %d\n", rank.PageAuthority)
		fmt.Fprintf(&b, "  Trust/Citation:   %d / %d\n", rank.TrustFlow, rank.CitationFlow)
		fmt.Fprintf(&b, "  Est. traffic:     %d/mo\n", rank.OrganicTrafficEstimate)
		fmt.Fprintf(&b, "  Backlinks:        %d (%d referring domains)\n", rank.BacklinkEstimate, rank.ReferringDomains)
	}

	fmt.Fprintf(&b, "\nCompleted in %.0f ms\n", result.DurationMs)
	return b.String()
}
