package export

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/netssv/webaudit/internal/auditor"
)

var markdownTemplate = template.Must(template.New("markdown").Funcs(template.FuncMap{
	"join": strings.Join,
	"kb":   func(bytes int64) string { return fmt.Sprintf("%.1f KB", float64(bytes)/1024) },
}).Parse(`# Website Audit: {{.URL}}

- **Domain:** {{.Domain}}
- **Timestamp:** {{.Timestamp.Format "2006-01-02 15:04:05 MST"}}
- **Modules:** {{join .ModulesRun ", "}}
{{- if .Error}}
- **Error:** {{.Error}}
{{- end}}
{{- if .DNS}}

## DNS
{{- if .DNS.Error}}
Error: {{.DNS.Error}}
{{- else}}
| Record | Value |
|--------|-------|
| IP | {{.DNS.IPAddress}} |
| A | {{join .DNS.ARecords ", "}} |
| NS | {{join .DNS.NSRecords ", "}} |
| Response time | {{printf "%.1f ms" .DNS.ResponseTimeMs}} |
{{- end}}
{{- end}}
{{- if .Whois}}

## WHOIS
- Registrar: {{.Whois.Registrar}}
- Created: {{.Whois.CreatedDate}}
- Expires: {{.Whois.ExpirationDate}}
{{- end}}
{{- if .SSL}}

## SSL
{{- if .SSL.Error}}
Error: {{.SSL.Error}}
{{- else}}
- Grade: **{{.SSL.Grade}}** ({{.SSL.Protocol}})
- Issuer: {{.SSL.Issuer}}
- Expires: {{.SSL.NotAfter}} ({{.SSL.DaysUntilExpiry}} days)
{{- range .SSL.SecurityIssues}}
- Issue: {{.}}
{{- end}}
{{- end}}
{{- end}}
{{- if .Perf}}

## Performance
- Response time: {{printf "%.1f ms" .Perf.ResponseTimeMs}}
- Page size: {{kb .Perf.PageSize}}
- Status: {{.Perf.StatusCode}} ({{.Perf.RedirectCount}} redirects)
- PageSpeed: mobile {{.Perf.PageSpeed.Mobile}} / desktop {{.Perf.PageSpeed.Desktop}}
{{- end}}
{{- if .SEO}}

## SEO
{{- if .SEO.Error}}
Error: {{.SEO.Error}}
{{- else}}
- Score: **{{.SEO.SEOScore}}/100**
- Title: {{.SEO.Title}}
- Word count: {{.SEO.WordCount}}
- Links: {{.SEO.Links.Internal}} internal / {{.SEO.Links.External}} external
{{- if .SEO.MarketingTools}}
- Marketing tools: {{join .SEO.MarketingTools ", "}}
{{- end}}
{{- end}}
{{- end}}
{{- if .Ranking}}

## Ranking
- Domain authority: {{.Ranking.DomainAuthority}}
- Page authority: {{.Ranking.PageAuthority}}
- Estimated traffic: {{.Ranking.OrganicTrafficEstimate}}/mo
- Backlinks: {{.Ranking.BacklinkEstimate}}
{{- end}}
`))

// Markdown renders one audit as a Markdown report.
func Markdown(result *auditor.Result) (string, error) {
	var buf bytes.Buffer
	if err := markdownTemplate.Execute(&buf, result); err != nil {
		return "", fmt.Errorf("rendering markdown report: %w", err)
	}
	return buf.String(), nil
}
