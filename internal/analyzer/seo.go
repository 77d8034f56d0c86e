package analyzer

import (
	"bytes"
	"encoding/json"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SEOAnalyzer scrapes on-page SEO and marketing signals out of fetched HTML
// and scores them; it performs no network calls of its own.
type SEOAnalyzer struct{}

// NewSEOAnalyzer returns a ready SEOAnalyzer.
func NewSEOAnalyzer() *SEOAnalyzer {
	return &SEOAnalyzer{}
}

// marketingPatterns maps tool names to the script/host fingerprints that give
// them away in page source.
var marketingPatterns = map[string][]*regexp.Regexp{
	"Google Analytics":    compileAll(`google-analytics\.com`, `gtag\(`, `\bga\(`),
	"Google Tag Manager":  compileAll(`googletagmanager\.com`),
	"Facebook Pixel":      compileAll(`facebook\.net/en_US/fbevents\.js`, `fbq\(`),
	"LinkedIn Insight":    compileAll(`snap\.licdn\.com`),
	"X (Twitter) Pixel":   compileAll(`static\.ads-twitter\.com`),
	"HubSpot":             compileAll(`js\.hs-scripts\.com`, `hubspot`),
	"Mailchimp":           compileAll(`mailchimp`, `list-manage\.com`),
	"Hotjar":              compileAll(`hotjar\.com`),
	"Mixpanel":            compileAll(`mixpanel\.com`),
	"Segment":             compileAll(`segment\.com`),
	"Klaviyo":             compileAll(`klaviyo`),
	"Marketo":             compileAll(`marketo\.com`, `munchkin`),
	"Adobe Analytics":     compileAll(`omniture\.com`),
	"Crazy Egg":           compileAll(`crazyegg\.com`),
}

// socialPatterns maps platform names to host fingerprints matched against
// anchor hrefs.
var socialPatterns = map[string][]*regexp.Regexp{
	"Facebook":  compileAll(`facebook\.com`, `fb\.com`),
	"X (Twitter)": compileAll(`twitter\.com`, `//x\.com`),
	"LinkedIn":  compileAll(`linkedin\.com`),
	"Instagram": compileAll(`instagram\.com`),
	"YouTube":   compileAll(`youtube\.com`, `youtu\.be`),
	"TikTok":    compileAll(`tiktok\.com`),
	"Pinterest": compileAll(`pinterest\.com`),
	"Telegram":  compileAll(`t\.me/`, `telegram\.me`),
	"Discord":   compileAll(`discord\.gg`, `discord\.com`),
	"Reddit":    compileAll(`reddit\.com`),
	"Twitch":    compileAll(`twitch\.tv`),
	"Vimeo":     compileAll(`vimeo\.com`),
	"GitHub":    compileAll(`github\.com`),
	"Medium":    compileAll(`medium\.com`),
	"Email":     compileAll(`^mailto:`),
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)`+p))
	}
	return out
}

// Analyze extracts SEO signals from page and runs both the flat score and the
// per-category breakdown.
func (s *SEOAnalyzer) Analyze(pageURL string, page *Page) *SEOResult {
	result := &SEOResult{URL: pageURL}

	if page == nil || len(page.Body) == 0 {
		result.Error = "no page content to analyze"
		return result
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Body))
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Title = strings.TrimSpace(doc.Find("title").First().Text())
	result.MetaDescription, _ = doc.Find(`meta[name="description"]`).Attr("content")
	result.MetaKeywords, _ = doc.Find(`meta[name="keywords"]`).Attr("content")
	result.Headings = extractHeadings(doc)
	result.Images = analyzeImages(doc)
	result.Links = analyzeLinks(doc, pageURL)
	result.SchemaTypes = detectSchemaTypes(doc)
	result.OpenGraph = extractPropertyMetas(doc, "og:")
	result.TwitterCards = extractNameMetas(doc, "twitter:")
	result.CanonicalURL, _ = doc.Find(`link[rel="canonical"]`).Attr("href")
	result.RobotsMeta, _ = doc.Find(`meta[name="robots"]`).Attr("content")
	result.MarketingTools = detectMarketingTools(page.Body)
	result.SocialLinks = detectSocialLinks(doc)
	result.WordCount = countWords(doc)
	result.StatusCode = page.StatusCode
	result.FileSize = int64(len(page.Body))
	result.ResponseTimeMs = float64(page.FetchTime.Milliseconds())

	result.SEOScore = s.basicScore(result)
	result.Breakdown = s.scoreCategories(result, doc, page, pageURL)

	return result
}

// basicScore is the flat 0-100 SEO score; weights mirror the breakdown but
// stay intentionally coarse.
func (s *SEOAnalyzer) basicScore(r *SEOResult) int {
	score := 0

	if r.Title != "" {
		score += 15
		if l := len(r.Title); l >= 30 && l <= 60 {
			score += 5
		}
	}
	if r.MetaDescription != "" {
		score += 10
		if l := len(r.MetaDescription); l >= 120 && l <= 160 {
			score += 5
		}
	}
	if h1s := r.Headings["h1"]; len(h1s) > 0 {
		score += 10
		if len(h1s) == 1 {
			score += 5
		}
	}
	if r.Images.AltTextRatio >= 80 {
		score += 10
	} else if r.Images.AltTextRatio >= 50 {
		score += 5
	}
	if len(r.SchemaTypes) > 0 {
		score += 10
	}
	if len(r.OpenGraph) >= 3 {
		score += 10
	} else if len(r.OpenGraph) > 0 {
		score += 5
	}
	if r.CanonicalURL != "" {
		score += 5
	}
	if r.Links.Internal > 0 {
		score += 5
		if r.Links.Internal >= 5 {
			score += 5
		}
	}
	if len(r.MarketingTools) > 0 {
		score += 5
	}

	return clampScore(score)
}

func clampScore(score int) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

func extractHeadings(doc *goquery.Document) map[string][]string {
	headings := make(map[string][]string, 6)
	for _, level := range []string{"h1", "h2", "h3", "h4", "h5", "h6"} {
		var texts []string
		doc.Find(level).Each(func(_ int, sel *goquery.Selection) {
			texts = append(texts, strings.TrimSpace(sel.Text()))
		})
		headings[level] = texts
	}
	return headings
}

func analyzeImages(doc *goquery.Document) ImageStats {
	stats := ImageStats{}
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		stats.Total++
		if alt, ok := sel.Attr("alt"); ok && strings.TrimSpace(alt) != "" {
			stats.WithAlt++
		}
	})
	stats.WithoutAlt = stats.Total - stats.WithAlt
	if stats.Total > 0 {
		stats.AltTextRatio = float64(stats.WithAlt) / float64(stats.Total) * 100
	}
	return stats
}

const linkSampleSize = 10

func analyzeLinks(doc *goquery.Document, pageURL string) LinkStats {
	stats := LinkStats{}
	base, err := url.Parse(pageURL)
	if err != nil {
		base = &url.URL{}
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		stats.Total++

		resolved, err := base.Parse(href)
		if err != nil {
			return
		}
		switch {
		case resolved.Host == base.Host:
			stats.Internal++
			if len(stats.InternalSample) < linkSampleSize {
				stats.InternalSample = append(stats.InternalSample, href)
			}
		case resolved.Host != "":
			stats.External++
			if len(stats.ExternalSample) < linkSampleSize {
				stats.ExternalSample = append(stats.ExternalSample, href)
			}
		}
	})

	return stats
}

// detectSchemaTypes collects Schema.org types from JSON-LD blocks and
// microdata itemtype attributes.
func detectSchemaTypes(doc *goquery.Document) []string {
	seen := make(map[string]struct{})
	var types []string
	add := func(t string) {
		t = strings.TrimSpace(t)
		if t == "" {
			return
		}
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		types = append(types, t)
	}

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var single struct {
			Type string `json:"@type"`
		}
		raw := sel.Text()
		if err := json.Unmarshal([]byte(raw), &single); err == nil && single.Type != "" {
			add(single.Type)
			return
		}
		var list []struct {
			Type string `json:"@type"`
		}
		if err := json.Unmarshal([]byte(raw), &list); err == nil {
			for _, item := range list {
				add(item.Type)
			}
		}
	})

	doc.Find("[itemtype]").Each(func(_ int, sel *goquery.Selection) {
		itemType, _ := sel.Attr("itemtype")
		parts := strings.Split(itemType, "/")
		add(parts[len(parts)-1])
	})

	return types
}

func extractPropertyMetas(doc *goquery.Document, prefix string) map[string]string {
	tags := make(map[string]string)
	doc.Find("meta[property]").Each(func(_ int, sel *goquery.Selection) {
		prop, _ := sel.Attr("property")
		content, _ := sel.Attr("content")
		if strings.HasPrefix(prop, prefix) && content != "" {
			tags[prop] = content
		}
	})
	return tags
}

func extractNameMetas(doc *goquery.Document, prefix string) map[string]string {
	tags := make(map[string]string)
	doc.Find("meta[name]").Each(func(_ int, sel *goquery.Selection) {
		name, _ := sel.Attr("name")
		content, _ := sel.Attr("content")
		if strings.HasPrefix(name, prefix) && content != "" {
			tags[name] = content
		}
	})
	return tags
}

func detectMarketingTools(body []byte) []string {
	var tools []string
	for tool, patterns := range marketingPatterns {
		for _, pattern := range patterns {
			if pattern.Match(body) {
				tools = append(tools, tool)
				break
			}
		}
	}
	sort.Strings(tools)
	return tools
}

func detectSocialLinks(doc *goquery.Document) map[string]string {
	links := make(map[string]string)
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		for platform, patterns := range socialPatterns {
			if _, taken := links[platform]; taken {
				continue
			}
			for _, pattern := range patterns {
				if pattern.MatchString(href) {
					if platform == "Email" {
						links[platform] = strings.TrimPrefix(href, "mailto:")
					} else {
						links[platform] = href
					}
					break
				}
			}
		}
	})
	return links
}

func countWords(doc *goquery.Document) int {
	clone := doc.Clone()
	clone.Find("script, style, noscript").Remove()
	return len(strings.Fields(clone.Find("body").Text()))
}
