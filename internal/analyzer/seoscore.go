package analyzer

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Importance labels attached to checks.
const (
	importanceCritical = "very_important"
	importanceHigh     = "important"
	importanceNice     = "nice_to_have"
)

// Category keys in the breakdown map.
const (
	catMetaData        = "meta_data"
	catPageQuality     = "page_quality"
	catPageStructure   = "page_structure"
	catLinks           = "links"
	catServer          = "server"
	catExternalFactors = "external_factors"
)

var categoryOrder = []string{
	catMetaData, catPageQuality, catPageStructure, catLinks, catServer, catExternalFactors,
}

// scoreCategories runs the per-category rule lists and assembles the
// breakdown. Every category score is clamped to [0,100]; the overall score is
// the mean across the six categories.
func (s *SEOAnalyzer) scoreCategories(r *SEOResult, doc *goquery.Document, page *Page, pageURL string) *ScoreBreakdown {
	b := &ScoreBreakdown{
		Categories: make(map[string]*Category, len(categoryOrder)),
	}
	for _, name := range categoryOrder {
		b.Categories[name] = &Category{MaxScore: 100}
	}

	b.Categories[catMetaData].Score = scoreMetaData(b, r, doc)
	b.Categories[catPageQuality].Score = scorePageQuality(b, r)
	b.Categories[catPageStructure].Score = scorePageStructure(b, r, doc, pageURL)
	b.Categories[catLinks].Score = scoreLinks(b, r, doc)
	b.Categories[catServer].Score = scoreServer(b, r, page)
	b.Categories[catExternalFactors].Score = scoreExternalFactors(b, r, pageURL)

	total := 0
	for _, name := range categoryOrder {
		total += b.Categories[name].Score
	}
	b.OverallScore = total / len(categoryOrder)

	for _, cat := range b.Categories {
		for _, check := range cat.Checks {
			switch check.Status {
			case CheckError:
				b.Issues.Errors++
				if check.Importance == importanceCritical {
					b.Issues.Critical++
				}
			case CheckWarning:
				b.Issues.Warnings++
			}
		}
	}

	b.PageInfo = collectPageInfo(doc)

	return b
}

func addCheck(b *ScoreBreakdown, category string, check Check) {
	cat := b.Categories[category]
	cat.Checks = append(cat.Checks, check)
	if check.Status != CheckPass && check.Importance != importanceNice {
		b.Todo = append(b.Todo, TodoItem{
			Action:     check.Message,
			Importance: check.Status,
			Category:   category,
		})
	}
}

func scoreMetaData(b *ScoreBreakdown, r *SEOResult, doc *goquery.Document) int {
	score := 0

	if r.Title != "" {
		score += 10
		addCheck(b, catMetaData, Check{
			Name: "Title", Status: CheckPass, Importance: importanceCritical,
			Message: "Title present",
			Details: fmt.Sprintf("Length: %d characters", len(r.Title)),
		})
		if l := len(r.Title); l >= 30 && l <= 60 {
			score += 10
			addCheck(b, catMetaData, Check{
				Name: "Title Length", Status: CheckPass, Importance: importanceCritical,
				Message: "Title length is optimal",
				Details: fmt.Sprintf("%d characters (optimal: 30-60)", l),
			})
		} else {
			addCheck(b, catMetaData, Check{
				Name: "Title Length", Status: CheckWarning, Importance: importanceCritical,
				Message: "Title length should be 30-60 characters",
				Details: fmt.Sprintf("Current: %d characters", l),
			})
		}
	} else {
		addCheck(b, catMetaData, Check{
			Name: "Title", Status: CheckError, Importance: importanceCritical,
			Message: "Title tag is missing",
		})
	}

	if r.MetaDescription != "" {
		score += 10
		if l := len(r.MetaDescription); l >= 120 && l <= 160 {
			score += 10
			addCheck(b, catMetaData, Check{
				Name: "Meta Description", Status: CheckPass, Importance: importanceCritical,
				Message: "Meta description is optimal",
				Details: fmt.Sprintf("%d characters", l),
			})
		} else {
			addCheck(b, catMetaData, Check{
				Name: "Meta Description", Status: CheckWarning, Importance: importanceCritical,
				Message: "Meta description length should be 120-160 characters",
				Details: fmt.Sprintf("Current: %d characters", l),
			})
		}
	} else {
		addCheck(b, catMetaData, Check{
			Name: "Meta Description", Status: CheckError, Importance: importanceCritical,
			Message: "Meta description is missing",
		})
	}

	if r.CanonicalURL != "" {
		score += 15
		addCheck(b, catMetaData, Check{
			Name: "Canonical URL", Status: CheckPass, Importance: importanceHigh,
			Message: "Canonical URL is specified",
		})
	} else {
		addCheck(b, catMetaData, Check{
			Name: "Canonical URL", Status: CheckWarning, Importance: importanceHigh,
			Message: "Canonical URL not specified",
		})
	}

	if lang, ok := doc.Find("html").Attr("lang"); ok && lang != "" {
		score += 10
		addCheck(b, catMetaData, Check{
			Name: "Language", Status: CheckPass, Importance: importanceHigh,
			Message: fmt.Sprintf("Language specified: %s", lang),
		})
	} else {
		addCheck(b, catMetaData, Check{
			Name: "Language", Status: CheckWarning, Importance: importanceHigh,
			Message: "HTML language not specified",
		})
	}

	if charset := pageCharset(doc); charset != "" {
		score += 5
		addCheck(b, catMetaData, Check{
			Name: "Charset", Status: CheckPass, Importance: importanceHigh,
			Message: "Character encoding specified",
			Details: charset,
		})
	}

	switch {
	case r.RobotsMeta == "" || !strings.Contains(strings.ToLower(r.RobotsMeta), "noindex"):
		score += 10
		addCheck(b, catMetaData, Check{
			Name: "Robots Meta", Status: CheckPass, Importance: importanceCritical,
			Message: "Page is indexable",
		})
	default:
		addCheck(b, catMetaData, Check{
			Name: "Robots Meta", Status: CheckError, Importance: importanceCritical,
			Message: "Page is set to noindex",
		})
	}

	if len(r.OpenGraph) >= 4 {
		score += 10
		addCheck(b, catMetaData, Check{
			Name: "Open Graph", Status: CheckPass, Importance: importanceNice,
			Message: "Good Open Graph implementation",
			Details: fmt.Sprintf("%d og: tags", len(r.OpenGraph)),
		})
	} else if len(r.OpenGraph) > 0 {
		score += 5
		addCheck(b, catMetaData, Check{
			Name: "Open Graph", Status: CheckWarning, Importance: importanceNice,
			Message: "Incomplete Open Graph tags",
		})
	}

	return clampScore(score)
}

func scorePageQuality(b *ScoreBreakdown, r *SEOResult) int {
	score := 0

	switch {
	case r.WordCount >= 800:
		score += 25
		addCheck(b, catPageQuality, Check{
			Name: "Content Length", Status: CheckPass, Importance: importanceCritical,
			Message: fmt.Sprintf("Good content length: %d words", r.WordCount),
		})
	case r.WordCount >= 300:
		score += 15
		addCheck(b, catPageQuality, Check{
			Name: "Content Length", Status: CheckWarning, Importance: importanceCritical,
			Message: fmt.Sprintf("Content could be longer: %d words", r.WordCount),
		})
	default:
		addCheck(b, catPageQuality, Check{
			Name: "Content Length", Status: CheckError, Importance: importanceCritical,
			Message: fmt.Sprintf("Content too short: %d words", r.WordCount),
		})
	}

	h1s := r.Headings["h1"]
	switch {
	case len(h1s) == 1:
		score += 20
		addCheck(b, catPageQuality, Check{
			Name: "H1 Heading", Status: CheckPass, Importance: importanceCritical,
			Message: "Single H1 tag found",
			Details: h1s[0],
		})
	case len(h1s) > 1:
		score += 10
		addCheck(b, catPageQuality, Check{
			Name: "H1 Heading", Status: CheckWarning, Importance: importanceCritical,
			Message: fmt.Sprintf("Multiple H1 tags found (%d)", len(h1s)),
		})
	default:
		addCheck(b, catPageQuality, Check{
			Name: "H1 Heading", Status: CheckError, Importance: importanceCritical,
			Message: "No H1 heading found",
		})
	}

	switch {
	case r.Images.Total == 0 || r.Images.AltTextRatio >= 90:
		score += 15
		addCheck(b, catPageQuality, Check{
			Name: "Image Alt Text", Status: CheckPass, Importance: importanceHigh,
			Message: fmt.Sprintf("Excellent alt text usage: %.0f%%", r.Images.AltTextRatio),
		})
	case r.Images.AltTextRatio >= 50:
		score += 10
		addCheck(b, catPageQuality, Check{
			Name: "Image Alt Text", Status: CheckWarning, Importance: importanceHigh,
			Message: fmt.Sprintf("Some images missing alt text: %.0f%%", r.Images.AltTextRatio),
		})
	default:
		addCheck(b, catPageQuality, Check{
			Name: "Image Alt Text", Status: CheckError, Importance: importanceHigh,
			Message: fmt.Sprintf("Most images missing alt text: %.0f%%", r.Images.AltTextRatio),
		})
	}

	totalHeadings := 0
	for _, hs := range r.Headings {
		totalHeadings += len(hs)
	}
	if totalHeadings >= 3 {
		score += 10
		addCheck(b, catPageQuality, Check{
			Name: "Heading Structure", Status: CheckPass, Importance: importanceHigh,
			Message: fmt.Sprintf("Good heading structure: %d headings", totalHeadings),
		})
	} else {
		score += 5
		addCheck(b, catPageQuality, Check{
			Name: "Heading Structure", Status: CheckWarning, Importance: importanceHigh,
			Message: fmt.Sprintf("Limited heading structure: %d headings", totalHeadings),
		})
	}

	if len(r.SchemaTypes) > 0 {
		score += 10
		addCheck(b, catPageQuality, Check{
			Name: "Schema Markup", Status: CheckPass, Importance: importanceNice,
			Message: fmt.Sprintf("Schema markup found: %s", strings.Join(firstN(r.SchemaTypes, 3), ", ")),
		})
	} else {
		addCheck(b, catPageQuality, Check{
			Name: "Schema Markup", Status: CheckWarning, Importance: importanceNice,
			Message: "No schema markup detected",
		})
	}

	switch {
	case len(r.SocialLinks) >= 3:
		score += 10
		addCheck(b, catPageQuality, Check{
			Name: "Social Media", Status: CheckPass, Importance: importanceNice,
			Message: fmt.Sprintf("Good social media presence: %d platforms", len(r.SocialLinks)),
		})
	case len(r.SocialLinks) > 0:
		score += 5
		addCheck(b, catPageQuality, Check{
			Name: "Social Media", Status: CheckWarning, Importance: importanceNice,
			Message: fmt.Sprintf("Limited social media presence: %d platforms", len(r.SocialLinks)),
		})
	default:
		addCheck(b, catPageQuality, Check{
			Name: "Social Media", Status: CheckWarning, Importance: importanceNice,
			Message: "No social media links found",
		})
	}

	if len(r.MarketingTools) > 0 {
		score += 10
		addCheck(b, catPageQuality, Check{
			Name: "Analytics", Status: CheckPass, Importance: importanceNice,
			Message: fmt.Sprintf("Marketing/analytics tooling detected: %s", strings.Join(firstN(r.MarketingTools, 3), ", ")),
		})
	}

	return clampScore(score)
}

func scorePageStructure(b *ScoreBreakdown, r *SEOResult, doc *goquery.Document, pageURL string) int {
	score := 0

	if hasHTML5Doctype(doc) {
		score += 15
		addCheck(b, catPageStructure, Check{
			Name: "HTML5 Doctype", Status: CheckPass, Importance: importanceHigh,
			Message: "HTML5 doctype correctly specified",
		})
	} else {
		score += 5
		addCheck(b, catPageStructure, Check{
			Name: "HTML5 Doctype", Status: CheckWarning, Importance: importanceHigh,
			Message: "HTML5 doctype not found",
		})
	}

	if hasFavicon(doc) {
		score += 10
		addCheck(b, catPageStructure, Check{
			Name: "Favicon", Status: CheckPass, Importance: importanceNice,
			Message: "Favicon found",
		})
	} else {
		addCheck(b, catPageStructure, Check{
			Name: "Favicon", Status: CheckWarning, Importance: importanceNice,
			Message: "No favicon found",
		})
	}

	parsed, err := url.Parse(pageURL)
	if err == nil {
		if len(strings.Split(parsed.Path, "/")) <= 4 {
			score += 10
			addCheck(b, catPageStructure, Check{
				Name: "URL Structure", Status: CheckPass, Importance: importanceHigh,
				Message: "Good URL structure depth",
			})
		} else {
			score += 5
			addCheck(b, catPageStructure, Check{
				Name: "URL Structure", Status: CheckWarning, Importance: importanceHigh,
				Message: "URL structure quite deep",
			})
		}
		if parsed.RawQuery == "" {
			score += 5
			addCheck(b, catPageStructure, Check{
				Name: "URL Parameters", Status: CheckPass, Importance: importanceNice,
				Message: "No URL parameters found",
			})
		}
		if parsed.Scheme == "https" {
			score += 20
			addCheck(b, catPageStructure, Check{
				Name: "HTTPS", Status: CheckPass, Importance: importanceCritical,
				Message: "Site uses HTTPS encryption",
			})
		} else {
			addCheck(b, catPageStructure, Check{
				Name: "HTTPS", Status: CheckError, Importance: importanceCritical,
				Message: "Site not using HTTPS",
			})
		}
	}

	if viewport, ok := doc.Find(`meta[name="viewport"]`).Attr("content"); ok && viewport != "" {
		score += 15
		addCheck(b, catPageStructure, Check{
			Name: "Mobile Optimization", Status: CheckPass, Importance: importanceCritical,
			Message: "Viewport meta tag found",
			Details: viewport,
		})
	} else {
		addCheck(b, catPageStructure, Check{
			Name: "Mobile Optimization", Status: CheckError, Importance: importanceCritical,
			Message: "No viewport meta tag found",
		})
	}

	frames := doc.Find("frame, frameset").Length()
	if frames == 0 {
		score += 10
		addCheck(b, catPageStructure, Check{
			Name: "Frame Usage", Status: CheckPass, Importance: importanceHigh,
			Message: "No frames detected",
		})
	} else {
		score += 5
		addCheck(b, catPageStructure, Check{
			Name: "Frame Usage", Status: CheckWarning, Importance: importanceHigh,
			Message: fmt.Sprintf("%d frames found", frames),
		})
	}

	h1Count := len(r.Headings["h1"])
	h2Count := len(r.Headings["h2"])
	if h1Count == 1 && h2Count > 0 {
		score += 15
		addCheck(b, catPageStructure, Check{
			Name: "Heading Hierarchy", Status: CheckPass, Importance: importanceHigh,
			Message: "Proper heading hierarchy detected",
		})
	} else {
		score += 8
		addCheck(b, catPageStructure, Check{
			Name: "Heading Hierarchy", Status: CheckWarning, Importance: importanceHigh,
			Message: "Heading hierarchy could be improved",
		})
	}

	switch {
	case r.Links.Internal >= 5:
		score += 10
		addCheck(b, catPageStructure, Check{
			Name: "Internal Linking", Status: CheckPass, Importance: importanceHigh,
			Message: fmt.Sprintf("Good internal linking: %d links", r.Links.Internal),
		})
	case r.Links.Internal > 0:
		score += 5
		addCheck(b, catPageStructure, Check{
			Name: "Internal Linking", Status: CheckWarning, Importance: importanceHigh,
			Message: fmt.Sprintf("Limited internal linking: %d links", r.Links.Internal),
		})
	default:
		addCheck(b, catPageStructure, Check{
			Name: "Internal Linking", Status: CheckError, Importance: importanceHigh,
			Message: "No internal links found",
		})
	}

	return clampScore(score)
}

func scoreLinks(b *ScoreBreakdown, r *SEOResult, doc *goquery.Document) int {
	score := 0

	switch {
	case r.Links.Internal >= 10:
		score += 40
		addCheck(b, catLinks, Check{
			Name: "Internal Links", Status: CheckPass, Importance: importanceCritical,
			Message: fmt.Sprintf("Excellent internal linking: %d links", r.Links.Internal),
		})
	case r.Links.Internal >= 5:
		score += 30
		addCheck(b, catLinks, Check{
			Name: "Internal Links", Status: CheckPass, Importance: importanceCritical,
			Message: fmt.Sprintf("Good internal linking: %d links", r.Links.Internal),
		})
	case r.Links.Internal > 0:
		score += 20
		addCheck(b, catLinks, Check{
			Name: "Internal Links", Status: CheckWarning, Importance: importanceCritical,
			Message: fmt.Sprintf("Limited internal linking: %d links", r.Links.Internal),
		})
	default:
		addCheck(b, catLinks, Check{
			Name: "Internal Links", Status: CheckError, Importance: importanceCritical,
			Message: "No internal links found",
		})
	}

	switch {
	case r.Links.External >= 1 && r.Links.External <= 5:
		score += 20
		addCheck(b, catLinks, Check{
			Name: "External Links", Status: CheckPass, Importance: importanceHigh,
			Message: fmt.Sprintf("Good external linking: %d links", r.Links.External),
		})
	case r.Links.External > 5:
		score += 15
		addCheck(b, catLinks, Check{
			Name: "External Links", Status: CheckWarning, Importance: importanceHigh,
			Message: fmt.Sprintf("Many external links: %d links", r.Links.External),
			Details: "Consider if all external links are necessary",
		})
	default:
		score += 10
		addCheck(b, catLinks, Check{
			Name: "External Links", Status: CheckWarning, Importance: importanceHigh,
			Message: "No external links found",
		})
	}

	descriptive, total := anchorTextQuality(doc)
	if total > 0 {
		ratio := float64(descriptive) / float64(total) * 100
		switch {
		case ratio >= 80:
			score += 20
			addCheck(b, catLinks, Check{
				Name: "Anchor Text Quality", Status: CheckPass, Importance: importanceHigh,
				Message: fmt.Sprintf("Good anchor text quality: %.1f%%", ratio),
			})
		case ratio >= 50:
			score += 15
			addCheck(b, catLinks, Check{
				Name: "Anchor Text Quality", Status: CheckWarning, Importance: importanceHigh,
				Message: fmt.Sprintf("Anchor text could be improved: %.1f%%", ratio),
			})
		default:
			score += 10
			addCheck(b, catLinks, Check{
				Name: "Anchor Text Quality", Status: CheckError, Importance: importanceHigh,
				Message: fmt.Sprintf("Poor anchor text quality: %.1f%%", ratio),
			})
		}
	}

	nofollow := doc.Find(`a[rel*="nofollow"]`).Length()
	if nofollow == 0 && r.Links.External > 0 {
		score += 15
		addCheck(b, catLinks, Check{
			Name: "Link Attributes", Status: CheckPass, Importance: importanceNice,
			Message: "No nofollow attributes found",
		})
	} else if nofollow > 0 {
		score += 20
		addCheck(b, catLinks, Check{
			Name: "Link Attributes", Status: CheckPass, Importance: importanceNice,
			Message: fmt.Sprintf("%d links use nofollow attribute", nofollow),
		})
	}

	return clampScore(score)
}

func scoreServer(b *ScoreBreakdown, r *SEOResult, page *Page) int {
	score := 0

	responseSecs := r.ResponseTimeMs / 1000
	switch {
	case responseSecs > 0 && responseSecs <= 0.4:
		score += 30
		addCheck(b, catServer, Check{
			Name: "Response Time", Status: CheckPass, Importance: importanceCritical,
			Message: fmt.Sprintf("Excellent response time: %.2fs", responseSecs),
		})
	case responseSecs <= 1.0:
		score += 20
		addCheck(b, catServer, Check{
			Name: "Response Time", Status: CheckPass, Importance: importanceCritical,
			Message: fmt.Sprintf("Good response time: %.2fs", responseSecs),
		})
	default:
		score += 10
		addCheck(b, catServer, Check{
			Name: "Response Time", Status: CheckWarning, Importance: importanceCritical,
			Message: fmt.Sprintf("Slow response time: %.2fs", responseSecs),
		})
	}

	sizeKB := float64(r.FileSize) / 1024
	switch {
	case sizeKB <= 100:
		score += 20
		addCheck(b, catServer, Check{
			Name: "Page Size", Status: CheckPass, Importance: importanceHigh,
			Message: fmt.Sprintf("Good page size: %.1f KB", sizeKB),
		})
	case sizeKB <= 500:
		score += 15
		addCheck(b, catServer, Check{
			Name: "Page Size", Status: CheckPass, Importance: importanceHigh,
			Message: fmt.Sprintf("Moderate page size: %.1f KB", sizeKB),
		})
	default:
		score += 10
		addCheck(b, catServer, Check{
			Name: "Page Size", Status: CheckWarning, Importance: importanceHigh,
			Message: fmt.Sprintf("Large page size: %.1f KB", sizeKB),
		})
	}

	switch {
	case r.StatusCode == 200:
		score += 20
		addCheck(b, catServer, Check{
			Name: "HTTP Status", Status: CheckPass, Importance: importanceCritical,
			Message: "HTTP 200 OK",
		})
	case r.StatusCode >= 300 && r.StatusCode < 400:
		score += 15
		addCheck(b, catServer, Check{
			Name: "HTTP Status", Status: CheckWarning, Importance: importanceCritical,
			Message: fmt.Sprintf("HTTP %d (Redirect)", r.StatusCode),
		})
	default:
		addCheck(b, catServer, Check{
			Name: "HTTP Status", Status: CheckError, Importance: importanceCritical,
			Message: fmt.Sprintf("HTTP %d (Error)", r.StatusCode),
		})
	}

	if page != nil && page.Header.Get("Content-Encoding") != "" {
		score += 15
		addCheck(b, catServer, Check{
			Name: "Compression", Status: CheckPass, Importance: importanceHigh,
			Message: "Content compression enabled",
			Details: page.Header.Get("Content-Encoding"),
		})
	} else {
		addCheck(b, catServer, Check{
			Name: "Compression", Status: CheckWarning, Importance: importanceHigh,
			Message: "No content compression detected",
		})
	}

	if page != nil {
		found := 0
		for _, header := range []string{"Strict-Transport-Security", "X-Content-Type-Options", "X-Frame-Options"} {
			if page.Header.Get(header) != "" {
				found++
			}
		}
		switch {
		case found >= 2:
			score += 15
			addCheck(b, catServer, Check{
				Name: "Security Headers", Status: CheckPass, Importance: importanceHigh,
				Message: fmt.Sprintf("Good security headers: %d/3", found),
			})
		case found > 0:
			score += 10
			addCheck(b, catServer, Check{
				Name: "Security Headers", Status: CheckWarning, Importance: importanceHigh,
				Message: fmt.Sprintf("Some security headers: %d/3", found),
			})
		default:
			addCheck(b, catServer, Check{
				Name: "Security Headers", Status: CheckWarning, Importance: importanceHigh,
				Message: "No security headers found",
			})
		}
	}

	return clampScore(score)
}

func scoreExternalFactors(b *ScoreBreakdown, r *SEOResult, pageURL string) int {
	score := 0

	domain := ""
	if parsed, err := url.Parse(pageURL); err == nil {
		domain = parsed.Hostname()
	}
	score += 15
	addCheck(b, catExternalFactors, Check{
		Name: "Domain Analysis", Status: CheckPass, Importance: importanceNice,
		Message: fmt.Sprintf("Domain: %s", domain),
	})

	// Real backlink data would need a third-party index; keep the category
	// honest with a low floor instead of pretending to know.
	score += 10
	addCheck(b, catExternalFactors, Check{
		Name: "Backlinks", Status: CheckWarning, Importance: importanceNice,
		Message: "Limited backlink data available",
	})

	switch {
	case len(r.SocialLinks) >= 3:
		score += 20
		addCheck(b, catExternalFactors, Check{
			Name: "Social Presence", Status: CheckPass, Importance: importanceHigh,
			Message: fmt.Sprintf("Active on %d platforms", len(r.SocialLinks)),
		})
	case len(r.SocialLinks) > 0:
		score += 15
		addCheck(b, catExternalFactors, Check{
			Name: "Social Presence", Status: CheckWarning, Importance: importanceHigh,
			Message: fmt.Sprintf("Active on %d platform(s)", len(r.SocialLinks)),
		})
	default:
		score += 5
		addCheck(b, catExternalFactors, Check{
			Name: "Social Presence", Status: CheckWarning, Importance: importanceHigh,
			Message: "No social profiles linked",
		})
	}

	switch {
	case len(r.OpenGraph) > 0 && len(r.TwitterCards) > 0:
		score += 20
		addCheck(b, catExternalFactors, Check{
			Name: "Share Metadata", Status: CheckPass, Importance: importanceHigh,
			Message: "Open Graph and Twitter card tags present",
		})
	case len(r.OpenGraph) > 0 || len(r.TwitterCards) > 0:
		score += 10
		addCheck(b, catExternalFactors, Check{
			Name: "Share Metadata", Status: CheckWarning, Importance: importanceHigh,
			Message: "Partial share metadata",
		})
	default:
		score += 5
		addCheck(b, catExternalFactors, Check{
			Name: "Share Metadata", Status: CheckWarning, Importance: importanceHigh,
			Message: "No share metadata found",
		})
	}

	return clampScore(score)
}

func anchorTextQuality(doc *goquery.Document) (descriptive, total int) {
	generic := map[string]struct{}{
		"click here": {}, "read more": {}, "more": {}, "here": {}, "link": {},
	}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		total++
		if _, isGeneric := generic[strings.ToLower(text)]; !isGeneric && len(text) > 5 {
			descriptive++
		}
	})
	return descriptive, total
}

func collectPageInfo(doc *goquery.Document) PageInfo {
	info := PageInfo{}
	info.Language, _ = doc.Find("html").Attr("lang")
	info.Charset = pageCharset(doc)
	if hasHTML5Doctype(doc) {
		info.Doctype = "HTML5"
	}
	info.Viewport, _ = doc.Find(`meta[name="viewport"]`).Attr("content")
	info.Favicon = hasFavicon(doc)
	return info
}

func pageCharset(doc *goquery.Document) string {
	if charset, ok := doc.Find("meta[charset]").Attr("charset"); ok {
		return charset
	}
	if content, ok := doc.Find(`meta[http-equiv="Content-Type"]`).Attr("content"); ok {
		if idx := strings.Index(strings.ToLower(content), "charset="); idx >= 0 {
			return content[idx+len("charset="):]
		}
	}
	return ""
}

func hasHTML5Doctype(doc *goquery.Document) bool {
	if len(doc.Nodes) == 0 {
		return false
	}
	for node := doc.Nodes[0].FirstChild; node != nil; node = node.NextSibling {
		if node.Type == html.DoctypeNode {
			return strings.EqualFold(node.Data, "html") && len(node.Attr) == 0
		}
	}
	return false
}

func hasFavicon(doc *goquery.Document) bool {
	found := false
	doc.Find("link[rel]").Each(func(_ int, sel *goquery.Selection) {
		rel, _ := sel.Attr("rel")
		if strings.Contains(strings.ToLower(rel), "icon") {
			found = true
		}
	})
	return found
}

func firstN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
