package analyzer

import (
	"strings"
	"testing"
	"time"
)

const fixtureHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Fresh Roast Coffee Beans Delivered Monthly</title>
<meta name="description" content="Order freshly roasted single-origin coffee beans online with monthly delivery, free shipping on subscriptions, and tasting notes curated by our roasters.">
<meta name="keywords" content="coffee, beans, roast">
<meta name="robots" content="index, follow">
<link rel="canonical" href="https://example.com/">
<link rel="icon" href="/favicon.ico">
<meta property="og:title" content="Fresh Roast Coffee">
<meta property="og:description" content="Single-origin beans">
<meta property="og:image" content="https://example.com/og.png">
<meta property="og:url" content="https://example.com/">
<meta name="twitter:card" content="summary">
<script type="application/ld+json">{"@context":"https://schema.org","@type":"Organization","name":"Fresh Roast"}</script>
<script src="https://www.googletagmanager.com/gtag/js?id=G-XYZ"></script>
<script>gtag('config', 'G-XYZ');</script>
</head>
<body>
<h1>Freshly Roasted Coffee, Delivered</h1>
<h2>Why our beans taste better</h2>
<h2>Subscription plans</h2>
<p>We roast every batch to order and ship it the same day so the beans arrive
at peak flavor. Choose from light, medium, and dark profiles sourced from
smallholder farms we visit every season.</p>
<img src="/beans.jpg" alt="Roasted coffee beans">
<img src="/roaster.jpg" alt="Our drum roaster">
<img src="/bag.jpg">
<a href="/about">About our roastery</a>
<a href="/subscribe">Start a subscription</a>
<a href="https://example.com/contact">Contact the team</a>
<a href="https://wholesale.partner-site.com">Wholesale partner portal</a>
<a href="https://facebook.com/freshroast">Facebook</a>
<a href="https://instagram.com/freshroast">Instagram</a>
<a href="mailto:hello@example.com">Email us</a>
</body>
</html>`

func fixturePage() *Page {
	return &Page{
		URL:        "https://example.com/",
		StatusCode: 200,
		Body:       []byte(fixtureHTML),
		FetchTime:  250 * time.Millisecond,
	}
}

func TestSEOAnalyzeExtraction(t *testing.T) {
	s := NewSEOAnalyzer()
	result := s.Analyze("https://example.com/", fixturePage())

	if result.Error != "" {
		t.Fatalf("unexpected error: %s", result.Error)
	}
	if result.Title != "Fresh Roast Coffee Beans Delivered Monthly" {
		t.Errorf("Title = %q", result.Title)
	}
	if !strings.HasPrefix(result.MetaDescription, "Order freshly roasted") {
		t.Errorf("MetaDescription = %q", result.MetaDescription)
	}
	if got := result.Headings["h1"]; len(got) != 1 {
		t.Errorf("h1 headings = %v, want exactly one", got)
	}
	if got := result.Headings["h2"]; len(got) != 2 {
		t.Errorf("h2 headings = %v, want two", got)
	}
	if result.Images.Total != 3 || result.Images.WithAlt != 2 {
		t.Errorf("images = %+v, want 3 total with 2 alt", result.Images)
	}
	if result.Links.Internal < 3 {
		t.Errorf("internal links = %d, want at least 3", result.Links.Internal)
	}
	if result.Links.External < 1 {
		t.Errorf("external links = %d, want at least 1", result.Links.External)
	}
	if result.CanonicalURL != "https://example.com/" {
		t.Errorf("CanonicalURL = %q", result.CanonicalURL)
	}
	if result.WordCount < 30 {
		t.Errorf("WordCount = %d, suspiciously low", result.WordCount)
	}
	if result.StatusCode != 200 {
		t.Errorf("StatusCode = %d", result.StatusCode)
	}
}

func TestSEOAnalyzeDetectsSchemaAndMarketing(t *testing.T) {
	s := NewSEOAnalyzer()
	result := s.Analyze("https://example.com/", fixturePage())

	if !containsString(result.SchemaTypes, "Organization") {
		t.Errorf("SchemaTypes = %v, want Organization", result.SchemaTypes)
	}
	foundGoogle := false
	for _, tool := range result.MarketingTools {
		if strings.Contains(tool, "Google") {
			foundGoogle = true
		}
	}
	if !foundGoogle {
		t.Errorf("MarketingTools = %v, expected a Google tool", result.MarketingTools)
	}
	if _, ok := result.SocialLinks["Facebook"]; !ok {
		t.Errorf("SocialLinks = %v, want Facebook", result.SocialLinks)
	}
	if _, ok := result.SocialLinks["Email"]; !ok {
		t.Errorf("SocialLinks = %v, want Email", result.SocialLinks)
	}
	if len(result.OpenGraph) < 4 {
		t.Errorf("OpenGraph = %v, want at least 4 tags", result.OpenGraph)
	}
	if len(result.TwitterCards) < 1 {
		t.Errorf("TwitterCards = %v, want at least 1 tag", result.TwitterCards)
	}
}

func TestSEOAnalyzeScoring(t *testing.T) {
	s := NewSEOAnalyzer()
	result := s.Analyze("https://example.com/", fixturePage())

	if result.SEOScore < 0 || result.SEOScore > 100 {
		t.Errorf("SEOScore = %d, outside [0,100]", result.SEOScore)
	}

	b := result.Breakdown
	if b == nil {
		t.Fatal("expected a score breakdown")
	}
	if len(b.Categories) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(b.Categories))
	}

	total := 0
	for name, cat := range b.Categories {
		if cat.Score < 0 || cat.Score > 100 {
			t.Errorf("category %s score = %d, outside [0,100]", name, cat.Score)
		}
		if len(cat.Checks) == 0 {
			t.Errorf("category %s has no checks", name)
		}
		total += cat.Score
	}
	if want := total / 6; b.OverallScore != want {
		t.Errorf("OverallScore = %d, want mean %d", b.OverallScore, want)
	}

	if !b.PageInfo.Favicon {
		t.Error("PageInfo.Favicon should be true for the fixture")
	}
	if b.PageInfo.Language != "en" {
		t.Errorf("PageInfo.Language = %q", b.PageInfo.Language)
	}
	if b.PageInfo.Doctype != "HTML5" {
		t.Errorf("PageInfo.Doctype = %q", b.PageInfo.Doctype)
	}
}

func TestSEOAnalyzeEmptyPage(t *testing.T) {
	s := NewSEOAnalyzer()

	if result := s.Analyze("https://example.com/", nil); result.Error == "" {
		t.Error("nil page should produce an error result")
	}
	if result := s.Analyze("https://example.com/", &Page{}); result.Error == "" {
		t.Error("empty body should produce an error result")
	}
}

func TestSEOAnalyzeSparsePageStaysInBounds(t *testing.T) {
	s := NewSEOAnalyzer()
	page := &Page{
		URL:        "http://bare.example/",
		StatusCode: 500,
		Body:       []byte("<html><body>hi</body></html>"),
		FetchTime:  5 * time.Second,
	}
	result := s.Analyze("http://bare.example/", page)

	if result.Error != "" {
		t.Fatalf("unexpected error: %s", result.Error)
	}
	if result.SEOScore < 0 || result.SEOScore > 100 {
		t.Errorf("SEOScore = %d, outside [0,100]", result.SEOScore)
	}
	for name, cat := range result.Breakdown.Categories {
		if cat.Score < 0 || cat.Score > 100 {
			t.Errorf("category %s score = %d, outside [0,100]", name, cat.Score)
		}
	}
	if result.Breakdown.Issues.Critical == 0 {
		t.Error("a bare page over HTTP should raise critical issues")
	}
}

func TestClampScore(t *testing.T) {
	if got := clampScore(-5); got != 0 {
		t.Errorf("clampScore(-5) = %d", got)
	}
	if got := clampScore(150); got != 100 {
		t.Errorf("clampScore(150) = %d", got)
	}
	if got := clampScore(42); got != 42 {
		t.Errorf("clampScore(42) = %d", got)
	}
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
