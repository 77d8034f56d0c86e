package analyzer

import (
	"reflect"
	"testing"
)

func TestRankingIsDeterministic(t *testing.T) {
	a := NewRankingAnalyzer()

	first := a.Analyze("example.com")
	second := a.Analyze("example.com")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same domain produced different metrics:\n%+v\n%+v", first, second)
	}
}

func TestRankingDiffersAcrossDomains(t *testing.T) {
	a := NewRankingAnalyzer()

	one := a.Analyze("example.com")
	other := a.Analyze("different-site.org")

	if reflect.DeepEqual(one, other) {
		t.Error("distinct domains produced identical metrics")
	}
}

func TestRankingNormalizesInput(t *testing.T) {
	a := NewRankingAnalyzer()

	plain := a.Analyze("example.com")
	upper := a.Analyze("  EXAMPLE.COM  ")

	if !reflect.DeepEqual(plain, upper) {
		t.Error("case and whitespace changed the seeded metrics")
	}
}

func TestRankingScoreBounds(t *testing.T) {
	a := NewRankingAnalyzer()

	domains := []string{
		"a.io",
		"example.com",
		"a-very-long-domain-name-for-bounds-checking.net",
		"tiny.co",
		"subdomain.example.org",
	}
	for _, domain := range domains {
		r := a.Analyze(domain)
		for name, score := range map[string]int{
			"domain_authority": r.DomainAuthority,
			"page_authority":   r.PageAuthority,
			"trust_flow":       r.TrustFlow,
			"citation_flow":    r.CitationFlow,
		} {
			if score < 0 || score > 100 {
				t.Errorf("%s: %s = %d, outside [0,100]", domain, name, score)
			}
		}
		if r.OrganicTrafficEstimate <= 0 {
			t.Errorf("%s: traffic estimate should be positive, got %d", domain, r.OrganicTrafficEstimate)
		}
		if r.BacklinkEstimate <= 0 {
			t.Errorf("%s: backlink estimate should be positive, got %d", domain, r.BacklinkEstimate)
		}
		if r.ReferringDomains > r.BacklinkEstimate {
			t.Errorf("%s: referring domains %d exceeds backlinks %d", domain, r.ReferringDomains, r.BacklinkEstimate)
		}
	}
}

func TestBaseScoreFavorsCommonTLDs(t *testing.T) {
	com := baseScore("site12.com")
	xyz := baseScore("site12.xyz")
	if com <= xyz {
		t.Errorf("baseScore: .com (%d) should outrank .xyz (%d) for equal length", com, xyz)
	}
	if got := baseScore("an-extremely-long-domain-name-that-should-hit-the-cap.com"); got != 80 {
		t.Errorf("baseScore cap = %d, want 80", got)
	}
}

func TestDomainSeedStable(t *testing.T) {
	if domainSeed("example.com") != domainSeed("example.com") {
		t.Error("seed not stable for identical input")
	}
	if s := domainSeed("anything.example"); s >= 1000 {
		t.Errorf("seed %d outside [0,1000)", s)
	}
}
