package analyzer

// Status values used across analyzer results and score checks.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"

	CheckPass    = "pass"
	CheckWarning = "warning"
	CheckError   = "error"
)

// MXRecord is a single mail exchanger entry.
type MXRecord struct {
	Host       string `json:"host"`
	Preference uint16 `json:"preference"`
}

// ServerProbe is the timing result for one public DNS server.
type ServerProbe struct {
	ServerName     string  `json:"server_name"`
	ServerIP       string  `json:"server_ip"`
	ResponseTimeMs float64 `json:"response_time_ms,omitempty"`
	ResolvedIP     string  `json:"resolved_ip,omitempty"`
	Status         string  `json:"status"`
	Error          string  `json:"error,omitempty"`
}

// DNSResult aggregates record lookups and resolver timing for one domain.
type DNSResult struct {
	IPAddress       string        `json:"ip_address,omitempty"`
	ARecords        []string      `json:"a_records,omitempty"`
	AAAARecords     []string      `json:"aaaa_records,omitempty"`
	MXRecords       []MXRecord    `json:"mx_records,omitempty"`
	NSRecords       []string      `json:"ns_records,omitempty"`
	TXTRecords      []string      `json:"txt_records,omitempty"`
	CNAME           string        `json:"cname,omitempty"`
	PTRRecords      []string      `json:"ptr_records,omitempty"`
	ResponseTimeMs  float64       `json:"dns_response_time_ms,omitempty"`
	ServerBenchmark []ServerProbe `json:"dns_server_performance,omitempty"`
	Error           string        `json:"error,omitempty"`
}

// WhoisResult carries the registration metadata surfaced to reports.
type WhoisResult struct {
	Registrar      string   `json:"registrar,omitempty"`
	CreatedDate    string   `json:"creation_date,omitempty"`
	UpdatedDate    string   `json:"updated_date,omitempty"`
	ExpirationDate string   `json:"expiration_date,omitempty"`
	NameServers    []string `json:"name_servers,omitempty"`
	Statuses       []string `json:"status,omitempty"`
	Error          string   `json:"error,omitempty"`
}

// SSLResult describes the certificate presented on port 443.
type SSLResult struct {
	HasSSL             bool     `json:"has_ssl"`
	Valid              bool     `json:"ssl_valid"`
	Protocol           string   `json:"protocol_version,omitempty"`
	CipherSuite        string   `json:"cipher_suite,omitempty"`
	Grade              string   `json:"ssl_grade,omitempty"`
	Subject            string   `json:"subject,omitempty"`
	Issuer             string   `json:"issuer,omitempty"`
	NotBefore          string   `json:"not_before,omitempty"`
	NotAfter           string   `json:"expiration_date,omitempty"`
	DaysUntilExpiry    int      `json:"days_until_expiry,omitempty"`
	DNSNames           []string `json:"dns_names,omitempty"`
	KeySize            int      `json:"key_size,omitempty"`
	SignatureAlgorithm string   `json:"signature_algorithm,omitempty"`
	SelfSigned         bool     `json:"self_signed,omitempty"`
	SecurityIssues     []string `json:"security_issues,omitempty"`
	Recommendations    []string `json:"recommendations,omitempty"`
	Error              string   `json:"error,omitempty"`
}

// CachePolicy captures caching-related response headers plus visibility issues.
type CachePolicy struct {
	CacheControl string   `json:"cache_control,omitempty"`
	Expires      string   `json:"expires,omitempty"`
	ETag         string   `json:"etag,omitempty"`
	LastModified string   `json:"last_modified,omitempty"`
	Issues       []string `json:"issues,omitempty"`
}

// PageSpeedScore is a coarse latency-derived score pair.
type PageSpeedScore struct {
	Mobile  int `json:"mobile"`
	Desktop int `json:"desktop"`
}

// PerformanceResult holds the single-GET timing measurement.
type PerformanceResult struct {
	ResponseTimeMs float64        `json:"response_time,omitempty"`
	StatusCode     int            `json:"status_code,omitempty"`
	PageSize       int64          `json:"page_size,omitempty"`
	RedirectCount  int            `json:"redirect_count"`
	Server         string         `json:"server,omitempty"`
	PoweredBy      string         `json:"powered_by,omitempty"`
	ContentType    string         `json:"content_type,omitempty"`
	Compression    string         `json:"compression,omitempty"`
	CacheHeaders   *CachePolicy   `json:"cache_headers,omitempty"`
	PageSpeed      PageSpeedScore `json:"pagespeed_score"`
	Error          string         `json:"error,omitempty"`
}

// ImageStats summarizes alt-text coverage.
type ImageStats struct {
	Total        int     `json:"total_images"`
	WithAlt      int     `json:"images_with_alt"`
	WithoutAlt   int     `json:"images_without_alt"`
	AltTextRatio float64 `json:"alt_text_ratio"`
}

// LinkStats summarizes anchor distribution; samples keep the first ten of each.
type LinkStats struct {
	Total          int      `json:"total_links"`
	Internal       int      `json:"internal_links"`
	External       int      `json:"external_links"`
	InternalSample []string `json:"internal_links_list,omitempty"`
	ExternalSample []string `json:"external_links_list,omitempty"`
}

// Check is one evaluated rule inside a scoring category.
type Check struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	Importance string `json:"importance"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
}

// Category accumulates checks and a clamped score.
type Category struct {
	Score    int     `json:"score"`
	MaxScore int     `json:"max_score"`
	Checks   []Check `json:"checks"`
}

// TodoItem is an actionable follow-up emitted by a failing check.
type TodoItem struct {
	Action     string `json:"action"`
	Importance string `json:"importance"`
	Category   string `json:"category"`
}

// IssueCounts tallies check outcomes across all categories.
type IssueCounts struct {
	Critical int `json:"critical"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

// PageInfo describes document-level metadata.
type PageInfo struct {
	Language string `json:"language,omitempty"`
	Charset  string `json:"charset,omitempty"`
	Doctype  string `json:"doctype,omitempty"`
	Viewport string `json:"viewport,omitempty"`
	Favicon  bool   `json:"favicon"`
}

// ScoreBreakdown is the category-level scoring report for one page.
type ScoreBreakdown struct {
	OverallScore int                  `json:"overall_score"`
	Issues       IssueCounts          `json:"issues"`
	Categories   map[string]*Category `json:"categories"`
	Todo         []TodoItem           `json:"todo_list,omitempty"`
	PageInfo     PageInfo             `json:"page_info"`
}

// SEOResult carries the scraped on-page signals plus scoring.
type SEOResult struct {
	URL             string              `json:"url"`
	Title           string              `json:"title,omitempty"`
	MetaDescription string              `json:"meta_description,omitempty"`
	MetaKeywords    string              `json:"meta_keywords,omitempty"`
	Headings        map[string][]string `json:"headings,omitempty"`
	Images          ImageStats          `json:"images"`
	Links           LinkStats           `json:"links"`
	SchemaTypes     []string            `json:"schema_markup,omitempty"`
	OpenGraph       map[string]string   `json:"open_graph,omitempty"`
	TwitterCards    map[string]string   `json:"twitter_cards,omitempty"`
	CanonicalURL    string              `json:"canonical_url,omitempty"`
	RobotsMeta      string              `json:"robots_meta,omitempty"`
	MarketingTools  []string            `json:"marketing_tools,omitempty"`
	SocialLinks     map[string]string   `json:"social_media_links,omitempty"`
	WordCount       int                 `json:"word_count"`
	StatusCode      int                 `json:"status_code,omitempty"`
	FileSize        int64               `json:"file_size,omitempty"`
	ResponseTimeMs  float64             `json:"response_time,omitempty"`
	SEOScore        int                 `json:"seo_score"`
	Breakdown       *ScoreBreakdown     `json:"analysis,omitempty"`
	Error           string              `json:"error,omitempty"`
}

// SocialSignals are synthetic share counts.
type SocialSignals struct {
	FacebookShares  int `json:"facebook_shares"`
	TwitterMentions int `json:"twitter_mentions"`
	LinkedInShares  int `json:"linkedin_shares"`
}

// CompetitiveMetrics are synthetic traffic-rank positions.
type CompetitiveMetrics struct {
	AlexaRank      int `json:"alexa_rank"`
	SimilarWebRank int `json:"similar_web_rank"`
}

// RankingResult holds synthesized industry metrics; none of these values
// comes from a real API, they are seeded from the domain string.
type RankingResult struct {
	DomainAuthority        int                `json:"domain_authority"`
	PageAuthority          int                `json:"page_authority"`
	TrustFlow              int                `json:"trust_flow"`
	CitationFlow           int                `json:"citation_flow"`
	SEOVisibility          float64            `json:"seo_visibility"`
	OrganicTrafficEstimate int                `json:"organic_traffic_estimate"`
	BacklinkEstimate       int                `json:"backlink_estimate"`
	ReferringDomains       int                `json:"referring_domains"`
	SocialSignals          SocialSignals      `json:"social_signals"`
	CompetitiveMetrics     CompetitiveMetrics `json:"competitive_metrics"`
}
