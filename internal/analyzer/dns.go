package analyzer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/miekg/dns"
)

// publicServer pairs a well-known resolver name with its IPv4 address.
type publicServer struct {
	Name string
	IP   string
}

// Public resolvers probed by the benchmark, in priority order.
var publicDNSServers = []publicServer{
	{Name: "Google", IP: "8.8.8.8"},
	{Name: "Cloudflare", IP: "1.1.1.1"},
	{Name: "Quad9", IP: "9.9.9.9"},
	{Name: "OpenDNS", IP: "208.67.222.222"},
	{Name: "Yandex", IP: "77.88.8.8"},
	{Name: "Comodo", IP: "8.26.56.26"},
}

const defaultBenchmarkServers = 4

// DNSAnalyzer resolves the record set for a domain and optionally times a
// handful of public resolvers against it.
type DNSAnalyzer struct {
	Timeout    time.Duration
	Nameserver string // resolver address (host:port); defaults to Google DNS
	MaxServers int    // resolvers probed by the benchmark
}

// NewDNSAnalyzer returns a DNSAnalyzer with conservative timeouts so a single
// slow resolver cannot stall the audit.
func NewDNSAnalyzer() *DNSAnalyzer {
	return &DNSAnalyzer{
		Timeout:    5 * time.Second,
		MaxServers: defaultBenchmarkServers,
	}
}

func (d *DNSAnalyzer) resolverAddr() string {
	if d.Nameserver != "" {
		if strings.Contains(d.Nameserver, ":") {
			return d.Nameserver
		}
		return d.Nameserver + ":53"
	}
	return "8.8.8.8:53"
}

func (d *DNSAnalyzer) client() *dns.Client {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &dns.Client{Timeout: timeout}
}

// Analyze performs the full record lookup for domain. Per-record failures
// degrade to empty fields; only a failed A lookup marks the result errored.
func (d *DNSAnalyzer) Analyze(ctx context.Context, domain string) *DNSResult {
	result := &DNSResult{}
	client := d.client()
	addr := d.resolverAddr()

	start := time.Now()
	aRecords, err := d.queryA(ctx, client, addr, domain)
	result.ResponseTimeMs = float64(time.Since(start)) / float64(time.Millisecond)
	if err != nil {
		result.Error = fmt.Sprintf("DNS lookup failed: %v", err)
		return result
	}
	result.ARecords = aRecords
	if len(aRecords) > 0 {
		result.IPAddress = aRecords[0]
	}

	result.AAAARecords = d.queryAAAA(ctx, client, addr, domain)
	result.MXRecords = d.queryMX(ctx, client, addr, domain)
	result.NSRecords = d.queryNS(ctx, client, addr, domain)
	result.TXTRecords = d.queryTXT(ctx, client, addr, domain)
	result.CNAME = d.queryCNAME(ctx, client, addr, domain)
	if result.IPAddress != "" {
		result.PTRRecords = d.queryPTR(ctx, client, addr, result.IPAddress)
	}

	result.ServerBenchmark = d.BenchmarkServers(ctx, domain)

	return result
}

func (d *DNSAnalyzer) exchange(ctx context.Context, client *dns.Client, addr, name string, qtype uint16) (*dns.Msg, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), qtype)
	msg.RecursionDesired = true
	resp, _, err := client.ExchangeContext(ctx, msg, addr)
	if err != nil {
		return nil, err
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("query %s for %s: %s", dns.TypeToString[qtype], name, dns.RcodeToString[resp.Rcode])
	}
	return resp, nil
}

func (d *DNSAnalyzer) queryA(ctx context.Context, client *dns.Client, addr, domain string) ([]string, error) {
	resp, err := d.exchange(ctx, client, addr, domain, dns.TypeA)
	if err != nil {
		return nil, err
	}
	var records []string
	for _, ans := range resp.Answer {
		if a, ok := ans.(*dns.A); ok {
			records = append(records, a.A.String())
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no A records found for %s", domain)
	}
	return records, nil
}

func (d *DNSAnalyzer) queryAAAA(ctx context.Context, client *dns.Client, addr, domain string) []string {
	resp, err := d.exchange(ctx, client, addr, domain, dns.TypeAAAA)
	if err != nil {
		return nil
	}
	var records []string
	for _, ans := range resp.Answer {
		if aaaa, ok := ans.(*dns.AAAA); ok {
			records = append(records, aaaa.AAAA.String())
		}
	}
	return records
}

func (d *DNSAnalyzer) queryMX(ctx context.Context, client *dns.Client, addr, domain string) []MXRecord {
	resp, err := d.exchange(ctx, client, addr, domain, dns.TypeMX)
	if err != nil {
		return nil
	}
	var records []MXRecord
	for _, ans := range resp.Answer {
		if mx, ok := ans.(*dns.MX); ok {
			records = append(records, MXRecord{Host: strings.TrimSuffix(mx.Mx, "."), Preference: mx.Preference})
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Preference < records[j].Preference })
	return records
}

func (d *DNSAnalyzer) queryNS(ctx context.Context, client *dns.Client, addr, domain string) []string {
	resp, err := d.exchange(ctx, client, addr, domain, dns.TypeNS)
	if err != nil {
		return nil
	}
	var records []string
	for _, ans := range resp.Answer {
		if ns, ok := ans.(*dns.NS); ok {
			records = append(records, strings.TrimSuffix(ns.Ns, "."))
		}
	}
	sort.Strings(records)
	return records
}

func (d *DNSAnalyzer) queryTXT(ctx context.Context, client *dns.Client, addr, domain string) []string {
	resp, err := d.exchange(ctx, client, addr, domain, dns.TypeTXT)
	if err != nil {
		return nil
	}
	var records []string
	for _, ans := range resp.Answer {
		if txt, ok := ans.(*dns.TXT); ok {
			records = append(records, strings.Join(txt.Txt, ""))
		}
	}
	return records
}

func (d *DNSAnalyzer) queryCNAME(ctx context.Context, client *dns.Client, addr, domain string) string {
	resp, err := d.exchange(ctx, client, addr, domain, dns.TypeCNAME)
	if err != nil {
		return ""
	}
	for _, ans := range resp.Answer {
		if cname, ok := ans.(*dns.CNAME); ok {
			return strings.TrimSuffix(cname.Target, ".")
		}
	}
	return ""
}

func (d *DNSAnalyzer) queryPTR(ctx context.Context, client *dns.Client, addr, ip string) []string {
	reverse, err := dns.ReverseAddr(ip)
	if err != nil {
		return nil
	}
	msg := new(dns.Msg)
	msg.SetQuestion(reverse, dns.TypePTR)
	msg.RecursionDesired = true
	resp, _, err := client.ExchangeContext(ctx, msg, addr)
	if err != nil || resp.Rcode != dns.RcodeSuccess {
		return nil
	}
	var records []string
	for _, ans := range resp.Answer {
		if ptr, ok := ans.(*dns.PTR); ok {
			records = append(records, strings.TrimSuffix(ptr.Ptr, "."))
		}
	}
	return records
}

// BenchmarkServers times an A lookup for domain against up to MaxServers
// public resolvers. Successful probes come back sorted fastest first, with
// failed probes appended after them.
func (d *DNSAnalyzer) BenchmarkServers(ctx context.Context, domain string) []ServerProbe {
	max := d.MaxServers
	if max <= 0 || max > len(publicDNSServers) {
		max = defaultBenchmarkServers
	}

	// Shorter timeout than record lookups; a slow probe is itself the answer.
	client := &dns.Client{Timeout: 3 * time.Second}

	probes := make([]ServerProbe, 0, max)
	for _, server := range publicDNSServers[:max] {
		probe := ServerProbe{ServerName: server.Name, ServerIP: server.IP}

		msg := new(dns.Msg)
		msg.SetQuestion(dns.Fqdn(domain), dns.TypeA)
		msg.RecursionDesired = true

		start := time.Now()
		resp, _, err := client.ExchangeContext(ctx, msg, server.IP+":53")
		elapsed := float64(time.Since(start)) / float64(time.Millisecond)

		switch {
		case err != nil:
			probe.Status = StatusFailed
			probe.Error = err.Error()
		case resp.Rcode != dns.RcodeSuccess:
			probe.Status = StatusFailed
			probe.Error = dns.RcodeToString[resp.Rcode]
		default:
			probe.Status = StatusSuccess
			probe.ResponseTimeMs = elapsed
			for _, ans := range resp.Answer {
				if a, ok := ans.(*dns.A); ok {
					probe.ResolvedIP = a.A.String()
					break
				}
			}
		}
		probes = append(probes, probe)
	}

	return SortProbes(probes)
}

// SortProbes orders successful probes ascending by response time and appends
// all failed probes after them, preserving their relative order.
func SortProbes(probes []ServerProbe) []ServerProbe {
	successes := make([]ServerProbe, 0, len(probes))
	failures := make([]ServerProbe, 0)
	for _, p := range probes {
		if p.Status == StatusSuccess {
			successes = append(successes, p)
		} else {
			failures = append(failures, p)
		}
	}
	sort.SliceStable(successes, func(i, j int) bool {
		return successes[i].ResponseTimeMs < successes[j].ResponseTimeMs
	})
	return append(successes, failures...)
}
