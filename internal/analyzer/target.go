package analyzer

import (
	"fmt"
	"net/url"
	"strings"
)

// TargetInfo contains parsed target information.
type TargetInfo struct {
	Original string // Original target string
	Scheme   string // http or https
	Host     string // Hostname without protocol, path, or port
	Port     string // Port if specified
	Path     string // Path if specified
	FullURL  string // Full normalized URL (for HTTP requests)
}

// ParseTarget parses a target string into structured components.
// Accepted input formats:
//   - example.com
//   - https://example.com
//   - http://example.com:8080/path
//
// Targets without a scheme are normalized to https, matching what browsers
// and audit tooling assume for bare hostnames.
func ParseTarget(target string) (*TargetInfo, error) {
	trimmed := strings.TrimSpace(target)
	if trimmed == "" {
		return nil, fmt.Errorf("empty target")
	}

	candidate := trimmed
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return nil, fmt.Errorf("parse target %q: %w", target, err)
	}
	if parsed.Hostname() == "" {
		return nil, fmt.Errorf("target %q has no host", target)
	}
	if strings.ContainsAny(parsed.Hostname(), " \t") {
		return nil, fmt.Errorf("target %q has an invalid host", target)
	}

	return &TargetInfo{
		Original: target,
		Scheme:   parsed.Scheme,
		Host:     parsed.Hostname(),
		Port:     parsed.Port(),
		Path:     parsed.Path,
		FullURL:  parsed.String(),
	}, nil
}

// Domain returns the hostname with a leading "www." stripped, the form used
// for DNS, WHOIS, and ranking lookups.
func (t *TargetInfo) Domain() string {
	return strings.TrimPrefix(t.Host, "www.")
}

// NormalizeURL validates a target and returns its full URL form.
func NormalizeURL(target string) (string, error) {
	info, err := ParseTarget(target)
	if err != nil {
		return "", err
	}
	return info.FullURL, nil
}

// ExtractHost returns just the hostname from a target, or "" when the target
// cannot be parsed. Useful for DNS lookups where only the bare name matters.
func ExtractHost(target string) string {
	info, err := ParseTarget(target)
	if err != nil {
		return ""
	}
	return info.Host
}
