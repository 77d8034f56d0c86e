package analyzer

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"strings"
	"time"
)

// SSLAnalyzer inspects the certificate a host presents on port 443.
type SSLAnalyzer struct {
	Timeout time.Duration
	Port    string
}

// NewSSLAnalyzer returns an SSLAnalyzer with a ten second handshake budget.
func NewSSLAnalyzer() *SSLAnalyzer {
	return &SSLAnalyzer{Timeout: 10 * time.Second, Port: "443"}
}

// Analyze dials host over TLS and extracts certificate metadata, a derived
// grade, and any security findings. A failed handshake degrades to an error
// field on the result instead of propagating.
func (s *SSLAnalyzer) Analyze(ctx context.Context, host string) *SSLResult {
	result := &SSLResult{}

	port := s.Port
	if port == "" {
		port = "443"
	}

	// Verification is done by hand below so self-signed and otherwise broken
	// certificates can still be inspected and reported on.
	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: s.Timeout},
		Config: &tls.Config{
			ServerName:         host,
			InsecureSkipVerify: true,
		},
	}

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, port))
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer conn.Close()

	tlsConn, ok := conn.(*tls.Conn)
	if !ok {
		result.Error = "unexpected connection type"
		return result
	}

	state := tlsConn.ConnectionState()
	result.HasSSL = true
	result.Protocol = tlsVersionName(state.Version)
	result.CipherSuite = tls.CipherSuiteName(state.CipherSuite)
	result.Grade = deriveGrade(state.Version, state.CipherSuite)

	if len(state.PeerCertificates) > 0 {
		cert := state.PeerCertificates[0]
		s.describeCertificate(cert, result)

		now := time.Now()
		result.Valid = cert.VerifyHostname(host) == nil &&
			now.After(cert.NotBefore) && now.Before(cert.NotAfter) &&
			!result.SelfSigned
	}

	s.appendFindings(result)

	return result
}

func (s *SSLAnalyzer) describeCertificate(cert *x509.Certificate, result *SSLResult) {
	result.Subject = cert.Subject.CommonName
	result.Issuer = cert.Issuer.CommonName
	if len(cert.Issuer.Organization) > 0 {
		result.Issuer = cert.Issuer.Organization[0]
	}
	result.NotBefore = cert.NotBefore.Format(time.RFC3339)
	result.NotAfter = cert.NotAfter.Format(time.RFC3339)
	result.DaysUntilExpiry = int(time.Until(cert.NotAfter).Hours() / 24)
	result.DNSNames = cert.DNSNames
	result.SignatureAlgorithm = cert.SignatureAlgorithm.String()
	result.SelfSigned = cert.Subject.String() == cert.Issuer.String()

	if sized, ok := cert.PublicKey.(interface{ Size() int }); ok {
		result.KeySize = sized.Size() * 8
	}
}

// appendFindings derives the issue and recommendation lists from the fields
// already collected.
func (s *SSLAnalyzer) appendFindings(result *SSLResult) {
	if result.DaysUntilExpiry < 0 && result.NotAfter != "" {
		result.SecurityIssues = append(result.SecurityIssues, "Certificate has expired")
		result.Recommendations = append(result.Recommendations, "Renew the TLS certificate immediately")
	} else if result.DaysUntilExpiry < 7 && result.NotAfter != "" {
		result.SecurityIssues = append(result.SecurityIssues, "Certificate expires in less than 7 days")
		result.Recommendations = append(result.Recommendations, "Renew the TLS certificate before it lapses")
	} else if result.DaysUntilExpiry < 30 && result.NotAfter != "" {
		result.SecurityIssues = append(result.SecurityIssues, "Certificate expires in less than 30 days")
		result.Recommendations = append(result.Recommendations, fmt.Sprintf("Certificate expires in %d days; plan for renewal", result.DaysUntilExpiry))
	}

	if result.Protocol == "TLS 1.0" || result.Protocol == "TLS 1.1" {
		result.SecurityIssues = append(result.SecurityIssues, "Using outdated TLS protocol")
		result.Recommendations = append(result.Recommendations, "Upgrade to TLS 1.2 or higher")
	}

	if result.SelfSigned {
		result.SecurityIssues = append(result.SecurityIssues, "Self-signed certificate")
		result.Recommendations = append(result.Recommendations, "Use a CA-signed certificate in production")
	}

	lowerSig := strings.ToLower(result.SignatureAlgorithm)
	if strings.Contains(lowerSig, "md5") || strings.Contains(lowerSig, "sha1") {
		result.SecurityIssues = append(result.SecurityIssues, fmt.Sprintf("Weak signature algorithm: %s", result.SignatureAlgorithm))
		result.Recommendations = append(result.Recommendations, "Use certificates signed with SHA-256 or stronger")
	}
}

// aeadSuites are the 256-bit AEAD cipher suites that qualify a TLS 1.2
// connection for an A grade; everything else on 1.2 grades B.
var aeadSuites = map[uint16]struct{}{
	tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384:   {},
	tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384: {},
	tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305:    {},
	tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305:  {},
}

// deriveGrade maps protocol version and cipher suite to a letter grade.
func deriveGrade(version uint16, suite uint16) string {
	switch {
	case version >= tls.VersionTLS13:
		return "A+"
	case version == tls.VersionTLS12:
		if _, ok := aeadSuites[suite]; ok {
			return "A"
		}
		return "B"
	case version == tls.VersionTLS11 || version == tls.VersionTLS10:
		return "C"
	default:
		return "F"
	}
}

func tlsVersionName(version uint16) string {
	switch version {
	case tls.VersionTLS10:
		return "TLS 1.0"
	case tls.VersionTLS11:
		return "TLS 1.1"
	case tls.VersionTLS12:
		return "TLS 1.2"
	case tls.VersionTLS13:
		return "TLS 1.3"
	default:
		return fmt.Sprintf("Unknown (0x%04x)", version)
	}
}
