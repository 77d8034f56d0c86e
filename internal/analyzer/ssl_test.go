package analyzer

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDeriveGrade(t *testing.T) {
	tests := []struct {
		name    string
		version uint16
		suite   uint16
		want    string
	}{
		{"tls13 is A+", tls.VersionTLS13, tls.TLS_AES_128_GCM_SHA256, "A+"},
		{"tls12 aead is A", tls.VersionTLS12, tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384, "A"},
		{"tls12 cbc is B", tls.VersionTLS12, tls.TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA, "B"},
		{"tls12 128-bit aead is B", tls.VersionTLS12, tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256, "B"},
		{"tls11 is C", tls.VersionTLS11, tls.TLS_RSA_WITH_AES_128_CBC_SHA, "C"},
		{"tls10 is C", tls.VersionTLS10, tls.TLS_RSA_WITH_AES_128_CBC_SHA, "C"},
		{"older is F", tls.VersionSSL30, tls.TLS_RSA_WITH_RC4_128_SHA, "F"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveGrade(tt.version, tt.suite); got != tt.want {
				t.Errorf("deriveGrade = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTLSVersionName(t *testing.T) {
	if got := tlsVersionName(tls.VersionTLS13); got != "TLS 1.3" {
		t.Errorf("tlsVersionName(TLS13) = %q", got)
	}
	if got := tlsVersionName(tls.VersionTLS10); got != "TLS 1.0" {
		t.Errorf("tlsVersionName(TLS10) = %q", got)
	}
}

func TestSSLAnalyzeAgainstLocalServer(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	host, port, err := net.SplitHostPort(server.Listener.Addr().String())
	if err != nil {
		t.Fatal(err)
	}

	a := &SSLAnalyzer{Timeout: 5 * time.Second, Port: port}
	result := a.Analyze(context.Background(), host)

	if result.Error != "" {
		t.Fatalf("unexpected error: %s", result.Error)
	}
	if !result.HasSSL {
		t.Fatal("expected HasSSL for a TLS listener")
	}
	if result.Protocol == "" || result.Grade == "" {
		t.Errorf("expected protocol and grade, got %q / %q", result.Protocol, result.Grade)
	}
	if result.Valid {
		t.Error("self-signed test certificate should not be reported as valid")
	}
}

func TestSSLAnalyzeConnectionRefused(t *testing.T) {
	a := &SSLAnalyzer{Timeout: time.Second, Port: "1"}
	result := a.Analyze(context.Background(), "127.0.0.1")

	if result.Error == "" {
		t.Fatal("expected an error for a closed port")
	}
	if result.HasSSL {
		t.Error("HasSSL should stay false when the dial fails")
	}
}
