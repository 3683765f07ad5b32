package util

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientIPIgnoresForwardedFromUntrustedPeer(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.10:4711"
	req.Header.Set("X-Forwarded-For", "198.51.100.1")

	if got := ClientIP(req, nil); got != "203.0.113.10" {
		t.Fatalf("ClientIP = %q, want direct peer", got)
	}
}

func TestClientIPUsesForwardedChainBehindTrustedProxy(t *testing.T) {
	trusted, err := NewTrustedProxies([]string{"10.0.0.0/8"})
	if err != nil {
		t.Fatalf("parse trusted proxies: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.1.2.3:8443"
	req.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.9")

	if got := ClientIP(req, trusted); got != "198.51.100.1" {
		t.Fatalf("ClientIP = %q, want first untrusted hop", got)
	}
}

func TestNewTrustedProxiesRejectsGarbage(t *testing.T) {
	if _, err := NewTrustedProxies([]string{"not-an-ip"}); err == nil {
		t.Fatal("expected parse error")
	}
}
