package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func trustedIPHandler(t *testing.T, trusted []string, remoteAddr string, headers map[string]string) string {
	t.Helper()

	var seen string
	handler := TrustedRealIP(trusted)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.RemoteAddr
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return seen
}

func TestTrustedRealIP_UsesHeaderFromTrustedProxy(t *testing.T) {
	got := trustedIPHandler(t, []string{"10.0.0.0/8"}, "10.1.2.3:4567", map[string]string{
		"X-Real-IP": "203.0.113.7",
	})
	if got != "203.0.113.7" {
		t.Errorf("RemoteAddr = %q, want header IP", got)
	}
}

func TestTrustedRealIP_IgnoresHeaderFromUntrustedClient(t *testing.T) {
	got := trustedIPHandler(t, []string{"10.0.0.0/8"}, "192.168.1.50:4567", map[string]string{
		"X-Real-IP": "203.0.113.7",
	})
	if got != "192.168.1.50:4567" {
		t.Errorf("RemoteAddr = %q, want original address kept", got)
	}
}

func TestTrustedRealIP_ForwardedForChain(t *testing.T) {
	got := trustedIPHandler(t, []string{"10.0.0.1"}, "10.0.0.1:9999", map[string]string{
		"X-Forwarded-For": "198.51.100.4, 10.0.0.1",
	})
	if got != "198.51.100.4" {
		t.Errorf("RemoteAddr = %q, want first chain entry", got)
	}
}

func TestTrustedRealIP_InvalidHeaderValueKept(t *testing.T) {
	got := trustedIPHandler(t, []string{"10.0.0.0/8"}, "10.1.2.3:4567", map[string]string{
		"X-Real-IP": "not-an-ip",
	})
	if got != "10.1.2.3:4567" {
		t.Errorf("RemoteAddr = %q, want original kept for invalid header", got)
	}
}

func TestTrustedRealIP_NoTrustedProxies(t *testing.T) {
	got := trustedIPHandler(t, nil, "172.16.0.9:1234", map[string]string{
		"X-Real-IP": "203.0.113.7",
	})
	if got != "172.16.0.9:1234" {
		t.Errorf("RemoteAddr = %q, want original address", got)
	}
}
