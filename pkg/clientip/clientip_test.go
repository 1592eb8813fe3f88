package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/inputcheck/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{"remote addr with port", nil, "192.0.2.1:1234", "192.0.2.1"},
		{"remote addr without port", nil, "192.0.2.1", "192.0.2.1"},
		{"ipv6 remote addr", nil, "[2001:db8::1]:443", "2001:db8::1"},
		{"cloudflare header wins", map[string]string{"CF-Connecting-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1"}, "192.0.2.1:1", "203.0.113.7"},
		{"rightmost forwarded entry", map[string]string{"X-Forwarded-For": "198.51.100.1, 198.51.100.2"}, "192.0.2.1:1", "198.51.100.2"},
		{"spoofed leftmost entry is ignored", map[string]string{"X-Forwarded-For": "10.0.0.1, 203.0.113.50"}, "192.0.2.1:1", "203.0.113.50"},
		{"rightmost valid forwarded entry", map[string]string{"X-Forwarded-For": "198.51.100.1, 198.51.100.2, garbage"}, "192.0.2.1:1", "198.51.100.2"},
		{"real ip header", map[string]string{"X-Real-IP": " 198.51.100.9 "}, "192.0.2.1:1", "198.51.100.9"},
		{"invalid headers fall back", map[string]string{"CF-Connecting-IP": "nope", "X-Real-IP": "999.1.1.1"}, "192.0.2.1:1", "192.0.2.1"},
		{"nothing valid", nil, "not-an-ip", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.GetIP(r))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		trustProxy bool
		want       string
	}{
		{"ignores headers by default", false, "192.0.2.1"},
		{"honours headers behind a proxy", true, "203.0.113.7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := clientip.Middleware(tt.trustProxy)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = clientip.GetIPFromContext(r.Context())
			}))

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = "192.0.2.1:5555"
			r.Header.Set("X-Forwarded-For", "203.0.113.7")
			h.ServeHTTP(httptest.NewRecorder(), r)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetIPFromContext_Empty(t *testing.T) {
	t.Parallel()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, clientip.GetIPFromContext(r.Context()))
}
