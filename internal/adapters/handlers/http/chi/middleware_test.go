package chi_test

import (
	httpgo "net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"family-timeline/internal/adapters/handlers/http/chi"

	"github.com/stretchr/testify/assert"
)

func TestRealIP(t *testing.T) {
	trusted := []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8"), netip.MustParsePrefix("fd00::/8")}

	cases := []struct {
		name       string
		trusted    []netip.Prefix
		remoteAddr string
		headers    map[string][]string
		expected   string
	}{
		{name: "direct client", remoteAddr: "203.0.113.7:4000", expected: "203.0.113.7"},
		{
			name:       "forwarding headers from an untrusted peer",
			trusted:    trusted,
			remoteAddr: "203.0.113.7:4000",
			headers:    map[string][]string{"X-Forwarded-For": {"198.51.100.1"}, "X-Real-Ip": {"198.51.100.2"}},
			expected:   "203.0.113.7",
		},
		{
			name:       "no trusted proxies configured",
			remoteAddr: "10.0.0.2:4000",
			headers:    map[string][]string{"X-Forwarded-For": {"198.51.100.1"}},
			expected:   "10.0.0.2",
		},
		{
			name:       "trusted proxy",
			trusted:    trusted,
			remoteAddr: "10.0.0.2:4000",
			headers:    map[string][]string{"X-Forwarded-For": {"198.51.100.1"}},
			expected:   "198.51.100.1",
		},
		{
			name:       "rightmost untrusted hop wins",
			trusted:    trusted,
			remoteAddr: "10.0.0.2:4000",
			headers:    map[string][]string{"X-Forwarded-For": {"192.0.2.9, 198.51.100.1", "10.0.0.3"}},
			expected:   "198.51.100.1",
		},
		{
			name:       "every hop trusted",
			trusted:    trusted,
			remoteAddr: "10.0.0.2:4000",
			headers:    map[string][]string{"X-Forwarded-For": {"10.0.0.4, 10.0.0.3"}},
			expected:   "10.0.0.4",
		},
		{
			name:       "malformed hop keeps the peer",
			trusted:    trusted,
			remoteAddr: "10.0.0.2:4000",
			headers:    map[string][]string{"X-Forwarded-For": {"not-an-ip, 198.51.100.1"}},
			expected:   "10.0.0.2",
		},
		{
			name:       "x-real-ip from a trusted proxy",
			trusted:    trusted,
			remoteAddr: "[fd00::1]:4000",
			headers:    map[string][]string{"X-Real-Ip": {"198.51.100.3"}},
			expected:   "198.51.100.3",
		},
		{
			name:       "ipv4-mapped peer",
			trusted:    trusted,
			remoteAddr: "[::ffff:10.0.0.2]:4000",
			headers:    map[string][]string{"X-Forwarded-For": {"198.51.100.1"}},
			expected:   "198.51.100.1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var seen string
			h := chi.RealIP(tc.trusted)(httpgo.HandlerFunc(func(_ httpgo.ResponseWriter, r *httpgo.Request) {
				seen = r.RemoteAddr
			}))
			req := httptest.NewRequest(httpgo.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, values := range tc.headers {
				for _, v := range values {
					req.Header.Add(k, v)
				}
			}

			// Act
			h.ServeHTTP(httptest.NewRecorder(), req)

			// Assert
			assert.Equal(t, tc.expected, seen)
		})
	}
}
