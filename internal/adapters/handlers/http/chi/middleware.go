package chi

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"family-timeline/internal/adapters/handlers/http/httpjson"
	"family-timeline/internal/core/domain"
	"family-timeline/internal/core/port"

	"github.com/go-chi/chi/v5/middleware"
)

// LoggerMiddleware is a custom logging middleware
func LoggerMiddleware(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				if r.URL.Path != "/health" {

					l.Info("http_request",
						"request_id", middleware.GetReqID(r.Context()),
						"method", r.Method,
						"path", r.URL.Path,
						"status", ww.Status(),
						"duration", time.Since(start),
					)
				}
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// SessionMiddleware rejects requests without a valid session cookie
func SessionMiddleware(service port.AuthService, cookieName string, l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				httpjson.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			if err := service.VerifySession(r.Context(), cookie.Value); err != nil {
				if !errors.Is(err, domain.ErrUnauthorized) {
					l.Error("error verifying session", "error", err)
				}
				httpjson.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RealIP sets RemoteAddr to the client host. X-Forwarded-For and X-Real-IP are
// honoured only when the socket peer is a trusted proxy.
func RealIP(trusted []netip.Prefix) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			peer := remoteHost(r.RemoteAddr)
			if addr, err := netip.ParseAddr(peer); err == nil && isTrusted(addr, trusted) {
				if ip := forwardedFor(r.Header, trusted); ip != "" {
					peer = ip
				}
			}
			r.RemoteAddr = peer
			next.ServeHTTP(w, r)
		})
	}
}

func remoteHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}

func isTrusted(addr netip.Addr, trusted []netip.Prefix) bool {
	addr = addr.Unmap()
	for _, prefix := range trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// forwardedFor walks X-Forwarded-For from the right and returns the first hop that
// is not a trusted proxy. Entries left of it were written by the client.
func forwardedFor(h http.Header, trusted []netip.Prefix) string {
	var hops []netip.Addr
	for _, value := range h.Values("X-Forwarded-For") {
		for _, part := range strings.Split(value, ",") {
			addr, err := netip.ParseAddr(strings.TrimSpace(part))
			if err != nil {
				return ""
			}
			hops = append(hops, addr)
		}
	}

	for i := len(hops) - 1; i >= 0; i-- {
		if !isTrusted(hops[i], trusted) {
			return hops[i].Unmap().String()
		}
	}
	if len(hops) > 0 {
		return hops[0].Unmap().String()
	}

	if addr, err := netip.ParseAddr(strings.TrimSpace(h.Get("X-Real-IP"))); err == nil {
		return addr.Unmap().String()
	}
	return ""
}
