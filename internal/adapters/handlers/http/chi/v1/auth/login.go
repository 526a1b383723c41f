package auth

import (
	"errors"
	"net"
	"net/http"
	"time"

	"family-timeline/internal/adapters/handlers/http/httpjson"
	"family-timeline/internal/core/domain"
)

// V1LoginRequest is the request to log in
type V1LoginRequest struct {
	Password string `json:"password"`
}

// LoginV1 checks the shared password and sets the session cookie
func (h *HandlerV1) LoginV1(w http.ResponseWriter, r *http.Request) {

	var req V1LoginRequest
	if err := httpjson.Decode(r, &req, false); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, expiresAt, err := h.authService.Login(r.Context(), clientIP(r), req.Password)
	switch {
	case errors.Is(err, domain.ErrTooManyAttempts):
		h.logger.Warn("login throttled", "client", clientIP(r))
		httpjson.Error(w, http.StatusTooManyRequests, "too many attempts")
		return
	case errors.Is(err, domain.ErrUnauthorized):
		httpjson.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	case err != nil:
		h.logger.Error("error logging in", "error", err)
		httpjson.InternalError(w)
		return
	default:
		http.SetCookie(w, &http.Cookie{
			Name:     h.cookie.Name,
			Value:    token,
			Path:     "/",
			Expires:  expiresAt,
			MaxAge:   int(time.Until(expiresAt).Seconds()),
			HttpOnly: true,
			Secure:   h.cookie.Secure,
			SameSite: http.SameSiteLaxMode,
		})
		httpjson.Write(w, http.StatusOK, httpjson.OKResponse{OK: true})
		return
	}
}

// clientIP is the limiter key. RealIP has usually reduced RemoteAddr to a bare host already
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
