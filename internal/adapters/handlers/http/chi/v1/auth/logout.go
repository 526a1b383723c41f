package auth

import (
	"net/http"

	"family-timeline/internal/adapters/handlers/http/httpjson"
)

// LogoutV1 clears the session cookie
func (h *HandlerV1) LogoutV1(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	httpjson.Write(w, http.StatusOK, httpjson.OKResponse{OK: true})
}
