package auth

import (
	"log/slog"

	"family-timeline/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// CookieConfig describes the session cookie
type CookieConfig struct {
	Name   string
	Secure bool
}

// HandlerV1 is the handler for v1 session routes
type HandlerV1 struct {
	authService port.AuthService
	cookie      CookieConfig
	logger      *slog.Logger
}

// NewAuthHandlerV1 creates HandlerV1
func NewAuthHandlerV1(service port.AuthService, cookie CookieConfig, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		authService: service,
		cookie:      cookie,
		logger:      logger,
	}
}

// Register adds the session routes, which stay reachable without a session
func (h *HandlerV1) Register(router chi.Router) {
	router.Post("/login", h.LoginV1)
	router.Post("/logout", h.LogoutV1)
}
