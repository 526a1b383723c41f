package auth

import (
	"log/slog"
	"time"

	"family-timeline/internal/config"
	"family-timeline/internal/core/port"
)

const sessionSubject = "family"

type authService struct {
	cfg     config.AuthConfig
	limiter port.LoginLimiter
	logger  *slog.Logger
	now     func() time.Time
}

// NewAuthService creates a new auth service.
// limiter may be nil, in which case login attempts are not throttled.
func NewAuthService(cfg config.AuthConfig, limiter port.LoginLimiter, logger *slog.Logger) port.AuthService {
	return &authService{
		cfg:     cfg,
		limiter: limiter,
		logger:  logger,
		now:     time.Now,
	}
}
