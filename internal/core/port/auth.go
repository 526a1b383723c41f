package port

import (
	"context"
	"time"
)

// LoginLimiter counts login attempts per key in a fixed window
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

// AuthService is an interface to define the shared password authentication
type AuthService interface {
	Login(ctx context.Context, clientKey, password string) (token string, expiresAt time.Time, err error)
	VerifySession(ctx context.Context, token string) error
}
