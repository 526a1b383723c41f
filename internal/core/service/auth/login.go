package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"family-timeline/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Login checks the shared password and issues a signed session token
func (a *authService) Login(ctx context.Context, clientKey, password string) (string, time.Time, error) {

	if a.limiter != nil {
		allowed, retryAfter, err := a.limiter.Allow(ctx, clientKey)
		if err != nil {
			a.logger.Warn("login limiter unavailable", "error", err)
		} else if !allowed {
			return "", time.Time{}, fmt.Errorf("%w: retry in %s", domain.ErrTooManyAttempts, retryAfter.Round(time.Second))
		}
	}

	if !a.passwordMatches(password) {
		return "", time.Time{}, domain.ErrUnauthorized
	}

	now := a.now()
	expiresAt := now.Add(a.cfg.SessionTTL)
	claims := jwt.RegisteredClaims{
		Subject:   sessionSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.cfg.SessionSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session: %w", err)
	}

	return token, expiresAt, nil
}

func (a *authService) passwordMatches(password string) bool {
	if password == "" {
		return false
	}
	if a.cfg.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.cfg.PasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(a.cfg.Password), []byte(password)) == 1
}
