package auth

import (
	"context"

	"family-timeline/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
)

// VerifySession validates a session token issued by Login
func (a *authService) VerifySession(_ context.Context, token string) error {

	if token == "" {
		return domain.ErrUnauthorized
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(a.cfg.SessionSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithSubject(sessionSubject),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return domain.ErrUnauthorized
	}

	return nil
}
