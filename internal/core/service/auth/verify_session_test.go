package auth_test

import (
	"context"
	"testing"
	"time"

	"family-timeline/internal/core/domain"
	"family-timeline/internal/core/service/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestAuthService_VerifySession(t *testing.T) {
	ctx := context.Background()

	t.Run("expired token", func(t *testing.T) {
		// Arrange
		service := auth.NewAuthService(testConfig(), nil, discardLogger())
		issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		auth.SetClock(service, func() time.Time { return issued })
		token, _, err := service.Login(ctx, "k", "hunter2")
		require.NoError(t, err)

		auth.SetClock(service, func() time.Time { return issued.Add(31 * 24 * time.Hour) })

		// Act
		err = service.VerifySession(ctx, token)

		// Assert
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("signed with another secret", func(t *testing.T) {
		// Arrange
		service := auth.NewAuthService(testConfig(), nil, discardLogger())
		claims := jwt.RegisteredClaims{Subject: "family", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other"))
		require.NoError(t, err)

		// Act
		err = service.VerifySession(ctx, forged)

		// Assert
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("token without expiry", func(t *testing.T) {
		// Arrange
		service := auth.NewAuthService(testConfig(), nil, discardLogger())
		claims := jwt.RegisteredClaims{Subject: "family"}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		// Act
		err = service.VerifySession(ctx, token)

		// Assert
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("legacy cookie value", func(t *testing.T) {
		// Arrange
		service := auth.NewAuthService(testConfig(), nil, discardLogger())

		// Act
		err := service.VerifySession(ctx, "ok")

		// Assert
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("empty token", func(t *testing.T) {
		// Arrange
		service := auth.NewAuthService(testConfig(), nil, discardLogger())

		// Act
		err := service.VerifySession(ctx, "")

		// Assert
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
