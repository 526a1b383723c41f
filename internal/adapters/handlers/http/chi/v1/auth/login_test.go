package auth_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	httpgo "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"family-timeline/internal/adapters/handlers/http/chi"
	auth2 "family-timeline/internal/adapters/handlers/http/chi/v1/auth"
	"family-timeline/internal/adapters/handlers/http/httpjson"
	"family-timeline/internal/core/domain"
	authservice "family-timeline/internal/core/service/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(service *authservice.MockAuthService, secure bool) httpgo.Handler {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := auth2.NewAuthHandlerV1(service, auth2.CookieConfig{Name: "family_auth", Secure: secure}, discardLogger)

	return chi.NewRouter(
		discardLogger,
		chi.Session{Service: service, CookieName: "family_auth"},
		chi.Handlers{Auth: handler},
		nil,
		"",
		nil,
	)
}

func findCookie(cookies []*httpgo.Cookie, name string) *httpgo.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLoginV1(t *testing.T) {

	t.Run("nominal", func(t *testing.T) {
		// Arrange
		expiresAt := time.Now().Add(30 * 24 * time.Hour)

		mockAuthService := &authservice.MockAuthService{}
		mockAuthService.On("Login", mock.Anything, "192.0.2.1", "hunter2").Return("signed-token", expiresAt, nil)

		h := newTestRouter(mockAuthService, true)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(httpgo.MethodPost, "/api/v1/login", strings.NewReader(`{"password":"hunter2"}`))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, httpgo.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())

		cookie := findCookie(w.Result().Cookies(), "family_auth")
		require.NotNil(t, cookie)
		assert.Equal(t, "signed-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, httpgo.SameSiteLaxMode, cookie.SameSite)
		assert.Equal(t, "/", cookie.Path)
		assert.InDelta(t, (30 * 24 * time.Hour).Seconds(), float64(cookie.MaxAge), 5)

		mockAuthService.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		// Arrange
		mockAuthService := &authservice.MockAuthService{}
		mockAuthService.On("Login", mock.Anything, mock.Anything, "nope").Return("", time.Time{}, domain.ErrUnauthorized)

		h := newTestRouter(mockAuthService, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(httpgo.MethodPost, "/api/v1/login", strings.NewReader(`{"password":"nope"}`))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, httpgo.StatusUnauthorized, w.Code)
		var response httpjson.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, "Unauthorized", response.Error)
		assert.Nil(t, findCookie(w.Result().Cookies(), "family_auth"))
	})

	t.Run("throttled", func(t *testing.T) {
		// Arrange
		mockAuthService := &authservice.MockAuthService{}
		mockAuthService.On("Login", mock.Anything, mock.Anything, mock.Anything).
			Return("", time.Time{}, fmt.Errorf("%w: retry in 10m0s", domain.ErrTooManyAttempts))

		h := newTestRouter(mockAuthService, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(httpgo.MethodPost, "/api/v1/login", strings.NewReader(`{"password":"x"}`))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, httpgo.StatusTooManyRequests, w.Code)
	})

	t.Run("real ip is the throttle key", func(t *testing.T) {
		// Arrange
		mockAuthService := &authservice.MockAuthService{}
		mockAuthService.On("Login", mock.Anything, "203.0.113.7", "x").Return("", time.Time{}, domain.ErrUnauthorized)

		h := newTestRouter(mockAuthService, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(httpgo.MethodPost, "/api/v1/login", strings.NewReader(`{"password":"x"}`))
		req.Header.Set("X-Real-IP", "203.0.113.7")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, httpgo.StatusUnauthorized, w.Code)
		mockAuthService.AssertExpectations(t)
	})

	t.Run("invalid body", func(t *testing.T) {
		// Arrange
		mockAuthService := &authservice.MockAuthService{}
		h := newTestRouter(mockAuthService, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(httpgo.MethodPost, "/api/v1/login", strings.NewReader(`password=x`))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, httpgo.StatusBadRequest, w.Code)
		mockAuthService.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("service error", func(t *testing.T) {
		// Arrange
		mockAuthService := &authservice.MockAuthService{}
		mockAuthService.On("Login", mock.Anything, mock.Anything, mock.Anything).Return("", time.Time{}, errors.New("signing failed"))

		h := newTestRouter(mockAuthService, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(httpgo.MethodPost, "/api/v1/login", strings.NewReader(`{"password":"x"}`))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, httpgo.StatusInternalServerError, w.Code)
	})
}

func TestLogoutV1(t *testing.T) {
	// Arrange
	mockAuthService := &authservice.MockAuthService{}
	h := newTestRouter(mockAuthService, false)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(httpgo.MethodPost, "/api/v1/logout", nil)

	// Act
	h.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, httpgo.StatusOK, w.Code)
	cookie := findCookie(w.Result().Cookies(), "family_auth")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	mockAuthService.AssertNotCalled(t, "VerifySession", mock.Anything, mock.Anything)
}
