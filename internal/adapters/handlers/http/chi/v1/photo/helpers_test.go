package photo_test

import (
	"io"
	"log/slog"
	httpgo "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"family-timeline/internal/adapters/handlers/http/chi"
	photo2 "family-timeline/internal/adapters/handlers/http/chi/v1/photo"
	authservice "family-timeline/internal/core/service/auth"
	photoservice "family-timeline/internal/core/service/photo"

	"github.com/stretchr/testify/mock"
)

const sessionToken = "valid-session"

func newTestRouter(t *testing.T, service *photoservice.MockPhotoService) httpgo.Handler {
	t.Helper()

	mockAuthService := &authservice.MockAuthService{}
	mockAuthService.On("VerifySession", mock.Anything, sessionToken).Return(nil)

	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := photo2.NewPhotoHandlerV1(service, discardLogger)

	return chi.NewRouter(
		discardLogger,
		chi.Session{Service: mockAuthService, CookieName: "family_auth"},
		chi.Handlers{Photo: handler},
		nil,
		"",
		nil,
	)
}

func newAuthedRequest(method, target, body string) *httpgo.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.AddCookie(&httpgo.Cookie{Name: "family_auth", Value: sessionToken})
	return req
}
