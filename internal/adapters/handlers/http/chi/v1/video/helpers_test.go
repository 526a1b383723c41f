package video_test

import (
	"io"
	"log/slog"
	httpgo "net/http"
	"net/http/httptest"
	"strings"

	"family-timeline/internal/adapters/handlers/http/chi"
	video2 "family-timeline/internal/adapters/handlers/http/chi/v1/video"
	authservice "family-timeline/internal/core/service/auth"
	videoservice "family-timeline/internal/core/service/video"

	"github.com/stretchr/testify/mock"
)

func newTestRouter(service *videoservice.MockVideoService) httpgo.Handler {
	mockAuthService := &authservice.MockAuthService{}
	mockAuthService.On("VerifySession", mock.Anything, "valid-session").Return(nil)

	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := video2.NewVideoHandlerV1(service, discardLogger)

	return chi.NewRouter(
		discardLogger,
		chi.Session{Service: mockAuthService, CookieName: "family_auth"},
		chi.Handlers{Video: handler},
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
	req.AddCookie(&httpgo.Cookie{Name: "family_auth", Value: "valid-session"})
	return req
}

type nopSeekCloser struct {
	*strings.Reader
	closed bool
}

func (n *nopSeekCloser) Close() error {
	n.closed = true
	return nil
}
