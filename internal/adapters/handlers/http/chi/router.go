package chi

import (
	"context"
	"log/slog"
	"net/http"
	"net/netip"
	"time"

	"family-timeline/internal/adapters/handlers/http/chi/v1/auth"
	"family-timeline/internal/adapters/handlers/http/chi/v1/photo"
	"family-timeline/internal/adapters/handlers/http/chi/v1/upload"
	"family-timeline/internal/adapters/handlers/http/chi/v1/video"
	"family-timeline/internal/adapters/handlers/http/httpjson"
	"family-timeline/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers groups the v1 handlers mounted by the router
type Handlers struct {
	Auth   *auth.HandlerV1
	Photo  *photo.HandlerV1
	Upload *upload.HandlerV1
	Video  *video.HandlerV1
}

// Pinger reports database reachability for /health
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Session describes how requests are authenticated
type Session struct {
	Service    port.AuthService
	CookieName string
}

// NewRouter builds http.Handler with chi. Forwarding headers are trusted only from trustedProxies.
func NewRouter(logger *slog.Logger, session Session, handlers Handlers, db Pinger, env string, trustedProxies []netip.Prefix) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(RealIP(trustedProxies))
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.RequestSize(1 << 20)) //1mb, bodies are small JSON documents

	if env != "prod" && env != "PROD" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Content-Range", "Accept-Ranges"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		if handlers.Auth != nil {
			handlers.Auth.Register(r)
		}

		r.Group(func(r chi.Router) {
			r.Use(SessionMiddleware(session.Service, session.CookieName, logger))

			if handlers.Photo != nil {
				r.Mount("/photos", handlers.Photo.Routes())
			}
			if handlers.Upload != nil {
				r.Mount("/uploads", handlers.Upload.Routes())
			}
			if handlers.Video != nil {
				r.Mount("/videos", handlers.Video.Routes())
			}
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			DB:        "disconnected",
			Timestamp: time.Now().UTC(),
		}
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err == nil {
				resp.DB = "connected"
			}
		}
		httpjson.Write(w, http.StatusOK, resp)
	})

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	DB        string    `json:"db"`
	Timestamp time.Time `json:"timestamp"`
}
