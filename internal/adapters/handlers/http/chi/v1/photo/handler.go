package photo

import (
	"log/slog"
	"time"

	"family-timeline/internal/core/domain"
	"family-timeline/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlerV1 is the handler for v1 photos routes
type HandlerV1 struct {
	photoService port.PhotoService
	logger       *slog.Logger
}

// NewPhotoHandlerV1 creates HandlerV1
func NewPhotoHandlerV1(service port.PhotoService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		photoService: service,
		logger:       logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.CreatePhotoV1)
	router.Get("/", h.ListPhotosV1)
	router.Patch("/{photoID}", h.UpdatePhotoV1)
	router.Delete("/{photoID}", h.DeletePhotoV1)

	return router
}

// V1Photo is the JSON representation of a photo
type V1Photo struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	PublicID    string    `json:"publicId"`
	TakenAt     time.Time `json:"takenAt"`
	Description *string   `json:"description"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

func toV1Photo(p domain.Photo) V1Photo {
	return V1Photo{
		ID:          p.ID,
		URL:         p.URL,
		PublicID:    p.PublicID,
		TakenAt:     p.TakenAt.UTC(),
		Description: p.Description,
		UploadedAt:  p.UploadedAt.UTC(),
	}
}
