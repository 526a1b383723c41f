package video

import (
	"log/slog"
	"time"

	"family-timeline/internal/core/domain"
	"family-timeline/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlerV1 is the handler for v1 videos routes
type HandlerV1 struct {
	videoService port.VideoService
	logger       *slog.Logger
}

// NewVideoHandlerV1 creates HandlerV1
func NewVideoHandlerV1(service port.VideoService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		videoService: service,
		logger:       logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.CreateJobV1)
	router.Get("/file/{jobID}", h.GetFileV1)
	router.Get("/{jobID}", h.GetJobV1)

	return router
}

// V1VideoJob is the JSON representation of a video job
type V1VideoJob struct {
	ID        uuid.UUID        `json:"id"`
	Status    domain.JobStatus `json:"status"`
	OutputURL *string          `json:"outputUrl"`
	DateFrom  time.Time        `json:"dateFrom"`
	DateTo    time.Time        `json:"dateTo"`
	CreatedAt time.Time        `json:"createdAt"`
}

func toV1VideoJob(j domain.VideoJob) V1VideoJob {
	return V1VideoJob{
		ID:        j.ID,
		Status:    j.Status,
		OutputURL: j.OutputURL,
		DateFrom:  j.DateFrom.UTC(),
		DateTo:    j.DateTo.UTC(),
		CreatedAt: j.CreatedAt.UTC(),
	}
}
