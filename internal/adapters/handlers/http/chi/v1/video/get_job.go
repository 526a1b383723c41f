package video

import (
	"errors"
	"net/http"

	"family-timeline/internal/adapters/handlers/http/httpjson"
	"family-timeline/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetJobV1 returns the current state of a job
func (h *HandlerV1) GetJobV1(w http.ResponseWriter, r *http.Request) {

	id, parseErr := uuid.Parse(chi.URLParam(r, "jobID"))
	if parseErr != nil {
		httpjson.Error(w, http.StatusNotFound, "video job not found")
		return
	}

	job, err := h.videoService.GetJob(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrVideoJobNotFound):
		httpjson.Error(w, http.StatusNotFound, "video job not found")
		return
	case err != nil:
		h.logger.Error("error getting video job", "error", err, "job_id", id)
		httpjson.InternalError(w)
		return
	default:
		httpjson.Write(w, http.StatusOK, toV1VideoJob(*job))
		return
	}
}
