package video

import (
	"errors"
	"net/http"

	"family-timeline/internal/adapters/handlers/http/httpjson"
	"family-timeline/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetFileV1 streams a rendered video. Range requests are honored.
func (h *HandlerV1) GetFileV1(w http.ResponseWriter, r *http.Request) {

	id, parseErr := uuid.Parse(chi.URLParam(r, "jobID"))
	if parseErr != nil {
		httpjson.Error(w, http.StatusNotFound, domain.ErrVideoFileNotFound.Error())
		return
	}

	file, err := h.videoService.OpenOutput(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrVideoFileNotFound):
		httpjson.Error(w, http.StatusNotFound, domain.ErrVideoFileNotFound.Error())
		return
	case err != nil:
		h.logger.Error("error opening video file", "error", err, "job_id", id)
		httpjson.InternalError(w)
		return
	}
	defer file.Content.Close()

	w.Header().Set("Content-Type", "video/mp4")
	http.ServeContent(w, r, file.Name, file.ModTime, file.Content)
}
