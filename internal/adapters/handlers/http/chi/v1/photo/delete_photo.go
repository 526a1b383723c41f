package photo

import (
	"errors"
	"net/http"

	"family-timeline/internal/adapters/handlers/http/httpjson"
	"family-timeline/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// DeletePhotoV1 removes a photo row
func (h *HandlerV1) DeletePhotoV1(w http.ResponseWriter, r *http.Request) {

	id, parseErr := uuid.Parse(chi.URLParam(r, "photoID"))
	if parseErr != nil {
		httpjson.Error(w, http.StatusNotFound, "photo not found")
		return
	}

	err := h.photoService.DeletePhoto(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrPhotoNotFound):
		httpjson.Error(w, http.StatusNotFound, "photo not found")
		return
	case err != nil:
		h.logger.Error("error deleting photo", "error", err, "photo_id", id)
		httpjson.InternalError(w)
		return
	default:
		httpjson.Write(w, http.StatusOK, httpjson.OKResponse{OK: true})
		return
	}
}
