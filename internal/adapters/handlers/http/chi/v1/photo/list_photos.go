package photo

import (
	"net/http"
	"strconv"

	"family-timeline/internal/adapters/handlers/http/httpjson"
	"family-timeline/internal/core/domain"

	"github.com/google/uuid"
)

// V1ListPhotosResponse is one page of photos
type V1ListPhotosResponse struct {
	Items      []V1Photo  `json:"items"`
	NextCursor *uuid.UUID `json:"nextCursor"`
}

// ListPhotosV1 lists photos newest first. A missing or unparsable limit falls back to the default.
func (h *HandlerV1) ListPhotosV1(w http.ResponseWriter, r *http.Request) {

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = domain.DefaultPhotoPageSize
	}

	var cursorPtr *uuid.UUID
	if cursor := r.URL.Query().Get("cursor"); cursor != "" {
		parsed, parseErr := uuid.Parse(cursor)
		if parseErr != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid cursor")
			return
		}
		cursorPtr = &parsed
	}

	photos, nextCursor, err := h.photoService.ListPhotos(r.Context(), limit, cursorPtr)
	switch {
	case err != nil:
		h.logger.Error("error listing photos", "error", err)
		httpjson.InternalError(w)
		return
	default:
		items := make([]V1Photo, 0, len(photos))
		for _, p := range photos {
			items = append(items, toV1Photo(p))
		}
		httpjson.Write(w, http.StatusOK, V1ListPhotosResponse{Items: items, NextCursor: nextCursor})
		return
	}
}
