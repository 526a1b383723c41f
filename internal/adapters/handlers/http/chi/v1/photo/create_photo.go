package photo

import (
	"errors"
	"net/http"

	"family-timeline/internal/adapters/handlers/http/httpjson"
	"family-timeline/internal/core/domain"
)

// V1CreatePhotoRequest confirms an upload done on the media host
type V1CreatePhotoRequest struct {
	PublicID    string  `json:"publicId"`
	URL         string  `json:"url"`
	TakenAt     string  `json:"takenAt"`
	Description *string `json:"description"`
}

// CreatePhotoV1 records an uploaded photo
func (h *HandlerV1) CreatePhotoV1(w http.ResponseWriter, r *http.Request) {

	var req V1CreatePhotoRequest
	if err := httpjson.Decode(r, &req, false); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	newPhoto := domain.NewPhoto{
		PublicID:    req.PublicID,
		URL:         req.URL,
		Description: req.Description,
	}
	if req.TakenAt != "" {
		takenAt, err := httpjson.ParseTime(req.TakenAt)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid takenAt")
			return
		}
		newPhoto.TakenAt = takenAt
	}

	photo, err := h.photoService.CreatePhoto(r.Context(), newPhoto)
	switch {
	case errors.Is(err, domain.ErrMissingPhotoFields):
		httpjson.Error(w, http.StatusBadRequest, "Missing required fields: publicId, url, takenAt")
		return
	case err != nil:
		h.logger.Error("error creating photo", "error", err)
		httpjson.InternalError(w)
		return
	default:
		httpjson.Write(w, http.StatusCreated, toV1Photo(*photo))
		return
	}
}
