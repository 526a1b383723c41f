package photo

import (
	"encoding/json"
	"errors"
	"net/http"

	"family-timeline/internal/adapters/handlers/http/httpjson"
	"family-timeline/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// nullableString records whether a JSON field was present, null included
type nullableString struct {
	Set   bool
	Value *string
}

func (n *nullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// V1UpdatePhotoRequest is a partial update; an explicit null description clears it
type V1UpdatePhotoRequest struct {
	TakenAt     *string        `json:"takenAt"`
	Description nullableString `json:"description"`
}

// UpdatePhotoV1 edits the metadata of a photo
func (h *HandlerV1) UpdatePhotoV1(w http.ResponseWriter, r *http.Request) {

	id, parseErr := uuid.Parse(chi.URLParam(r, "photoID"))
	if parseErr != nil {
		httpjson.Error(w, http.StatusNotFound, "photo not found")
		return
	}

	var req V1UpdatePhotoRequest
	if err := httpjson.Decode(r, &req, false); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := domain.PhotoPatch{
		SetDescription: req.Description.Set,
		Description:    req.Description.Value,
	}
	if req.TakenAt != nil && *req.TakenAt != "" {
		takenAt, err := httpjson.ParseTime(*req.TakenAt)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid takenAt")
			return
		}
		patch.TakenAt = &takenAt
	}

	photo, err := h.photoService.UpdatePhoto(r.Context(), id, patch)
	switch {
	case errors.Is(err, domain.ErrNothingToUpdate):
		httpjson.Error(w, http.StatusBadRequest, "Nothing to update")
		return
	case errors.Is(err, domain.ErrPhotoNotFound):
		httpjson.Error(w, http.StatusNotFound, "photo not found")
		return
	case err != nil:
		h.logger.Error("error updating photo", "error", err, "photo_id", id)
		httpjson.InternalError(w)
		return
	default:
		httpjson.Write(w, http.StatusOK, toV1Photo(*photo))
		return
	}
}
