package video

import (
	"errors"
	"net/http"
	"time"

	"family-timeline/internal/adapters/handlers/http/httpjson"
	"family-timeline/internal/core/domain"

	"github.com/google/uuid"
)

// V1CreateJobRequest asks for a compilation of the given range
type V1CreateJobRequest struct {
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
}

// V1CreateJobResponse carries the id to poll
type V1CreateJobResponse struct {
	ID uuid.UUID `json:"id"`
}

const missingRangeMessage = "Missing required fields: dateFrom, dateTo"

// CreateJobV1 records a pending job and starts its render in the background
func (h *HandlerV1) CreateJobV1(w http.ResponseWriter, r *http.Request) {

	var req V1CreateJobRequest
	if err := httpjson.Decode(r, &req, false); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.DateFrom == "" || req.DateTo == "" {
		httpjson.Error(w, http.StatusBadRequest, missingRangeMessage)
		return
	}

	from, err := httpjson.ParseTime(req.DateFrom)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid dateFrom")
		return
	}
	to, err := httpjson.ParseTime(req.DateTo)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid dateTo")
		return
	}

	id, err := h.videoService.CreateJob(r.Context(), from, to)
	switch {
	case errors.Is(err, domain.ErrMissingDateRange):
		httpjson.Error(w, http.StatusBadRequest, missingRangeMessage)
		return
	case errors.Is(err, domain.ErrInvalidDateRange):
		httpjson.Error(w, http.StatusBadRequest, domain.ErrInvalidDateRange.Error())
		return
	case err != nil:
		h.logger.Error("error creating video job", "error", err)
		httpjson.InternalError(w)
		return
	default:
		h.logger.Info("video job created", "job_id", id, "date_from", from.Format(time.DateOnly), "date_to", to.Format(time.DateOnly))
		httpjson.Write(w, http.StatusCreated, V1CreateJobResponse{ID: id})
		return
	}
}
