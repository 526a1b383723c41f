package upload

import (
	"errors"
	"log/slog"
	"net/http"

	"family-timeline/internal/adapters/handlers/http/httpjson"
	"family-timeline/internal/core/domain"
	"family-timeline/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 upload routes
type HandlerV1 struct {
	uploadService port.UploadService
	logger        *slog.Logger
}

// NewUploadHandlerV1 creates HandlerV1
func NewUploadHandlerV1(service port.UploadService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		uploadService: service,
		logger:        logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/sign", h.SignUploadV1)

	return router
}

// V1SignUploadRequest is the optional body of a sign request
type V1SignUploadRequest struct {
	Folder string `json:"folder"`
}

// SignUploadV1 returns the credential a client uploads a photo with
func (h *HandlerV1) SignUploadV1(w http.ResponseWriter, r *http.Request) {

	var req V1SignUploadRequest
	if err := httpjson.Decode(r, &req, true); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	credential, err := h.uploadService.SignUpload(r.Context(), req.Folder)
	switch {
	case errors.Is(err, domain.ErrInvalidFolder):
		httpjson.Error(w, http.StatusBadRequest, "invalid folder")
		return
	case err != nil:
		h.logger.Error("error signing upload", "error", err)
		httpjson.InternalError(w)
		return
	default:
		httpjson.Write(w, http.StatusOK, credential)
		return
	}
}
