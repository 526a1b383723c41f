package upload

import (
	"family-timeline/internal/config"
	"family-timeline/internal/core/port"
)

type uploadService struct {
	signer port.UploadSigner
	cfg    config.UploadConfig
}

// NewUploadService creates a new upload service
func NewUploadService(signer port.UploadSigner, cfg config.UploadConfig) port.UploadService {
	return &uploadService{signer: signer, cfg: cfg}
}
