package photo

import "family-timeline/internal/core/port"

type photoService struct {
	repo port.PhotoRepository
}

// NewPhotoService creates a new photo service
func NewPhotoService(repo port.PhotoRepository) port.PhotoService {
	return &photoService{repo: repo}
}
