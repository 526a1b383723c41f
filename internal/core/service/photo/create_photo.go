package photo

import (
	"context"

	"family-timeline/internal/core/domain"
)

// CreatePhoto records a photo already uploaded to the media host
func (p *photoService) CreatePhoto(ctx context.Context, photo domain.NewPhoto) (*domain.Photo, error) {

	if photo.PublicID == "" || photo.URL == "" || photo.TakenAt.IsZero() {
		return nil, domain.ErrMissingPhotoFields
	}

	if photo.Description != nil && *photo.Description == "" {
		photo.Description = nil
	}

	return p.repo.Create(ctx, photo)
}
