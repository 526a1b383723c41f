package photo

import (
	"context"

	"family-timeline/internal/core/domain"

	"github.com/google/uuid"
)

func (p *photoService) UpdatePhoto(ctx context.Context, id uuid.UUID, patch domain.PhotoPatch) (*domain.Photo, error) {

	if patch.IsEmpty() {
		return nil, domain.ErrNothingToUpdate
	}

	return p.repo.Update(ctx, id, patch)
}
