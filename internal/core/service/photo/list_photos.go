package photo

import (
	"context"

	"family-timeline/internal/core/domain"

	"github.com/google/uuid"
)

func (p *photoService) ListPhotos(ctx context.Context, limit int, cursor *uuid.UUID) ([]domain.Photo, *uuid.UUID, error) {

	photos, nextCursor, err := p.repo.List(ctx, domain.ClampPageSize(limit), cursor)
	if err != nil {
		return nil, nil, err
	}

	return photos, nextCursor, nil
}
