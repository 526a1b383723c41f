package video

import (
	"context"

	"family-timeline/internal/core/domain"

	"github.com/google/uuid"
)

func (v *videoService) GetJob(ctx context.Context, id uuid.UUID) (*domain.VideoJob, error) {
	return v.repo.FindByID(ctx, id)
}
