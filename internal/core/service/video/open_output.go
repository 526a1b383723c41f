package video

import (
	"context"
	"errors"

	"family-timeline/internal/core/domain"

	"github.com/google/uuid"
)

// OpenOutput opens the rendered file of a done job; the caller closes its content
func (v *videoService) OpenOutput(ctx context.Context, id uuid.UUID) (*domain.OutputFile, error) {
	job, err := v.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrVideoJobNotFound) {
			return nil, domain.ErrVideoFileNotFound
		}
		return nil, err
	}
	if job.Status != domain.JobStatusDone {
		return nil, domain.ErrVideoFileNotFound
	}

	return v.outputs.Open(id)
}
