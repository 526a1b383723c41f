package video

import (
	"context"
	"time"

	"family-timeline/internal/core/domain"

	"github.com/google/uuid"
)

// CreateJob persists a pending job and starts its render in the background.
// The returned id is available before the render begins.
func (v *videoService) CreateJob(ctx context.Context, from, to time.Time) (uuid.UUID, error) {

	if from.IsZero() || to.IsZero() {
		return uuid.Nil, domain.ErrMissingDateRange
	}
	if from.After(to) {
		return uuid.Nil, domain.ErrInvalidDateRange
	}

	job, err := v.repo.Create(ctx, from, to)
	if err != nil {
		return uuid.Nil, err
	}

	v.publish(ctx, domain.JobEvent{JobID: job.ID, Status: domain.JobStatusPending, OccurredAt: job.CreatedAt})

	renderCtx := context.WithoutCancel(ctx)
	v.renders.Add(1)
	go func() {
		defer v.renders.Done()
		v.render(renderCtx, job.ID)
	}()

	return job.ID, nil
}
