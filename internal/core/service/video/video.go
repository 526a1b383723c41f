package video

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"family-timeline/internal/config"
	"family-timeline/internal/core/domain"
	"family-timeline/internal/core/port"

	"github.com/google/uuid"
)

type videoService struct {
	repo      port.VideoJobRepository
	encoder   port.Encoder
	outputs   port.OutputStore
	publisher port.JobEventPublisher
	cfg       config.VideoConfig
	logger    *slog.Logger

	renders sync.WaitGroup
}

// NewVideoService creates a new video job service.
// publisher may be nil, in which case job events are not emitted.
func NewVideoService(
	repo port.VideoJobRepository,
	encoder port.Encoder,
	outputs port.OutputStore,
	publisher port.JobEventPublisher,
	cfg config.VideoConfig,
	logger *slog.Logger,
) port.VideoService {
	return &videoService{
		repo:      repo,
		encoder:   encoder,
		outputs:   outputs,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}

// Wait blocks until every render started by CreateJob has finished
func (v *videoService) Wait() {
	v.renders.Wait()
}

func (v *videoService) transition(ctx context.Context, id uuid.UUID, from, to domain.JobStatus, outputURL *string) error {
	if err := v.repo.Transition(ctx, id, from, to, outputURL); err != nil {
		return fmt.Errorf("transition %s -> %s: %w", from, to, err)
	}
	v.publish(ctx, domain.JobEvent{JobID: id, Status: to, OutputURL: outputURL, OccurredAt: time.Now().UTC()})
	return nil
}

func (v *videoService) publish(ctx context.Context, event domain.JobEvent) {
	if v.publisher == nil {
		return
	}
	if err := v.publisher.Publish(ctx, event); err != nil {
		v.logger.Warn("failed to publish job event", "job_id", event.JobID, "status", event.Status, "error", err)
	}
}
