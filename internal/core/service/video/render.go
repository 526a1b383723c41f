package video

import (
	"context"
	"log/slog"

	"family-timeline/internal/core/domain"

	"github.com/google/uuid"
)

func (v *videoService) render(ctx context.Context, id uuid.UUID) {
	logger := v.logger.With("job_id", id)

	if err := v.transition(ctx, id, domain.JobStatusPending, domain.JobStatusProcessing, nil); err != nil {
		// the sweeper only reclaims processing rows, so this job stays pending
		logger.Error("failed to start render, job left pending", "error", err)
		return
	}

	renderCtx, cancel := context.WithTimeout(ctx, v.cfg.RenderTimeout)
	defer cancel()

	if err := v.encoder.Render(renderCtx, v.outputs.TempPath(id)); err != nil {
		logger.Error("video render failed", "error", err)
		v.fail(ctx, logger, id)
		return
	}

	if err := v.outputs.Commit(id); err != nil {
		logger.Error("failed to commit rendered video", "error", err)
		v.fail(ctx, logger, id)
		return
	}

	outputURL := v.cfg.OutputURLPrefix + "/" + id.String()
	if err := v.transition(ctx, id, domain.JobStatusProcessing, domain.JobStatusDone, &outputURL); err != nil {
		logger.Error("failed to mark job as done", "error", err)
		return
	}
	logger.Info("video render completed", "output_url", outputURL)
}

// fail drops the partial render and marks the job failed
func (v *videoService) fail(ctx context.Context, logger *slog.Logger, id uuid.UUID) {
	if err := v.outputs.Discard(id); err != nil {
		logger.Error("failed to discard partial render", "error", err)
	}
	if err := v.transition(ctx, id, domain.JobStatusProcessing, domain.JobStatusFailed, nil); err != nil {
		logger.Error("failed to mark job as failed", "error", err)
	}
}
