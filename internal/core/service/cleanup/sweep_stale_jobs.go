package cleanup

import (
	"context"
	"time"
)

// SweepStaleJobs marks as failed the processing jobs whose render can no longer complete
// and removes their partial output
func (c *cleanupService) SweepStaleJobs(ctx context.Context, now time.Time) (int, error) {

	ids, err := c.jobRepo.FailStale(ctx, now.Add(-c.staleAfter))
	if err != nil {
		return 0, err
	}

	for _, id := range ids {
		c.logger.Warn("stale video job marked as failed", "job_id", id)
		if err := c.outputs.Discard(id); err != nil {
			c.logger.Error("failed to discard partial render", "job_id", id, "error", err)
		}
	}
	c.logger.Info("sweep stale jobs completed", "count", len(ids))
	return len(ids), nil
}
