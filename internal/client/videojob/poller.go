package videojob

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// JobGetter fetches a job status; *Client implements it
type JobGetter interface {
	GetJob(ctx context.Context, id uuid.UUID) (*Job, error)
}

// Poller polls a job until it reaches a terminal status
type Poller struct {
	getter     JobGetter
	newBackoff func() *Backoff
	logger     *slog.Logger
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewPoller creates a Poller with the default backoff schedule
func NewPoller(getter JobGetter, logger *slog.Logger) *Poller {
	return &Poller{
		getter:     getter,
		newBackoff: NewBackoff,
		logger:     logger,
		sleep:      sleepContext,
	}
}

// Poll fetches the job right away, then again after each delay, until the job
// is done or failed or ctx ends. onUpdate is called with every status received.
// A failed fetch is retried after the current delay without growing it.
func (p *Poller) Poll(ctx context.Context, id uuid.UUID, onUpdate func(*Job)) (*Job, error) {
	backoff := p.newBackoff()

	for {
		job, err := p.getter.GetJob(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			delay := backoff.Current()
			p.logger.Warn("poll failed, retrying", "job_id", id, "error", err, "delay", delay)
			if err := p.sleep(ctx, delay); err != nil {
				return nil, err
			}
			continue
		}

		if onUpdate != nil {
			onUpdate(job)
		}
		if job.Status.IsTerminal() {
			return job, nil
		}

		delay := backoff.Next()
		p.logger.Debug("job not finished", "job_id", id, "status", job.Status, "delay", delay)
		if err := p.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
