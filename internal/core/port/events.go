package port

import (
	"context"

	"family-timeline/internal/core/domain"
)

// JobEventPublisher is an interface to define a job event publisher (nats, ...)
type JobEventPublisher interface {
	Publish(ctx context.Context, event domain.JobEvent) error
	Close() error
}
