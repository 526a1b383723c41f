package port

import (
	"context"
	"time"

	"family-timeline/internal/core/domain"

	"github.com/google/uuid"
)

// VideoJobRepository is an interface to define video job repository interactions
type VideoJobRepository interface {
	Create(ctx context.Context, from, to time.Time) (*domain.VideoJob, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.VideoJob, error)
	// Transition moves a job from one status to another, failing with
	// domain.ErrInvalidTransition when the job is no longer in `from`.
	Transition(ctx context.Context, id uuid.UUID, from, to domain.JobStatus, outputURL *string) error
	FailStale(ctx context.Context, updatedBefore time.Time) ([]uuid.UUID, error)
}

// Encoder renders a video file at the given path
type Encoder interface {
	Render(ctx context.Context, outPath string) error
}

// OutputStore keeps rendered files. Renders write to TempPath and only a
// committed file can be opened.
type OutputStore interface {
	TempPath(id uuid.UUID) string
	Commit(id uuid.UUID) error
	Discard(id uuid.UUID) error
	Open(id uuid.UUID) (*domain.OutputFile, error)
}

// VideoService is an interface to define video job service
type VideoService interface {
	CreateJob(ctx context.Context, from, to time.Time) (uuid.UUID, error)
	GetJob(ctx context.Context, id uuid.UUID) (*domain.VideoJob, error)
	OpenOutput(ctx context.Context, id uuid.UUID) (*domain.OutputFile, error)
	Wait()
}
