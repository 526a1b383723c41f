package domain

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// ReadSeekCloser is the content of an output file
type ReadSeekCloser interface {
	io.ReadSeeker
	io.Closer
}

// JobEvent is emitted on every video job status transition
type JobEvent struct {
	JobID      uuid.UUID `json:"jobId"`
	Status     JobStatus `json:"status"`
	OutputURL  *string   `json:"outputUrl,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
