package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the status of a video job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusDone       JobStatus = "done"
	JobStatusFailed     JobStatus = "failed"
)

// IsTerminal reports whether no further transition can happen
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusDone || s == JobStatusFailed
}

// CanTransitionTo enforces pending -> processing -> (done | failed)
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	switch s {
	case JobStatusPending:
		return next == JobStatusProcessing
	case JobStatusProcessing:
		return next == JobStatusDone || next == JobStatusFailed
	default:
		return false
	}
}

// VideoJob represents a requested video compilation
type VideoJob struct {
	ID        uuid.UUID
	Status    JobStatus
	OutputURL *string
	DateFrom  time.Time
	DateTo    time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OutputFile is a rendered video opened for reading
type OutputFile struct {
	Name    string
	Size    int64
	ModTime time.Time
	Content ReadSeekCloser
}
