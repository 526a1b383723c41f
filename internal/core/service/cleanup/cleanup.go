package cleanup

import (
	"log/slog"
	"time"

	"family-timeline/internal/core/port"
)

type cleanupService struct {
	jobRepo    port.VideoJobRepository
	outputs    port.OutputStore
	staleAfter time.Duration
	logger     *slog.Logger
}

// NewCleanupService creates a new cleanup service.
// Processing jobs untouched for longer than staleAfter are considered orphaned.
func NewCleanupService(jobRepo port.VideoJobRepository, outputs port.OutputStore, staleAfter time.Duration, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		jobRepo:    jobRepo,
		outputs:    outputs,
		staleAfter: staleAfter,
		logger:     logger,
	}
}
