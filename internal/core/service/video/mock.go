package video

import (
	"context"
	"time"

	"family-timeline/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockVideoService is a mock implementation of VideoService
type MockVideoService struct {
	mock.Mock
}

func (m *MockVideoService) CreateJob(ctx context.Context, from, to time.Time) (uuid.UUID, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockVideoService) GetJob(ctx context.Context, id uuid.UUID) (*domain.VideoJob, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.VideoJob), args.Error(1)
}

func (m *MockVideoService) OpenOutput(ctx context.Context, id uuid.UUID) (*domain.OutputFile, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.OutputFile), args.Error(1)
}

func (m *MockVideoService) Wait() {
	m.Called()
}
