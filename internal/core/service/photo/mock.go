package photo

import (
	"context"

	"family-timeline/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPhotoService is a mock implementation of PhotoService
type MockPhotoService struct {
	mock.Mock
}

func (m *MockPhotoService) CreatePhoto(ctx context.Context, photo domain.NewPhoto) (*domain.Photo, error) {
	args := m.Called(ctx, photo)
	return args.Get(0).(*domain.Photo), args.Error(1)
}

func (m *MockPhotoService) ListPhotos(ctx context.Context, limit int, cursor *uuid.UUID) ([]domain.Photo, *uuid.UUID, error) {
	args := m.Called(ctx, limit, cursor)
	return args.Get(0).([]domain.Photo), args.Get(1).(*uuid.UUID), args.Error(2)
}

func (m *MockPhotoService) UpdatePhoto(ctx context.Context, id uuid.UUID, patch domain.PhotoPatch) (*domain.Photo, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(*domain.Photo), args.Error(1)
}

func (m *MockPhotoService) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
