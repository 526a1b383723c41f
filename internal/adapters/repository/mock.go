package repository

import (
	"context"
	"time"

	"family-timeline/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockPhotoRepository struct {
	mock.Mock
}

func NewMockPhotoRepository() *MockPhotoRepository {
	return &MockPhotoRepository{}
}

func (m *MockPhotoRepository) Create(ctx context.Context, photo domain.NewPhoto) (*domain.Photo, error) {
	args := m.Called(ctx, photo)
	return args.Get(0).(*domain.Photo), args.Error(1)
}

func (m *MockPhotoRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Photo), args.Error(1)
}

func (m *MockPhotoRepository) List(ctx context.Context, limit int, cursor *uuid.UUID) ([]domain.Photo, *uuid.UUID, error) {
	args := m.Called(ctx, limit, cursor)
	return args.Get(0).([]domain.Photo), args.Get(1).(*uuid.UUID), args.Error(2)
}

func (m *MockPhotoRepository) Update(ctx context.Context, id uuid.UUID, patch domain.PhotoPatch) (*domain.Photo, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(*domain.Photo), args.Error(1)
}

func (m *MockPhotoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockVideoJobRepository struct {
	mock.Mock
}

func NewMockVideoJobRepository() *MockVideoJobRepository {
	return &MockVideoJobRepository{}
}

func (m *MockVideoJobRepository) Create(ctx context.Context, from, to time.Time) (*domain.VideoJob, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(*domain.VideoJob), args.Error(1)
}

func (m *MockVideoJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.VideoJob, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.VideoJob), args.Error(1)
}

func (m *MockVideoJobRepository) Transition(ctx context.Context, id uuid.UUID, from, to domain.JobStatus, outputURL *string) error {
	args := m.Called(ctx, id, from, to, outputURL)
	return args.Error(0)
}

func (m *MockVideoJobRepository) FailStale(ctx context.Context, updatedBefore time.Time) ([]uuid.UUID, error) {
	args := m.Called(ctx, updatedBefore)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}
