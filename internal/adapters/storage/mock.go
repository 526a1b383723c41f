package storage

import (
	"context"

	"family-timeline/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUploadSigner struct {
	mock.Mock
}

func NewMockUploadSigner() *MockUploadSigner {
	return &MockUploadSigner{}
}

func (m *MockUploadSigner) Sign(ctx context.Context, folder string) (*domain.UploadCredential, error) {
	args := m.Called(ctx, folder)
	return args.Get(0).(*domain.UploadCredential), args.Error(1)
}

type MockOutputStore struct {
	mock.Mock
}

func NewMockOutputStore() *MockOutputStore {
	return &MockOutputStore{}
}

func (m *MockOutputStore) TempPath(id uuid.UUID) string {
	args := m.Called(id)
	return args.String(0)
}

func (m *MockOutputStore) Commit(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockOutputStore) Discard(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockOutputStore) Open(id uuid.UUID) (*domain.OutputFile, error) {
	args := m.Called(id)
	return args.Get(0).(*domain.OutputFile), args.Error(1)
}
