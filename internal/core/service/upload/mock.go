package upload

import (
	"context"

	"family-timeline/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) SignUpload(ctx context.Context, folder string) (*domain.UploadCredential, error) {
	args := m.Called(ctx, folder)
	return args.Get(0).(*domain.UploadCredential), args.Error(1)
}
