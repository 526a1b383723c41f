package encoder

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockEncoder struct {
	mock.Mock
}

func NewMockEncoder() *MockEncoder {
	return &MockEncoder{}
}

func (m *MockEncoder) Render(ctx context.Context, outPath string) error {
	args := m.Called(ctx, outPath)
	return args.Error(0)
}
