package auth

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, clientKey, password string) (string, time.Time, error) {
	args := m.Called(ctx, clientKey, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockAuthService) VerifySession(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
