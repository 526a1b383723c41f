package ratelimit

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockLimiter struct {
	mock.Mock
}

func NewMockLimiter() *MockLimiter {
	return &MockLimiter{}
}

func (m *MockLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Get(1).(time.Duration), args.Error(2)
}
