package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPOSequenceRepo is a mock implementation of port.POSequenceRepository.
type MockPOSequenceRepo struct {
	mock.Mock
}

func (m *MockPOSequenceRepo) Next(ctx context.Context, scope string) (int, error) {
	args := m.Called(ctx, scope)
	return args.Int(0), args.Error(1)
}
