package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"opsboard/internal/domain"
)

// MockDelayLogRepo is a mock implementation of port.DelayLogRepository.
type MockDelayLogRepo struct {
	mock.Mock
}

func (m *MockDelayLogRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.DelayLogEntry, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DelayLogEntry), args.Error(1)
}

func (m *MockDelayLogRepo) ListByMilestone(ctx context.Context, milestoneID uuid.UUID) ([]domain.DelayLogEntry, error) {
	args := m.Called(ctx, milestoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DelayLogEntry), args.Error(1)
}
