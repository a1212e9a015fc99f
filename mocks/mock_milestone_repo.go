package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"opsboard/internal/domain"
)

// MockMilestoneRepo is a mock implementation of port.MilestoneRepository.
type MockMilestoneRepo struct {
	mock.Mock
}

func (m *MockMilestoneRepo) Create(ctx context.Context, milestone *domain.Milestone) error {
	args := m.Called(ctx, milestone)
	return args.Error(0)
}

func (m *MockMilestoneRepo) GetByID(ctx context.Context, milestoneID uuid.UUID) (*domain.Milestone, error) {
	args := m.Called(ctx, milestoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Milestone), args.Error(1)
}

func (m *MockMilestoneRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Milestone, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Milestone), args.Error(1)
}

func (m *MockMilestoneRepo) Update(ctx context.Context, milestone *domain.Milestone) error {
	args := m.Called(ctx, milestone)
	return args.Error(0)
}

func (m *MockMilestoneRepo) Delete(ctx context.Context, milestoneID uuid.UUID) error {
	args := m.Called(ctx, milestoneID)
	return args.Error(0)
}

func (m *MockMilestoneRepo) UpdateWithDelayLog(ctx context.Context, milestone *domain.Milestone, entry *domain.DelayLogEntry) error {
	args := m.Called(ctx, milestone, entry)
	return args.Error(0)
}
