package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"opsboard/internal/domain"
)

// MockBOMRepo is a mock implementation of port.BOMItemRepository.
type MockBOMRepo struct {
	mock.Mock
}

func (m *MockBOMRepo) Create(ctx context.Context, item *domain.BOMItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockBOMRepo) GetByID(ctx context.Context, itemID uuid.UUID) (*domain.BOMItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BOMItem), args.Error(1)
}

func (m *MockBOMRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.BOMItem, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BOMItem), args.Error(1)
}

func (m *MockBOMRepo) Update(ctx context.Context, item *domain.BOMItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockBOMRepo) Delete(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}
