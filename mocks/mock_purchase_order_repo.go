package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"opsboard/internal/domain"
)

// MockPurchaseOrderRepo is a mock implementation of port.PurchaseOrderRepository.
type MockPurchaseOrderRepo struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepo) Create(ctx context.Context, po *domain.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepo) GetByID(ctx context.Context, poID uuid.UUID) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, poID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepo) ListByProject(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]domain.PurchaseOrder, int, error) {
	args := m.Called(ctx, projectID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.PurchaseOrder), args.Int(1), args.Error(2)
}

func (m *MockPurchaseOrderRepo) List(ctx context.Context, status domain.POStatus, offset, limit int) ([]domain.PurchaseOrder, int, error) {
	args := m.Called(ctx, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.PurchaseOrder), args.Int(1), args.Error(2)
}

func (m *MockPurchaseOrderRepo) UpdateStatus(ctx context.Context, poID uuid.UUID, status domain.POStatus) error {
	args := m.Called(ctx, poID, status)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepo) Delete(ctx context.Context, poID uuid.UUID) error {
	args := m.Called(ctx, poID)
	return args.Error(0)
}
