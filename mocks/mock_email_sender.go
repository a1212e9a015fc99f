package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"opsboard/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendDelayNotification(ctx context.Context, toEmail, projectName, milestoneName string, entry *domain.DelayLogEntry) error {
	args := m.Called(ctx, toEmail, projectName, milestoneName, entry)
	return args.Error(0)
}
