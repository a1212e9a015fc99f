package port

import (
	"context"

	"opsboard/internal/domain"
)

// EmailSender defines the contract for sending notification emails.
type EmailSender interface {
	// SendDelayNotification tells a project owner that a baselined
	// milestone's date moved.
	SendDelayNotification(ctx context.Context, toEmail, projectName, milestoneName string, entry *domain.DelayLogEntry) error
}
