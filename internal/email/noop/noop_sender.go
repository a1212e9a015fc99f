package noop

import (
	"context"
	"log"

	"opsboard/internal/domain"
	"opsboard/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs notifications to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendDelayNotification(_ context.Context, toEmail, projectName, milestoneName string, entry *domain.DelayLogEntry) error {
	log.Printf("[NOOP EMAIL] Delay notification to %s: project %q milestone %q moved %+d days (%s): %s",
		toEmail, projectName, milestoneName, entry.DeltaDays, entry.Attribution, entry.Reason)
	return nil
}
