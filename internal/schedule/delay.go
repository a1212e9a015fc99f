package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"opsboard/internal/domain"
)

// minReasonLen is the shortest accepted delay reason, after trimming.
const minReasonLen = 20

// DayDelta returns new minus old in whole days. Positive means slip,
// negative means pull-forward; both are legitimate.
func DayDelta(old, new time.Time) int {
	o := time.Date(old.Year(), old.Month(), old.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(new.Year(), new.Month(), new.Day(), 0, 0, 0, 0, time.UTC)
	return int(n.Sub(o) / (24 * time.Hour))
}

// DelayEdit describes a proposed date change against a baselined milestone.
type DelayEdit struct {
	PreviousDate time.Time
	NewDate      time.Time
	Reason       string
	Attribution  domain.DelayAttribution
}

// ValidateDelayEdit gates a date change on a baselined milestone. A valid
// submission needs a new date different from the old one, a trimmed reason
// of at least twenty characters, and one of the fixed attribution values.
// Violations are returned as a complete list; while any remain the caller
// must neither move the date nor write a log entry.
func ValidateDelayEdit(edit DelayEdit) []domain.CheckResult {
	var violations []domain.CheckResult

	if edit.NewDate.Equal(edit.PreviousDate) {
		violations = append(violations, domain.CheckResult{
			FieldPath:     "edit.new_date",
			ExpectedValue: "a date different from the current planned end date",
			ActualValue:   edit.NewDate.Format("2006-01-02"),
			Message:       "proposed date is unchanged",
			Severity:      domain.SeverityError,
		})
	}

	if reason := strings.TrimSpace(edit.Reason); len(reason) < minReasonLen {
		violations = append(violations, domain.CheckResult{
			FieldPath:     "edit.reason",
			ExpectedValue: fmt.Sprintf("at least %d characters", minReasonLen),
			ActualValue:   fmt.Sprintf("%d characters", len(reason)),
			Message:       "delay reason is required and must explain the change",
			Severity:      domain.SeverityError,
		})
	}

	if !domain.ValidDelayAttributions[edit.Attribution] {
		violations = append(violations, domain.CheckResult{
			FieldPath:     "edit.attribution",
			ExpectedValue: "one of: internal_team, internal_process, external_client, external_vendor, external_other",
			ActualValue:   string(edit.Attribution),
			Message:       "delay attribution is required",
			Severity:      domain.SeverityError,
		})
	}

	return violations
}

// NewDelayEntry builds the immutable log record for a validated edit. The
// clock and actor are passed in explicitly so the engine stays pure.
func NewDelayEntry(projectID, milestoneID uuid.UUID, edit DelayEdit, actor uuid.UUID, now time.Time) domain.DelayLogEntry {
	return domain.DelayLogEntry{
		ID:           uuid.New(),
		ProjectID:    projectID,
		MilestoneID:  milestoneID,
		PreviousDate: edit.PreviousDate,
		NewDate:      edit.NewDate,
		DeltaDays:    DayDelta(edit.PreviousDate, edit.NewDate),
		Reason:       strings.TrimSpace(edit.Reason),
		Attribution:  edit.Attribution,
		CreatedBy:    actor,
		CreatedAt:    now,
	}
}
