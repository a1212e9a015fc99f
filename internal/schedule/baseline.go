package schedule

import (
	"fmt"
	"strings"
	"time"

	"opsboard/internal/domain"
)

// minMilestoneNameLen is the shortest milestone name accepted at baseline lock.
const minMilestoneNameLen = 3

// CheckBaselineReadiness verifies that a project can have its baseline
// locked: at least one milestone, every milestone dated, every name at
// least three characters. Every violation is reported, not just the first,
// so the caller can show the complete list in one pass. An empty result
// means the lock may proceed.
func CheckBaselineReadiness(milestones []domain.Milestone) []domain.CheckResult {
	var violations []domain.CheckResult

	if len(milestones) == 0 {
		violations = append(violations, domain.CheckResult{
			FieldPath:     "project.milestones",
			ExpectedValue: "at least one milestone",
			ActualValue:   "0",
			Message:       "cannot lock a baseline on a project with no milestones",
			Severity:      domain.SeverityError,
		})
		return violations
	}

	for i := range milestones {
		m := &milestones[i]
		if m.CurrentEndDate == nil {
			violations = append(violations, domain.CheckResult{
				FieldPath:     fmt.Sprintf("milestones[%d].current_end_date", i),
				ExpectedValue: "a planned end date",
				Message:       fmt.Sprintf("milestone %q has no planned end date", m.Name),
				Severity:      domain.SeverityError,
			})
		}
		if len(strings.TrimSpace(m.Name)) < minMilestoneNameLen {
			violations = append(violations, domain.CheckResult{
				FieldPath:     fmt.Sprintf("milestones[%d].name", i),
				ExpectedValue: fmt.Sprintf("at least %d characters", minMilestoneNameLen),
				ActualValue:   m.Name,
				Message:       fmt.Sprintf("milestone name %q is too short", m.Name),
				Severity:      domain.SeverityError,
			})
		}
	}

	return violations
}

// ApplyBaseline freezes each milestone's original end date to its current
// end date as of the lock. The caller persists the returned milestones and
// the project flag inside one transaction; this function only computes the
// post-lock state.
func ApplyBaseline(milestones []domain.Milestone, lockedAt time.Time) []domain.Milestone {
	locked := make([]domain.Milestone, len(milestones))
	for i := range milestones {
		m := milestones[i]
		if m.CurrentEndDate != nil {
			d := *m.CurrentEndDate
			m.OriginalEndDate = &d
		}
		m.UpdatedAt = lockedAt
		locked[i] = m
	}
	return locked
}
