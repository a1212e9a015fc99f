package schedule_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/domain"
	"opsboard/internal/schedule"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func validMilestone(name string, end *time.Time) domain.Milestone {
	return domain.Milestone{
		ID:             uuid.New(),
		ProjectID:      uuid.New(),
		Name:           name,
		CurrentEndDate: end,
		Status:         domain.MilestoneNotStarted,
	}
}

func TestCheckBaselineReadiness(t *testing.T) {
	t.Run("no_milestones_refuses", func(t *testing.T) {
		violations := schedule.CheckBaselineReadiness(nil)
		require.Len(t, violations, 1)
		assert.Equal(t, "project.milestones", violations[0].FieldPath)
	})

	t.Run("valid_set_passes", func(t *testing.T) {
		ms := []domain.Milestone{
			validMilestone("Design review", datePtr(2025, time.October, 1)),
			validMilestone("FAT", datePtr(2025, time.November, 15)),
		}
		assert.Empty(t, schedule.CheckBaselineReadiness(ms))
	})

	t.Run("missing_date_reported", func(t *testing.T) {
		ms := []domain.Milestone{
			validMilestone("Design review", nil),
		}
		violations := schedule.CheckBaselineReadiness(ms)
		require.Len(t, violations, 1)
		assert.Equal(t, "milestones[0].current_end_date", violations[0].FieldPath)
	})

	t.Run("short_name_reported", func(t *testing.T) {
		ms := []domain.Milestone{
			validMilestone("ab", datePtr(2025, time.October, 1)),
		}
		violations := schedule.CheckBaselineReadiness(ms)
		require.Len(t, violations, 1)
		assert.Equal(t, "milestones[0].name", violations[0].FieldPath)
	})

	t.Run("whitespace_only_name_is_short", func(t *testing.T) {
		ms := []domain.Milestone{
			validMilestone("   a   ", datePtr(2025, time.October, 1)),
		}
		assert.Len(t, schedule.CheckBaselineReadiness(ms), 1)
	})

	// every violation is reported, not just the first
	t.Run("all_violations_itemized", func(t *testing.T) {
		ms := []domain.Milestone{
			validMilestone("ab", nil),
			validMilestone("Install", datePtr(2025, time.December, 1)),
			validMilestone("x", nil),
		}
		violations := schedule.CheckBaselineReadiness(ms)
		assert.Len(t, violations, 4)
	})
}

func TestApplyBaseline(t *testing.T) {
	lockedAt := time.Date(2025, time.September, 1, 10, 0, 0, 0, time.UTC)

	t.Run("original_frozen_to_current", func(t *testing.T) {
		ms := []domain.Milestone{
			validMilestone("Design review", datePtr(2025, time.October, 1)),
			validMilestone("FAT", datePtr(2025, time.November, 15)),
		}
		locked := schedule.ApplyBaseline(ms, lockedAt)

		require.Len(t, locked, 2)
		for i := range locked {
			require.NotNil(t, locked[i].OriginalEndDate)
			assert.Equal(t, *locked[i].CurrentEndDate, *locked[i].OriginalEndDate)
			assert.Equal(t, lockedAt, locked[i].UpdatedAt)
		}
	})

	t.Run("input_not_mutated", func(t *testing.T) {
		ms := []domain.Milestone{
			validMilestone("Design review", datePtr(2025, time.October, 1)),
		}
		_ = schedule.ApplyBaseline(ms, lockedAt)
		assert.Nil(t, ms[0].OriginalEndDate)
	})
}
