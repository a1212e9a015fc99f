package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/domain"
	"opsboard/internal/schedule"
)

func slippedMilestone(name string, original, current *time.Time) domain.Milestone {
	m := validMilestone(name, current)
	m.OriginalEndDate = original
	return m
}

func TestCascadeRisks(t *testing.T) {
	t.Run("empty_project", func(t *testing.T) {
		assert.Empty(t, schedule.CascadeRisks(nil))
	})

	t.Run("first_milestone_carries_zero_risk", func(t *testing.T) {
		ms := []domain.Milestone{
			slippedMilestone("Design", datePtr(2025, time.October, 1), datePtr(2025, time.October, 11)),
		}
		risks := schedule.CascadeRisks(ms)
		require.Len(t, risks, 1)
		assert.Equal(t, 10, risks[0].OwnSlipDays)
		assert.Equal(t, 0, risks[0].RiskDays)
		assert.False(t, risks[0].AtRisk)
	})

	t.Run("slip_cascades_to_later_milestones", func(t *testing.T) {
		ms := []domain.Milestone{
			slippedMilestone("Design", datePtr(2025, time.October, 1), datePtr(2025, time.October, 11)),
			slippedMilestone("FAT", datePtr(2025, time.November, 1), datePtr(2025, time.November, 1)),
			slippedMilestone("Dispatch", datePtr(2025, time.December, 1), datePtr(2025, time.December, 1)),
		}
		risks := schedule.CascadeRisks(ms)
		require.Len(t, risks, 3)

		assert.Equal(t, "FAT", risks[1].Name)
		assert.Equal(t, 0, risks[1].OwnSlipDays)
		assert.Equal(t, 10, risks[1].RiskDays)
		assert.True(t, risks[1].AtRisk)

		assert.Equal(t, 10, risks[2].RiskDays)
		assert.True(t, risks[2].AtRisk)
	})

	t.Run("carried_risk_is_max_not_sum", func(t *testing.T) {
		ms := []domain.Milestone{
			slippedMilestone("Design", datePtr(2025, time.October, 1), datePtr(2025, time.October, 8)),
			slippedMilestone("Procure", datePtr(2025, time.October, 20), datePtr(2025, time.November, 4)),
			slippedMilestone("FAT", datePtr(2025, time.December, 1), datePtr(2025, time.December, 1)),
		}
		risks := schedule.CascadeRisks(ms)
		require.Len(t, risks, 3)

		assert.Equal(t, 7, risks[1].RiskDays)
		assert.Equal(t, 15, risks[1].OwnSlipDays)
		assert.False(t, risks[1].AtRisk)

		assert.Equal(t, 15, risks[2].RiskDays)
		assert.True(t, risks[2].AtRisk)
	})

	t.Run("milestones_sorted_by_current_date", func(t *testing.T) {
		ms := []domain.Milestone{
			slippedMilestone("Dispatch", datePtr(2025, time.December, 1), datePtr(2025, time.December, 1)),
			slippedMilestone("Design", datePtr(2025, time.October, 1), datePtr(2025, time.October, 11)),
		}
		risks := schedule.CascadeRisks(ms)
		require.Len(t, risks, 2)
		assert.Equal(t, "Design", risks[0].Name)
		assert.Equal(t, "Dispatch", risks[1].Name)
		assert.True(t, risks[1].AtRisk)
	})

	t.Run("pull_forward_is_not_slip", func(t *testing.T) {
		ms := []domain.Milestone{
			slippedMilestone("Design", datePtr(2025, time.October, 11), datePtr(2025, time.October, 1)),
			slippedMilestone("FAT", datePtr(2025, time.November, 1), datePtr(2025, time.November, 1)),
		}
		risks := schedule.CascadeRisks(ms)
		require.Len(t, risks, 2)
		assert.Equal(t, 0, risks[0].OwnSlipDays)
		assert.False(t, risks[1].AtRisk)
	})

	t.Run("unbaselined_milestone_has_no_slip", func(t *testing.T) {
		ms := []domain.Milestone{
			slippedMilestone("Design", nil, datePtr(2025, time.October, 11)),
		}
		risks := schedule.CascadeRisks(ms)
		require.Len(t, risks, 1)
		assert.Equal(t, 0, risks[0].OwnSlipDays)
	})

	t.Run("undated_milestones_skipped", func(t *testing.T) {
		ms := []domain.Milestone{
			slippedMilestone("Design", datePtr(2025, time.October, 1), datePtr(2025, time.October, 11)),
			validMilestone("Unplanned", nil),
		}
		assert.Len(t, schedule.CascadeRisks(ms), 1)
	})
}
