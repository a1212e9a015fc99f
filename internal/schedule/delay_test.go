package schedule_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/domain"
	"opsboard/internal/schedule"
)

func TestDayDelta(t *testing.T) {
	nov1 := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	nov15 := time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 14, schedule.DayDelta(nov1, nov15))
	assert.Equal(t, -14, schedule.DayDelta(nov15, nov1))
	assert.Equal(t, 0, schedule.DayDelta(nov1, nov1))

	// time-of-day is irrelevant; the delta is in whole calendar days
	lateNov1 := time.Date(2025, time.November, 1, 23, 30, 0, 0, time.UTC)
	earlyNov15 := time.Date(2025, time.November, 15, 0, 15, 0, 0, time.UTC)
	assert.Equal(t, 14, schedule.DayDelta(lateNov1, earlyNov15))
}

func TestValidateDelayEdit(t *testing.T) {
	old := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	next := time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC)

	valid := schedule.DelayEdit{
		PreviousDate: old,
		NewDate:      next,
		Reason:       "vendor shipment held at customs",
		Attribution:  domain.AttributionExternalVendor,
	}

	t.Run("valid_edit_passes", func(t *testing.T) {
		assert.Empty(t, schedule.ValidateDelayEdit(valid))
	})

	t.Run("pull_forward_is_valid", func(t *testing.T) {
		edit := valid
		edit.PreviousDate, edit.NewDate = next, old
		assert.Empty(t, schedule.ValidateDelayEdit(edit))
	})

	t.Run("unchanged_date_refused", func(t *testing.T) {
		edit := valid
		edit.NewDate = old
		violations := schedule.ValidateDelayEdit(edit)
		require.Len(t, violations, 1)
		assert.Equal(t, "edit.new_date", violations[0].FieldPath)
	})

	t.Run("short_reason_refused", func(t *testing.T) {
		edit := valid
		edit.Reason = "slipped"
		violations := schedule.ValidateDelayEdit(edit)
		require.Len(t, violations, 1)
		assert.Equal(t, "edit.reason", violations[0].FieldPath)
	})

	t.Run("reason_trimmed_before_measuring", func(t *testing.T) {
		edit := valid
		edit.Reason = "   short reason   " + strings.Repeat(" ", 30)
		violations := schedule.ValidateDelayEdit(edit)
		require.Len(t, violations, 1)
		assert.Equal(t, "edit.reason", violations[0].FieldPath)
	})

	t.Run("twenty_trimmed_chars_is_enough", func(t *testing.T) {
		edit := valid
		edit.Reason = "  " + strings.Repeat("x", 20) + "  "
		assert.Empty(t, schedule.ValidateDelayEdit(edit))
	})

	t.Run("missing_attribution_refused", func(t *testing.T) {
		edit := valid
		edit.Attribution = ""
		violations := schedule.ValidateDelayEdit(edit)
		require.Len(t, violations, 1)
		assert.Equal(t, "edit.attribution", violations[0].FieldPath)
	})

	t.Run("unknown_attribution_refused", func(t *testing.T) {
		edit := valid
		edit.Attribution = "act_of_god"
		assert.Len(t, schedule.ValidateDelayEdit(edit), 1)
	})

	t.Run("all_violations_itemized", func(t *testing.T) {
		edit := schedule.DelayEdit{PreviousDate: old, NewDate: old}
		assert.Len(t, schedule.ValidateDelayEdit(edit), 3)
	})
}

func TestNewDelayEntry(t *testing.T) {
	projectID := uuid.New()
	milestoneID := uuid.New()
	actor := uuid.New()
	now := time.Date(2025, time.November, 3, 9, 30, 0, 0, time.UTC)

	edit := schedule.DelayEdit{
		PreviousDate: time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC),
		NewDate:      time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC),
		Reason:       "  vendor shipment held at customs  ",
		Attribution:  domain.AttributionExternalVendor,
	}

	entry := schedule.NewDelayEntry(projectID, milestoneID, edit, actor, now)

	assert.Equal(t, projectID, entry.ProjectID)
	assert.Equal(t, milestoneID, entry.MilestoneID)
	assert.Equal(t, 14, entry.DeltaDays)
	assert.Equal(t, "vendor shipment held at customs", entry.Reason)
	assert.Equal(t, domain.AttributionExternalVendor, entry.Attribution)
	assert.Equal(t, actor, entry.CreatedBy)
	assert.Equal(t, now, entry.CreatedAt)
	assert.NotEqual(t, uuid.Nil, entry.ID)
}
