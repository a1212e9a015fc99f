package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"opsboard/internal/domain"
	"opsboard/internal/schedule"
)

func entry(delta int, attribution domain.DelayAttribution) domain.DelayLogEntry {
	return domain.DelayLogEntry{DeltaDays: delta, Attribution: attribution}
}

func TestStats(t *testing.T) {
	t.Run("empty_log", func(t *testing.T) {
		assert.Equal(t, schedule.DelayStats{}, schedule.Stats(nil))
	})

	t.Run("positive_deltas_accumulate", func(t *testing.T) {
		s := schedule.Stats([]domain.DelayLogEntry{
			entry(14, domain.AttributionExternalVendor),
			entry(7, domain.AttributionInternalTeam),
		})
		assert.Equal(t, 2, s.Entries)
		assert.Equal(t, 21, s.TotalSlipDays)
		assert.Equal(t, 21, s.NetDeltaDays)
		assert.Equal(t, 7, s.InternalDays)
		assert.Equal(t, 14, s.ExternalDays)
	})

	// a pull-forward reduces the net but never erases recorded slip
	t.Run("pull_forward_only_affects_net", func(t *testing.T) {
		s := schedule.Stats([]domain.DelayLogEntry{
			entry(14, domain.AttributionExternalVendor),
			entry(-5, domain.AttributionInternalTeam),
		})
		assert.Equal(t, 14, s.TotalSlipDays)
		assert.Equal(t, 9, s.NetDeltaDays)
		assert.Equal(t, 0, s.InternalDays)
		assert.Equal(t, 14, s.ExternalDays)
	})

	t.Run("attribution_split", func(t *testing.T) {
		s := schedule.Stats([]domain.DelayLogEntry{
			entry(3, domain.AttributionInternalTeam),
			entry(4, domain.AttributionInternalProcess),
			entry(5, domain.AttributionExternalClient),
			entry(6, domain.AttributionExternalVendor),
			entry(7, domain.AttributionExternalOther),
		})
		assert.Equal(t, 7, s.InternalDays)
		assert.Equal(t, 18, s.ExternalDays)
		assert.Equal(t, 25, s.TotalSlipDays)
		assert.Equal(t, s.TotalSlipDays, s.InternalDays+s.ExternalDays)
	})
}
