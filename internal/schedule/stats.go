package schedule

import "opsboard/internal/domain"

// DelayStats aggregates a project's delay log. TotalSlipDays counts only
// positive deltas (pull-forwards do not cancel recorded slips); the signed
// sum is reported separately as NetDeltaDays.
type DelayStats struct {
	Entries       int `json:"entries"`
	TotalSlipDays int `json:"total_slip_days"`
	NetDeltaDays  int `json:"net_delta_days"`
	InternalDays  int `json:"internal_days"`
	ExternalDays  int `json:"external_days"`
}

// Stats computes delay statistics over a set of log entries.
func Stats(entries []domain.DelayLogEntry) DelayStats {
	s := DelayStats{Entries: len(entries)}
	for i := range entries {
		e := &entries[i]
		s.NetDeltaDays += e.DeltaDays
		if e.DeltaDays <= 0 {
			continue
		}
		s.TotalSlipDays += e.DeltaDays
		if e.Attribution.IsInternal() {
			s.InternalDays += e.DeltaDays
		} else {
			s.ExternalDays += e.DeltaDays
		}
	}
	return s
}
