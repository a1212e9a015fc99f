package schedule

import (
	"sort"

	"github.com/google/uuid"

	"opsboard/internal/domain"
)

// CascadeRisk is the derived schedule-risk view of one milestone. It is
// computed on read and never persisted.
type CascadeRisk struct {
	MilestoneID uuid.UUID `json:"milestone_id"`
	Name        string    `json:"name"`
	OwnSlipDays int       `json:"own_slip_days"`
	RiskDays    int       `json:"risk_days"`
	AtRisk      bool      `json:"at_risk"`
}

// CascadeRisks walks the milestones in current-end-date order carrying the
// maximum slip seen so far. A milestone that has not itself slipped but
// follows one that has inherits that maximum as its risk: the earlier slip
// threatens to cascade into it. Slip is current minus original in whole
// days, floored at zero; milestones without a current date are skipped.
// The first milestone in date order always carries zero risk.
func CascadeRisks(milestones []domain.Milestone) []CascadeRisk {
	dated := make([]domain.Milestone, 0, len(milestones))
	for i := range milestones {
		if milestones[i].CurrentEndDate != nil {
			dated = append(dated, milestones[i])
		}
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].CurrentEndDate.Before(*dated[j].CurrentEndDate)
	})

	risks := make([]CascadeRisk, 0, len(dated))
	maxSlip := 0
	for i := range dated {
		m := &dated[i]
		slip := 0
		if m.OriginalEndDate != nil {
			slip = DayDelta(*m.OriginalEndDate, *m.CurrentEndDate)
			if slip < 0 {
				slip = 0
			}
		}

		risks = append(risks, CascadeRisk{
			MilestoneID: m.ID,
			Name:        m.Name,
			OwnSlipDays: slip,
			RiskDays:    maxSlip,
			AtRisk:      slip == 0 && maxSlip > 0,
		})

		if slip > maxSlip {
			maxSlip = slip
		}
	}
	return risks
}
