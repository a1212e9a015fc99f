package gst

import (
	"fmt"

	"opsboard/internal/domain"
)

// ValidateCounterparty checks that a party carries the tax fields a
// purchase order needs. It returns one error-severity result per missing
// field (empty string counts as missing) and an empty slice when the party
// is complete. Findings are returned, never raised: the caller renders the
// whole list and lets the user retry.
func ValidateCounterparty(p *domain.Party) []domain.CheckResult {
	var results []domain.CheckResult

	if p.GSTIN == "" {
		results = append(results, domain.CheckResult{
			FieldPath:     "party.gstin",
			ExpectedValue: "15-character GSTIN",
			Message:       fmt.Sprintf("%s has no GSTIN; add it on the party record before issuing a PO", p.Name),
			Severity:      domain.SeverityError,
		})
	}
	if p.StateCode == "" {
		results = append(results, domain.CheckResult{
			FieldPath:     "party.state_code",
			ExpectedValue: "2-digit GST state code",
			Message:       fmt.Sprintf("%s has no state code; set it so the tax regime can be determined", p.Name),
			Severity:      domain.SeverityError,
		})
	}

	return results
}
