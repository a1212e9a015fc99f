package gst

import (
	"fmt"
	"time"

	"opsboard/internal/domain"
)

// FinancialYearShort returns the two-digit year pair of the Indian financial
// year containing t, e.g. "25-26" for any date from April 2025 through
// March 2026. January through March belong to the financial year that
// started the previous calendar year. The pair is a naive two-digit
// truncation, so the year spanning 2099-2100 renders as "99-00".
func FinancialYearShort(t time.Time) string {
	start := t.Year()
	if t.Month() < time.April {
		start--
	}
	return fmt.Sprintf("%02d-%02d", start%100, (start+1)%100)
}

// GeneratePONumber formats a sequence number into a purchase order document
// number. Sequence numbers below 1000 are zero-padded to three digits;
// larger values render at natural width.
//
//	simple:         {prefix}-{calendarYear}-{seq}
//	financial_year: {prefix}/{fyShort}/{seq}
func GeneratePONumber(prefix string, format domain.PONumberFormat, seq int, now time.Time) string {
	if format == domain.POFormatFinancialYear {
		return fmt.Sprintf("%s/%s/%03d", prefix, FinancialYearShort(now), seq)
	}
	return fmt.Sprintf("%s-%d-%03d", prefix, now.Year(), seq)
}
