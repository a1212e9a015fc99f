package gst_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"opsboard/internal/domain"
	"opsboard/internal/gst"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGeneratePONumber_Simple(t *testing.T) {
	now := date(2025, time.June, 10)

	assert.Equal(t, "PO-2025-001", gst.GeneratePONumber("PO", domain.POFormatSimple, 1, now))
	assert.Equal(t, "PO-2025-042", gst.GeneratePONumber("PO", domain.POFormatSimple, 42, now))
	assert.Equal(t, "PO-2025-999", gst.GeneratePONumber("PO", domain.POFormatSimple, 999, now))

	// sequence numbers >= 1000 widen the field instead of truncating
	assert.Equal(t, "PO-2025-1000", gst.GeneratePONumber("PO", domain.POFormatSimple, 1000, now))
	assert.Equal(t, "PO-2025-12345", gst.GeneratePONumber("PO", domain.POFormatSimple, 12345, now))
}

func TestGeneratePONumber_SimpleFormatLaw(t *testing.T) {
	pattern := regexp.MustCompile(`^ACME-\d{4}-\d{3,}$`)
	for _, seq := range []int{1, 7, 99, 100, 999, 1000, 99999} {
		n := gst.GeneratePONumber("ACME", domain.POFormatSimple, seq, date(2026, time.January, 5))
		assert.Regexp(t, pattern, n)
	}
}

func TestGeneratePONumber_FinancialYear(t *testing.T) {
	t.Run("april_starts_new_fy", func(t *testing.T) {
		n := gst.GeneratePONumber("PO/QT", domain.POFormatFinancialYear, 1, date(2025, time.April, 1))
		assert.Equal(t, "PO/QT/25-26/001", n)
	})

	t.Run("february_belongs_to_previous_fy", func(t *testing.T) {
		n := gst.GeneratePONumber("PO/QT", domain.POFormatFinancialYear, 1, date(2025, time.February, 14))
		assert.Equal(t, "PO/QT/24-25/001", n)
	})

	t.Run("march_vs_april_boundary", func(t *testing.T) {
		march := gst.FinancialYearShort(date(2025, time.March, 31))
		april := gst.FinancialYearShort(date(2025, time.April, 1))
		assert.Equal(t, "24-25", march)
		assert.Equal(t, "25-26", april)
		assert.NotEqual(t, march, april)
	})

	// naive two-digit truncation at the century boundary
	t.Run("century_rollover", func(t *testing.T) {
		assert.Equal(t, "99-00", gst.FinancialYearShort(date(2099, time.December, 1)))
		assert.Equal(t, "99-00", gst.FinancialYearShort(date(2100, time.February, 1)))
	})
}
