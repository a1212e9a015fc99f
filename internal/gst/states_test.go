package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"opsboard/internal/domain"
	"opsboard/internal/gst"
)

func TestStateName(t *testing.T) {
	assert.Equal(t, "Karnataka", gst.StateName("29"))
	assert.Equal(t, "Maharashtra", gst.StateName("27"))
	assert.Equal(t, "Ladakh", gst.StateName("38"))

	// unknown codes degrade to a display fallback, never an error
	assert.Equal(t, "Unknown", gst.StateName("00"))
	assert.Equal(t, "Unknown", gst.StateName("99"))
	assert.Equal(t, "Unknown", gst.StateName(""))
	assert.Equal(t, "Unknown", gst.StateName("2"))
}

func TestExtractStateCode(t *testing.T) {
	t.Run("valid_gstin_prefix", func(t *testing.T) {
		assert.Equal(t, "29", gst.ExtractStateCode("29ABCDE1234F1Z5"))
		assert.Equal(t, "27", gst.ExtractStateCode("27AAACB1234C1ZX"))
	})

	t.Run("unknown_prefix", func(t *testing.T) {
		assert.Equal(t, "", gst.ExtractStateCode("99ABCDE1234F1Z5"))
	})

	t.Run("short_or_empty_input", func(t *testing.T) {
		assert.Equal(t, "", gst.ExtractStateCode(""))
		assert.Equal(t, "", gst.ExtractStateCode("2"))
	})

	t.Run("bare_code_is_accepted", func(t *testing.T) {
		assert.Equal(t, "29", gst.ExtractStateCode("29"))
	})
}

func TestValidateCounterparty(t *testing.T) {
	t.Run("complete_party_has_no_findings", func(t *testing.T) {
		p := &domain.Party{Name: "Acme Controls", GSTIN: "29ABCDE1234F1Z5", StateCode: "29"}
		assert.Empty(t, gst.ValidateCounterparty(p))
	})

	t.Run("missing_gstin", func(t *testing.T) {
		p := &domain.Party{Name: "Acme Controls", StateCode: "29"}
		results := gst.ValidateCounterparty(p)
		assert.Len(t, results, 1)
		assert.Equal(t, "party.gstin", results[0].FieldPath)
		assert.Equal(t, domain.SeverityError, results[0].Severity)
	})

	t.Run("missing_both_reports_both", func(t *testing.T) {
		p := &domain.Party{Name: "Acme Controls"}
		results := gst.ValidateCounterparty(p)
		assert.Len(t, results, 2)
		assert.Equal(t, "party.gstin", results[0].FieldPath)
		assert.Equal(t, "party.state_code", results[1].FieldPath)
	})
}
