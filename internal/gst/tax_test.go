package gst_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/domain"
	"opsboard/internal/gst"
)

func TestDetermineTaxType(t *testing.T) {
	t.Run("same_state_splits", func(t *testing.T) {
		assert.Equal(t, gst.TaxTypeCGSTSGST, gst.DetermineTaxType("29", "29"))
	})

	t.Run("different_state_consolidates", func(t *testing.T) {
		assert.Equal(t, gst.TaxTypeIGST, gst.DetermineTaxType("29", "27"))
	})

	t.Run("both_empty_treated_as_same_state", func(t *testing.T) {
		assert.Equal(t, gst.TaxTypeCGSTSGST, gst.DetermineTaxType("", ""))
	})

	t.Run("one_empty_is_inter_state", func(t *testing.T) {
		assert.Equal(t, gst.TaxTypeIGST, gst.DetermineTaxType("29", ""))
	})

	t.Run("deterministic_over_all_known_codes", func(t *testing.T) {
		codes := []string{"01", "07", "24", "27", "29", "33", "36", "38", ""}
		for _, c := range codes {
			assert.Equal(t, gst.TaxTypeCGSTSGST, gst.DetermineTaxType(c, c), "code %q", c)
			assert.Equal(t, gst.DetermineTaxType(c, "07"), gst.DetermineTaxType(c, "07"))
		}
	})
}

func TestItemAmount(t *testing.T) {
	assert.Equal(t, 10000.0, gst.ItemAmount(10, 1000, 0))
	assert.Equal(t, 9500.0, gst.ItemAmount(10, 1000, 5))
	assert.Equal(t, 0.0, gst.ItemAmount(0, 1000, 0))
}

func TestCalculateTotals_SplitRegime(t *testing.T) {
	items := []domain.POItem{{Amount: 10000}}
	totals := gst.CalculateTotals(items, gst.TaxTypeCGSTSGST, 18)

	assert.Equal(t, 10000.0, totals.Subtotal)
	require.NotNil(t, totals.CGSTAmount)
	require.NotNil(t, totals.SGSTAmount)
	assert.Nil(t, totals.IGSTAmount)
	assert.Equal(t, 900.0, *totals.CGSTAmount)
	assert.Equal(t, 900.0, *totals.SGSTAmount)
	assert.Equal(t, 11800.0, totals.Total)
	assert.Equal(t, "INR Eleven Thousand Eight Hundred Only", totals.AmountInWords)
}

func TestCalculateTotals_SingleRegime(t *testing.T) {
	items := []domain.POItem{{Amount: 10000}}
	totals := gst.CalculateTotals(items, gst.TaxTypeIGST, 18)

	assert.Equal(t, 10000.0, totals.Subtotal)
	require.NotNil(t, totals.IGSTAmount)
	assert.Nil(t, totals.CGSTAmount)
	assert.Nil(t, totals.SGSTAmount)
	assert.Equal(t, 1800.0, *totals.IGSTAmount)
	assert.Equal(t, 11800.0, totals.Total)
}

// The two regimes must be tax-equivalent at equal rates, up to the one-paisa
// discrepancy allowed by the two independent half-rate roundings.
func TestCalculateTotals_RegimeSymmetry(t *testing.T) {
	amounts := []float64{10000, 999.99, 1234.56, 0.01, 777777.77}
	rates := []float64{5, 12, 18, 28}

	for _, amount := range amounts {
		for _, rate := range rates {
			items := []domain.POItem{{Amount: amount}}
			split := gst.CalculateTotals(items, gst.TaxTypeCGSTSGST, rate)
			single := gst.CalculateTotals(items, gst.TaxTypeIGST, rate)

			splitTax := *split.CGSTAmount + *split.SGSTAmount
			singleTax := *single.IGSTAmount
			assert.InDelta(t, singleTax, splitTax, 0.011,
				"amount=%v rate=%v", amount, rate)
		}
	}
}

func TestCalculateTotals_MultipleItems(t *testing.T) {
	items := []domain.POItem{
		{Amount: 2500.50},
		{Amount: 1200.25},
		{Amount: 300},
	}
	totals := gst.CalculateTotals(items, gst.TaxTypeIGST, 18)

	assert.Equal(t, 4000.75, totals.Subtotal)
	require.NotNil(t, totals.IGSTAmount)
	assert.InDelta(t, 720.14, *totals.IGSTAmount, 0.001)
	assert.InDelta(t, 4720.89, totals.Total, 0.001)
}

func TestCalculateTotals_EmptyItems(t *testing.T) {
	totals := gst.CalculateTotals(nil, gst.TaxTypeCGSTSGST, 18)
	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Total)
}

func TestCalculateTotals_WordsUseWholeRupeeTotal(t *testing.T) {
	items := []domain.POItem{{Amount: 100.30}}
	totals := gst.CalculateTotals(items, gst.TaxTypeIGST, 18)

	// total 118.35 -> words rendered from round(118.35) = 118, no paise
	assert.InDelta(t, 118.35, totals.Total, 0.001)
	assert.Equal(t, gst.AmountInWords(math.Round(totals.Total)), totals.AmountInWords)
	assert.NotContains(t, totals.AmountInWords, "Paise")
}
