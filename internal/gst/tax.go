package gst

import (
	"math"

	"opsboard/internal/domain"
)

// TaxType identifies which GST regime applies to a transaction.
type TaxType string

const (
	// TaxTypeCGSTSGST splits the tax into two equal halves (intra-state).
	TaxTypeCGSTSGST TaxType = "cgst_sgst"
	// TaxTypeIGST levies one consolidated tax (inter-state).
	TaxTypeIGST TaxType = "igst"
)

// DetermineTaxType classifies a transaction by comparing buyer and seller
// state codes. Exact string equality is the authoritative test; two empty
// codes count as same-state so that draft POs missing jurisdiction data
// still resolve to a regime.
func DetermineTaxType(buyerStateCode, sellerStateCode string) TaxType {
	if buyerStateCode == sellerStateCode {
		return TaxTypeCGSTSGST
	}
	return TaxTypeIGST
}

// Totals is the computed money summary of a purchase order. The tax fields
// of the regime that does not apply are nil, not zero.
type Totals struct {
	Subtotal      float64  `json:"subtotal"`
	CGSTAmount    *float64 `json:"cgst_amount,omitempty"`
	SGSTAmount    *float64 `json:"sgst_amount,omitempty"`
	IGSTAmount    *float64 `json:"igst_amount,omitempty"`
	Total         float64  `json:"total"`
	AmountInWords string   `json:"amount_in_words"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ItemAmount computes a line item amount: quantity x rate less discount.
func ItemAmount(quantity, unitRate, discountPercent float64) float64 {
	return round2(quantity * unitRate * (1 - discountPercent/100))
}

// CalculateTotals computes PO totals for the given items and tax regime.
// Under the split regime the two half-rate taxes are rounded independently,
// which can differ from half the single-regime tax by a paisa; that is the
// defined behavior, not a bug. The amount-in-words field is rendered from
// the total rounded to a whole rupee.
func CalculateTotals(items []domain.POItem, taxType TaxType, ratePercent float64) Totals {
	var subtotal float64
	for i := range items {
		subtotal += items[i].Amount
	}
	subtotal = round2(subtotal)

	t := Totals{Subtotal: subtotal}
	switch taxType {
	case TaxTypeIGST:
		igst := round2(subtotal * ratePercent / 100)
		t.IGSTAmount = &igst
		t.Total = round2(subtotal + igst)
	default:
		half := round2(subtotal * (ratePercent / 2) / 100)
		cgst, sgst := half, half
		t.CGSTAmount = &cgst
		t.SGSTAmount = &sgst
		t.Total = round2(subtotal + cgst + sgst)
	}

	t.AmountInWords = AmountInWords(math.Round(t.Total))
	return t
}
