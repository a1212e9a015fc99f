package gst

import (
	"math"
	"strings"
)

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// integerWords renders a non-negative integer in the Indian numbering scale,
// peeling off crore (10^7), lakh (10^5), thousand and hundred in turn.
// Returns "" for zero.
func integerWords(n int64) string {
	switch {
	case n < 20:
		return onesWords[n]
	case n < 100:
		w := tensWords[n/10]
		if n%10 != 0 {
			w += " " + onesWords[n%10]
		}
		return w
	case n < 1000:
		return scaleWords(n, 100, "Hundred")
	case n < 100000:
		return scaleWords(n, 1000, "Thousand")
	case n < 10000000:
		return scaleWords(n, 100000, "Lakh")
	default:
		return scaleWords(n, 10000000, "Crore")
	}
}

func scaleWords(n, scale int64, unit string) string {
	w := integerWords(n/scale) + " " + unit
	if rem := n % scale; rem != 0 {
		w += " " + integerWords(rem)
	}
	return w
}

// AmountInWords spells out a rupee amount using the Indian numbering scale,
// e.g. 1575000 -> "INR Fifteen Lakh Seventy Five Thousand Only". Zero is the
// bare word "Zero". The paise part is round(frac*100), deliberately without
// carrying into the rupee part when it rounds to 100; a zero rupee part with
// nonzero paise renders an empty units phrase before "and". Both quirks are
// load-bearing: downstream documents and their tests assert on the exact
// strings.
func AmountInWords(amount float64) string {
	rupees := int64(amount)
	paise := int64(math.Round((amount - float64(rupees)) * 100))

	if rupees == 0 && paise == 0 {
		return "Zero"
	}

	var b strings.Builder
	b.WriteString("INR ")
	b.WriteString(integerWords(rupees))
	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(integerWords(paise))
		b.WriteString(" Paise")
	}
	b.WriteString(" Only")
	return b.String()
}
