package gst_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"opsboard/internal/gst"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Zero"},
		{1, "INR One Only"},
		{15, "INR Fifteen Only"},
		{21, "INR Twenty One Only"},
		{100, "INR One Hundred Only"},
		{118, "INR One Hundred Eighteen Only"},
		{999, "INR Nine Hundred Ninety Nine Only"},
		{1000, "INR One Thousand Only"},
		{11800, "INR Eleven Thousand Eight Hundred Only"},
		{99999, "INR Ninety Nine Thousand Nine Hundred Ninety Nine Only"},
		{100000, "INR One Lakh Only"},
		{1575000, "INR Fifteen Lakh Seventy Five Thousand Only"},
		{10000000, "INR One Crore Only"},
		{12345678, "INR One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Only"},
		{250000000, "INR Twenty Five Crore Only"},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%.0f", tc.amount), func(t *testing.T) {
			assert.Equal(t, tc.want, gst.AmountInWords(tc.amount))
		})
	}
}

func TestAmountInWords_Paise(t *testing.T) {
	t.Run("rupees_and_paise", func(t *testing.T) {
		assert.Equal(t, "INR One Hundred and Fifty Paise Only", gst.AmountInWords(100.50))
	})

	t.Run("quarter_rupee", func(t *testing.T) {
		assert.Equal(t, "INR Ten and Twenty Five Paise Only", gst.AmountInWords(10.25))
	})

	// round(0.999*100) = 100 paise, deliberately not carried into rupees.
	t.Run("hundred_paise_does_not_carry", func(t *testing.T) {
		assert.Equal(t, "INR One Hundred and One Hundred Paise Only", gst.AmountInWords(100.999))
	})

	// Zero rupees with nonzero paise renders an empty units phrase.
	t.Run("zero_rupees_nonzero_paise", func(t *testing.T) {
		assert.Equal(t, "INR  and One Paise Only", gst.AmountInWords(0.01))
	})
}

// Magnitude law: "Lakh" appears iff the amount is in [1e5, 1e7), "Crore"
// iff it is >= 1e7.
func TestAmountInWords_ScaleBoundaries(t *testing.T) {
	cases := []struct {
		amount    float64
		wantLakh  bool
		wantCrore bool
	}{
		{99999, false, false},
		{100000, true, false},
		{9999999, true, false},
		{10000000, false, true},
		{10100000, false, true}, // "One Crore One Lakh" contains Lakh too
	}

	for _, tc := range cases {
		words := gst.AmountInWords(tc.amount)
		assert.Equal(t, tc.wantCrore, strings.Contains(words, "Crore"), "amount %v: %s", tc.amount, words)
		if !tc.wantCrore {
			assert.Equal(t, tc.wantLakh, strings.Contains(words, "Lakh"), "amount %v: %s", tc.amount, words)
		}
	}
}
