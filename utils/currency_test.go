package utils

import (
	"math"
	"testing"
)

func TestConvertAmount(t *testing.T) {
	if got := ConvertAmount(100, "USD", "USD"); got != 100 {
		t.Errorf("identity conversion changed the amount: %v", got)
	}

	inr := ConvertAmount(100, "USD", "INR")
	if math.Abs(inr-8312) > 1e-9 {
		t.Errorf("100 USD = %.2f INR, want 8312", inr)
	}

	// Round trip returns close to the original amount.
	back := ConvertAmount(inr, "INR", "USD")
	if math.Abs(back-100) > 1e-9 {
		t.Errorf("round trip = %v, want 100", back)
	}

	// Unknown codes behave as USD.
	if got := ConvertAmount(50, "XYZ", "USD"); got != 50 {
		t.Errorf("unknown source currency: got %v, want 50", got)
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		code   string
		want   string
	}{
		{1234.5, "USD", "$1,234.50"},
		{485.46, "USD", "$485.46"},
		{0, "USD", "$0.00"},
		{1234567.891, "INR", "₹1,234,567.89"},
		{-99.9, "USD", "-$99.90"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.amount, tc.code); got != tc.want {
			t.Errorf("FormatCurrency(%v, %s) = %q, want %q", tc.amount, tc.code, got, tc.want)
		}
	}
}

func TestSupportedCurrencies(t *testing.T) {
	currencies := SupportedCurrencies()
	if len(currencies) == 0 {
		t.Fatal("expected at least one supported currency")
	}
	foundBase := false
	for _, c := range currencies {
		if c.Code == DefaultCurrency {
			foundBase = true
		}
		if c.Symbol == "" || c.Name == "" {
			t.Errorf("currency %s is missing display fields", c.Code)
		}
	}
	if !foundBase {
		t.Errorf("base currency %s missing from the supported list", DefaultCurrency)
	}
}
