package utils

import (
	"fmt"
	"strings"
)

// Static exchange-rate table, USD base. Conversion is display-only: the core
// stores USD base units and never persists converted values.
var exchangeRates = map[string]float64{
	"USD": 1,
	"INR": 83.12,
}

// DefaultCurrency is the base currency for all stored amounts.
const DefaultCurrency = "USD"

var currencySymbols = map[string]string{
	"USD": "$",
	"INR": "₹",
}

// SupportedCurrency describes one currency the UI can display.
type SupportedCurrency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// SupportedCurrencies lists the currencies with known exchange rates.
func SupportedCurrencies() []SupportedCurrency {
	return []SupportedCurrency{
		{Code: "USD", Name: "US Dollar", Symbol: "$"},
		{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
	}
}

// ConvertAmount converts between supported currencies by way of USD.
// Unknown currency codes are treated as USD.
func ConvertAmount(amount float64, from, to string) float64 {
	if from == to {
		return amount
	}
	fromRate, ok := exchangeRates[from]
	if !ok {
		fromRate = 1
	}
	toRate, ok := exchangeRates[to]
	if !ok {
		toRate = 1
	}
	return amount / fromRate * toRate
}

// FormatCurrency renders an amount with the currency's symbol and two
// decimal places, e.g. "$1,234.50".
func FormatCurrency(amount float64, code string) string {
	symbol, ok := currencySymbols[code]
	if !ok {
		symbol = "$"
	}
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(s, ".", 2)
	whole := parts[0]

	var grouped []string
	for len(whole) > 3 {
		grouped = append([]string{whole[len(whole)-3:]}, grouped...)
		whole = whole[:len(whole)-3]
	}
	grouped = append([]string{whole}, grouped...)

	out := symbol + strings.Join(grouped, ",") + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

// CurrencySymbol returns the display symbol for a currency code.
func CurrencySymbol(code string) string {
	if s, ok := currencySymbols[code]; ok {
		return s
	}
	return "$"
}
