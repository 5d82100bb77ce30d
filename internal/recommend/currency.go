package recommend

import (
	"math"
	"strings"
)

// ReferenceCurrency is the currency the catalog costs are denominated in.
const ReferenceCurrency = "INR"

// defaultRate is applied to unrecognized currency codes so selection stays
// total instead of failing on bad input. It equals the USD rate.
const defaultRate = 84

// ratesToReference holds reference-currency units per one unit of each
// supported display currency.
var ratesToReference = map[string]float64{
	"INR": 1,
	"USD": 84,
	"EUR": 91,
	"GBP": 107,
	"AED": 23,
	"SGD": 63,
	"THB": 2.4,
	"MYR": 19,
}

// RateToReference returns the conversion rate for a currency code, falling
// back to defaultRate for unknown codes.
func RateToReference(currency string) float64 {
	if rate, ok := ratesToReference[strings.ToUpper(strings.TrimSpace(currency))]; ok {
		return rate
	}
	return defaultRate
}

// ToReference converts an amount in the given currency to the reference
// currency.
func ToReference(amount float64, currency string) float64 {
	return amount * RateToReference(currency)
}

// FromReference converts a reference-currency amount into display units for
// the given currency, rounded to the nearest whole unit. The reference
// currency itself passes through with plain truncation so no floating
// rounding artifacts appear.
func FromReference(amountRef float64, currency string) int {
	if strings.ToUpper(strings.TrimSpace(currency)) == ReferenceCurrency {
		return int(amountRef)
	}
	return int(math.Round(amountRef / RateToReference(currency)))
}
