package services

import "github.com/shopspring/decimal"

// FormatCurrency renders an amount as "$1234.56". Prices are computed in
// float64 and only rounded here, at the display boundary, so the decimal
// conversion guarantees an exact two-decimal representation.
func FormatCurrency(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

// FormatEnergy renders a kWh value with two decimals, e.g. "1234.50 kWh".
func FormatEnergy(kwh float64) string {
	return decimal.NewFromFloat(kwh).StringFixed(2) + " kWh"
}
