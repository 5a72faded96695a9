package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol is appended to every formatted amount.
const CurrencySymbol = "€"

// FormatMoney rounds amount half away from zero to two places and renders
// it with a decimal comma, e.g. 12.005 -> "12,01 €".
func FormatMoney(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	return strings.Replace(s, ".", ",", 1) + " " + CurrencySymbol
}
