package models

import (
	"math"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency, or an unknown one, is configured.
const DefaultCurrency = money.USD

// FormatMoney renders amount in the given ISO currency with its symbol, e.g. "$1,234.50".
func FormatMoney(amount float64, currency string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}
	cur := currencyOrDefault(currency)
	rounded, err := decimal.NewFromString(strconv.FormatFloat(amount, 'f', cur.Fraction, 64))
	if err != nil {
		return strconv.FormatFloat(amount, 'f', cur.Fraction, 64)
	}
	return money.New(rounded.Shift(int32(cur.Fraction)).IntPart(), cur.Code).Display()
}

// FormatPrice renders amount as the currency symbol followed by two ungrouped
// decimals, e.g. "$1234.57".
func FormatPrice(amount float64, currency string) string {
	return currencyOrDefault(currency).Grapheme + strconv.FormatFloat(amount, 'f', 2, 64)
}

func currencyOrDefault(code string) *money.Currency {
	if cur := money.GetCurrency(code); cur != nil {
		return cur
	}
	return money.GetCurrency(DefaultCurrency)
}

// IsKnownCurrency reports whether code is an ISO currency known to the formatter.
func IsKnownCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}
