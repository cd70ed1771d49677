// Package format renders amounts for human consumption.
package format

import (
	"strings"

	"github.com/iwvelando/nbfc-projection/pkg/constants"
	"github.com/shopspring/decimal"
)

var croreDivisor = decimal.NewFromInt(constants.CroreDivisor)

// Currency returns a rupee string with thousands separators (e.g., "-₹1,234.56").
func Currency(amount float64) string {
	formatted := formatPositiveCurrency(decimal.NewFromFloat(amount).Abs())
	if amount < 0 {
		return "-" + constants.CurrencySymbol + formatted
	}
	return constants.CurrencySymbol + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + formatPositiveCurrency(decimal.NewFromFloat(amount).Abs())
}

// ToCrores converts an absolute amount into Crores.
func ToCrores(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Div(croreDivisor)
}

// CroreValue converts an absolute amount into Crores rounded to two places,
// the form used by every export.
func CroreValue(amount float64) float64 {
	value, _ := ToCrores(amount).Round(constants.DecimalPlaces).Float64()
	return value
}

// CroreString renders an absolute amount as a fixed two-place Crore figure (e.g., "5.59").
func CroreString(amount float64) string {
	return ToCrores(amount).StringFixed(constants.DecimalPlaces)
}

// Crores renders an absolute amount as "₹5.59 Cr".
func Crores(amount float64) string {
	return constants.CurrencySymbol + CroreString(amount) + " Cr"
}

// Fixed renders a value with the given number of decimal places.
func Fixed(value float64, places int32) string {
	return decimal.NewFromFloat(value).StringFixed(places)
}

// Percent renders a percentage value with the given number of decimal places (e.g., "18.7%").
func Percent(value float64, places int32) string {
	return Fixed(value, places) + "%"
}

func formatPositiveCurrency(value decimal.Decimal) string {
	formatted := value.StringFixed(constants.DecimalPlaces)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
