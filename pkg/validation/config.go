package validation

import (
	"fmt"
	"strconv"
)

// ValidateRange checks that value lies within [minimum, maximum].
func ValidateRange(name string, value, minimum, maximum float64) error {
	if value < minimum || value > maximum {
		return fmt.Errorf("%s out of range [%s,%s]: got %s",
			name, formatNumber(minimum), formatNumber(maximum), formatNumber(value))
	}
	return nil
}

// ValidateIntRange checks that value lies within [minimum, maximum].
func ValidateIntRange(name string, value, minimum, maximum int) error {
	if value < minimum || value > maximum {
		return fmt.Errorf("%s out of range [%d,%d]: got %d", name, minimum, maximum, value)
	}
	return nil
}

// ValidateNonNegative rejects negative amounts and rates.
func ValidateNonNegative(name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%s must not be negative: got %s", name, formatNumber(value))
	}
	return nil
}

// ValidateMaxTotal checks that a group of percentages does not exceed maximum.
func ValidateMaxTotal(name string, maximum float64, values ...float64) error {
	total := 0.0
	for _, v := range values {
		total += v
	}
	if total > maximum {
		return fmt.Errorf("%s must not exceed %s: got %s", name, formatNumber(maximum), formatNumber(total))
	}
	return nil
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
