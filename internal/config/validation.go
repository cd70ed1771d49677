package config

import (
	"fmt"

	"github.com/iwvelando/nbfc-projection/pkg/constants"
)

// Dashboard input ranges outside of which a plan is still computed but flagged.
const (
	maxFirstMonthCapitalCrores = 15.0
	maxLaterMonthCapitalCrores = 10.0
	minSameDayCollection       = 60.0
)

// ValidateConfiguration performs general validation of the configuration and
// returns warnings for inputs that are accepted but probably unintended.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	p := c.Parameters

	if p.OpexRates.Month1 != constants.FirstMonthOpexRate {
		warnings = append(warnings, fmt.Sprintf(
			"opexRates.month1 is set to %g but the first month always uses %g%%; the value is ignored",
			p.OpexRates.Month1, constants.FirstMonthOpexRate))
	}

	if len(p.CapitalCrores) == 0 || p.TotalCapitalCrores() == 0 {
		warnings = append(warnings, "no capital is deployed; every month will disburse nothing")
	}
	if len(p.CapitalCrores) > 0 && p.CapitalCrores[0] == 0 && p.TotalCapitalCrores() > 0 {
		warnings = append(warnings, "month 1 capital is zero; the book starts empty until later injections")
	}
	for i, capital := range p.CapitalCrores {
		limit := maxLaterMonthCapitalCrores
		if i == 0 {
			limit = maxFirstMonthCapitalCrores
		}
		if capital > limit {
			warnings = append(warnings, fmt.Sprintf(
				"capital for month %d (%g Cr) exceeds the usual %g Cr deployment", i+1, capital, limit))
		}
	}

	if p.Collections.T0 < minSameDayCollection {
		warnings = append(warnings, fmt.Sprintf(
			"same-day collection of %g%% is below the usual %g%% floor", p.Collections.T0, minSameDayCollection))
	}

	return warnings
}
