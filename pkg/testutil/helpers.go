// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/nbfc-projection/internal/report"
)

// FindScenario finds a scenario by name in the scenarios slice.
// Returns a pointer to the scenario if found, nil otherwise.
func FindScenario(scenarios []report.Scenario, name string) *report.Scenario {
	for i := range scenarios {
		if scenarios[i].Name == name {
			return &scenarios[i]
		}
	}
	return nil
}

// FindRecommendation returns the first recommendation with the given title.
func FindRecommendation(recs []report.Recommendation, title string) *report.Recommendation {
	for i := range recs {
		if recs[i].Title == title {
			return &recs[i]
		}
	}
	return nil
}
