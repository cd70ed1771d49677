package testutil

import (
	"fmt"
	"testing"

	"github.com/iwvelando/nbfc-projection/internal/report"
)

func TestFindScenario(t *testing.T) {
	scenarios := []report.Scenario{
		{Name: "Current", TotalProfit: 1000},
		{Name: "Conservative (-20%)", TotalProfit: 800},
		{Name: "Aggressive (+30%)", TotalProfit: 1300},
	}

	tests := []struct {
		name           string
		searchName     string
		expectFound    bool
		expectedProfit float64
	}{
		{"Find current", "Current", true, 1000},
		{"Find conservative", "Conservative (-20%)", true, 800},
		{"Find aggressive", "Aggressive (+30%)", true, 1300},
		{"Non-existent", "Optimistic", false, 0},
		{"Empty search name", "", false, 0},
		{"Case sensitive search", "current", false, 0},
		{"Partial name match", "Conservative", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindScenario(scenarios, tt.searchName)

			if !tt.expectFound {
				if result != nil {
					t.Errorf("FindScenario() expected nil for '%s' but got '%s'", tt.searchName, result.Name)
				}
				return
			}
			if result == nil {
				t.Fatalf("FindScenario() expected to find scenario '%s' but got nil", tt.searchName)
			}
			if result.TotalProfit != tt.expectedProfit {
				t.Errorf("FindScenario() returned profit %v, expected %v", result.TotalProfit, tt.expectedProfit)
			}
		})
	}
}

func TestFindScenarioEmptyAndNil(t *testing.T) {
	if FindScenario([]report.Scenario{}, "Current") != nil {
		t.Error("FindScenario() with empty scenarios should return nil")
	}
	if FindScenario(nil, "Current") != nil {
		t.Error("FindScenario() with nil scenarios should return nil")
	}
}

func TestFindScenarioReturnsFirstMatchByPointer(t *testing.T) {
	scenarios := []report.Scenario{
		{Name: "Duplicate", TotalProfit: 1},
		{Name: "Duplicate", TotalProfit: 2},
	}

	found := FindScenario(scenarios, "Duplicate")
	if found == nil {
		t.Fatal("FindScenario() returned nil")
	}
	if &scenarios[0] != found {
		t.Error("FindScenario() should return a pointer to the first matching element")
	}

	found.AverageROI = 12
	if scenarios[0].AverageROI != 12 {
		t.Error("modifying through the returned pointer should modify the original")
	}
}

func TestFindScenarioLargeSlice(t *testing.T) {
	const numScenarios = 1000
	scenarios := make([]report.Scenario, numScenarios)
	for i := range scenarios {
		scenarios[i] = report.Scenario{Name: fmt.Sprintf("Scenario %d", i), TotalProfit: float64(i * 100)}
	}

	found := FindScenario(scenarios, "Scenario 500")
	if found == nil {
		t.Fatal("FindScenario() should find 'Scenario 500'")
	}
	if found.TotalProfit != 50000 {
		t.Errorf("FindScenario() returned profit %v, expected 50000", found.TotalProfit)
	}
}

func TestFindRecommendation(t *testing.T) {
	recs := []report.Recommendation{
		{Level: report.LevelGood, Title: "Excellent ROI"},
		{Level: report.LevelPoor, Title: "High Default Risk"},
	}

	if found := FindRecommendation(recs, "High Default Risk"); found == nil || found.Level != report.LevelPoor {
		t.Errorf("FindRecommendation() = %+v, expected the poor default-risk entry", found)
	}
	if FindRecommendation(recs, "Fast Cycles") != nil {
		t.Error("FindRecommendation() should return nil for a missing title")
	}
	if FindRecommendation(nil, "Excellent ROI") != nil {
		t.Error("FindRecommendation() with nil recommendations should return nil")
	}
}
