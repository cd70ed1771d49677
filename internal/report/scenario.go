package report

// Scenario is a what-if scaling of the current run's headline figures.
type Scenario struct {
	Name        string  `json:"name"`
	TotalProfit float64 `json:"totalProfit"`
	AverageROI  float64 `json:"averageRoi"`
	DefaultRate float64 `json:"defaultRate"`
}

// ScenarioFactors scales profit, ROI and default rate for one scenario.
type ScenarioFactors struct {
	Name    string
	Profit  float64
	ROI     float64
	Default float64
}

// DefaultScenarios are the conservative and aggressive variants shown next
// to the current plan.
var DefaultScenarios = []ScenarioFactors{
	{Name: "Current", Profit: 1, ROI: 1, Default: 1},
	{Name: "Conservative (-20%)", Profit: 0.8, ROI: 0.8, Default: 0.7},
	{Name: "Aggressive (+30%)", Profit: 1.3, ROI: 1.3, Default: 1.3},
}

// CompareScenarios applies each factor set to the summary.
func CompareScenarios(summary Summary, defaultRate float64, factors []ScenarioFactors) []Scenario {
	scenarios := make([]Scenario, 0, len(factors))
	for _, f := range factors {
		scenarios = append(scenarios, Scenario{
			Name:        f.Name,
			TotalProfit: summary.TotalProfit * f.Profit,
			AverageROI:  summary.AverageROI * f.ROI,
			DefaultRate: defaultRate * f.Default,
		})
	}
	return scenarios
}
