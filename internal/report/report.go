// Package report derives aggregate metrics, recommendations and scenario
// comparisons from a completed projection.
package report

import (
	"github.com/iwvelando/nbfc-projection/internal/projection"
	"github.com/iwvelando/nbfc-projection/pkg/mathutil"
)

// Summary holds the twelve-month reductions over a projection.
type Summary struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalCosts     float64 `json:"totalCosts"`
	TotalProfit    float64 `json:"totalProfit"`
	FinalAUM       float64 `json:"finalAum"`
	AverageROI     float64 `json:"averageRoi"`
	TotalCustomers int     `json:"totalCustomers"`
	// CapitalMultiple is final AUM over total capital; 0 without capital.
	CapitalMultiple float64 `json:"capitalMultiple"`
}

// Summarize reduces a projection into its headline figures.
func Summarize(result projection.Projection, totalCapital float64) Summary {
	var s Summary
	rois := make([]float64, 0, len(result))
	for _, record := range result {
		s.TotalRevenue += record.Revenue.Total
		s.TotalCosts += record.Costs.Total
		s.TotalProfit += record.Profit
		s.TotalCustomers += record.Customers
		rois = append(rois, record.ROIPercent)
	}
	s.AverageROI = mathutil.Mean(rois)
	s.FinalAUM = result.Final().AUM
	if totalCapital > 0 {
		s.CapitalMultiple = s.FinalAUM / totalCapital
	}
	return s
}
