package report

import (
	"github.com/iwvelando/nbfc-projection/internal/projection"
)

// Level grades a recommendation.
type Level string

const (
	LevelGood Level = "good"
	LevelFair Level = "fair"
	LevelPoor Level = "poor"
)

// Recommendation is a single graded observation about the plan.
type Recommendation struct {
	Level   Level  `json:"level"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Thresholds used by Recommend.
const (
	ExcellentROIThreshold    = 15.0
	GoodROIThreshold         = 8.0
	LowRiskDefaultThreshold  = 10.0
	ModerateDefaultThreshold = 15.0
	FastCycleDays            = 25
	MarketingReviewRate      = 3.0
)

// Recommend grades the average ROI, default risk, cycle speed and marketing
// spend of a run.
func Recommend(summary Summary, params projection.ParameterSet) []Recommendation {
	var recs []Recommendation

	switch {
	case summary.AverageROI > ExcellentROIThreshold:
		recs = append(recs, Recommendation{LevelGood, "Excellent ROI", "Your model shows strong returns!"})
	case summary.AverageROI > GoodROIThreshold:
		recs = append(recs, Recommendation{LevelFair, "Good Performance", "ROI is above industry average"})
	default:
		recs = append(recs, Recommendation{LevelPoor, "Optimize Returns", "Consider increasing interest rates"})
	}

	defaultRate := params.Collections.DefaultRate()
	switch {
	case defaultRate < LowRiskDefaultThreshold:
		recs = append(recs, Recommendation{LevelGood, "Low Risk", "Your collection efficiency is excellent"})
	case defaultRate < ModerateDefaultThreshold:
		recs = append(recs, Recommendation{LevelFair, "Moderate Risk", "Collection rates are acceptable"})
	default:
		recs = append(recs, Recommendation{LevelPoor, "High Risk", "Focus on improving collection processes"})
	}

	if params.RotationCycleDays < FastCycleDays {
		recs = append(recs, Recommendation{LevelGood, "Fast Cycles", "Excellent capital velocity"})
	} else {
		recs = append(recs, Recommendation{LevelFair, "Standard Cycles", "Consider optimizing loan processing"})
	}

	if params.MarketingRate > MarketingReviewRate {
		recs = append(recs, Recommendation{LevelFair, "Marketing Optimization", "Review marketing efficiency"})
	}

	return recs
}
