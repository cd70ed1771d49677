// Package output provides utilities for formatting and displaying projection results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/iwvelando/nbfc-projection/internal/config"
	"github.com/iwvelando/nbfc-projection/internal/forecast"
	"github.com/iwvelando/nbfc-projection/internal/projection"
	"github.com/iwvelando/nbfc-projection/internal/report"
	"github.com/iwvelando/nbfc-projection/pkg/constants"
	"github.com/iwvelando/nbfc-projection/pkg/format"
	"github.com/iwvelando/nbfc-projection/pkg/mathutil"
)

// Report is the serializable view of a forecast. Currency values are in
// Crores rounded to two places.
type Report struct {
	ID              string                  `json:"id"`
	GeneratedAt     time.Time               `json:"generatedAt"`
	Parameters      config.Parameters       `json:"parameters"`
	Metrics         KeyMetrics              `json:"metrics"`
	Rows            []Row                   `json:"rows"`
	Summary         SummaryView             `json:"summary"`
	Recommendations []report.Recommendation `json:"recommendations"`
	Scenarios       []ScenarioView          `json:"scenarios"`
	Warnings        []string                `json:"warnings,omitempty"`
}

// KeyMetrics are the headline figures shown above the projection.
type KeyMetrics struct {
	TotalCapitalCrores float64 `json:"totalCapitalCrores"`
	CapitalVsTarget    float64 `json:"capitalVsTarget"`
	AnnualROIPercent   float64 `json:"annualRoiPercent"`
	CyclesPerYear      float64 `json:"cyclesPerYear"`
	CollectionRate     float64 `json:"collectionRate"`
	DefaultRate        float64 `json:"defaultRate"`
	AvgLoanTicket      float64 `json:"avgLoanTicket"`
}

// Row is one month of the projection table.
type Row struct {
	Month            int     `json:"month"`
	CapitalDeployed  float64 `json:"capitalDeployed"`
	CapitalAvailable float64 `json:"capitalAvailable"`
	AmountDisbursed  float64 `json:"amountDisbursed"`
	Customers        int     `json:"customers"`
	InterestRevenue  float64 `json:"interestRevenue"`
	ProcessingFee    float64 `json:"processingFeeRevenue"`
	BadDebtRecovery  float64 `json:"badDebtRecovery"`
	TotalRevenue     float64 `json:"totalRevenue"`
	Opex             float64 `json:"opex"`
	Marketing        float64 `json:"marketingCost"`
	API              float64 `json:"apiCost"`
	FundCost         float64 `json:"fundCost"`
	BadDebt          float64 `json:"badDebt"`
	GST              float64 `json:"gst"`
	TotalCosts       float64 `json:"totalCosts"`
	Profit           float64 `json:"profit"`
	AUM              float64 `json:"aum"`
	ROIPercent       float64 `json:"roiPercent"`
}

// SummaryView is the twelve-month summary in Crores.
type SummaryView struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalCosts      float64 `json:"totalCosts"`
	TotalProfit     float64 `json:"totalProfit"`
	FinalAUM        float64 `json:"finalAum"`
	AverageROI      float64 `json:"averageRoi"`
	TotalCustomers  int     `json:"totalCustomers"`
	CapitalMultiple float64 `json:"capitalMultiple"`
}

// ScenarioView is a scenario comparison entry with profit in Crores.
type ScenarioView struct {
	Name        string  `json:"name"`
	TotalProfit float64 `json:"totalProfit"`
	AverageROI  float64 `json:"averageRoi"`
	DefaultRate float64 `json:"defaultRate"`
}

// NewReport builds the serializable view of a forecast.
func NewReport(f *forecast.Forecast) Report {
	scenarios := make([]ScenarioView, 0, len(f.Scenarios))
	for _, s := range f.Scenarios {
		scenarios = append(scenarios, ScenarioView{
			Name:        s.Name,
			TotalProfit: format.CroreValue(s.TotalProfit),
			AverageROI:  mathutil.Round(s.AverageROI),
			DefaultRate: mathutil.Round(s.DefaultRate),
		})
	}

	return Report{
		ID:              f.ID,
		GeneratedAt:     f.GeneratedAt,
		Parameters:      f.Parameters,
		Metrics:         NewKeyMetrics(f.Derived, f.Inputs),
		Rows:            NewRows(f.Projection),
		Summary:         newSummaryView(f.Summary),
		Recommendations: f.Recommendations,
		Scenarios:       scenarios,
		Warnings:        f.Warnings,
	}
}

// NewKeyMetrics builds the headline metrics.
func NewKeyMetrics(d projection.Derived, p projection.ParameterSet) KeyMetrics {
	totalCrores := format.CroreValue(d.TotalCapital)
	return KeyMetrics{
		TotalCapitalCrores: totalCrores,
		CapitalVsTarget:    mathutil.Round(totalCrores - constants.CapitalTargetCrores),
		AnnualROIPercent:   mathutil.Round(d.AnnualROI * constants.PercentageMultiplier),
		CyclesPerYear:      mathutil.Round(d.CyclesPerYear),
		CollectionRate:     mathutil.Round(d.CollectionRate),
		DefaultRate:        mathutil.Round(d.DefaultRate),
		AvgLoanTicket:      p.AvgLoanTicket,
	}
}

// NewRows converts a projection into Crore-denominated rows.
func NewRows(result projection.Projection) []Row {
	rows := make([]Row, 0, len(result))
	for _, r := range result {
		rows = append(rows, Row{
			Month:            r.Month,
			CapitalDeployed:  format.CroreValue(r.CapitalDeployed),
			CapitalAvailable: format.CroreValue(r.CapitalAvailable),
			AmountDisbursed:  format.CroreValue(r.AmountDisbursed),
			Customers:        r.Customers,
			InterestRevenue:  format.CroreValue(r.Revenue.Interest),
			ProcessingFee:    format.CroreValue(r.Revenue.ProcessingFee),
			BadDebtRecovery:  format.CroreValue(r.Revenue.BadDebtRecovery),
			TotalRevenue:     format.CroreValue(r.Revenue.Total),
			Opex:             format.CroreValue(r.Costs.Opex),
			Marketing:        format.CroreValue(r.Costs.Marketing),
			API:              format.CroreValue(r.Costs.API),
			FundCost:         format.CroreValue(r.Costs.FundCost),
			BadDebt:          format.CroreValue(r.Costs.BadDebt),
			GST:              format.CroreValue(r.Costs.GST),
			TotalCosts:       format.CroreValue(r.Costs.Total),
			Profit:           format.CroreValue(r.Profit),
			AUM:              format.CroreValue(r.AUM),
			ROIPercent:       mathutil.Round(r.ROIPercent),
		})
	}
	return rows
}

func newSummaryView(s report.Summary) SummaryView {
	return SummaryView{
		TotalRevenue:    format.CroreValue(s.TotalRevenue),
		TotalCosts:      format.CroreValue(s.TotalCosts),
		TotalProfit:     format.CroreValue(s.TotalProfit),
		FinalAUM:        format.CroreValue(s.FinalAUM),
		AverageROI:      mathutil.Round(s.AverageROI),
		TotalCustomers:  s.TotalCustomers,
		CapitalMultiple: mathutil.Round(s.CapitalMultiple),
	}
}

// WriteJSON writes the report view as indented JSON.
func WriteJSON(w io.Writer, f *forecast.Forecast) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewReport(f)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
