// Package forecast runs a projection for a configuration and bundles the
// engine output with the derived metrics and reports built from it.
package forecast

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/nbfc-projection/internal/config"
	"github.com/iwvelando/nbfc-projection/internal/projection"
	"github.com/iwvelando/nbfc-projection/internal/report"
	"go.uber.org/zap"
)

// Forecast holds everything produced for a single run.
type Forecast struct {
	ID              string
	GeneratedAt     time.Time
	Parameters      config.Parameters
	Inputs          projection.ParameterSet
	Derived         projection.Derived
	Projection      projection.Projection
	Summary         report.Summary
	Recommendations []report.Recommendation
	Scenarios       []report.Scenario
	Warnings        []string
}

// GetForecast validates the configured parameters and computes the forecast.
func GetForecast(logger *zap.Logger, conf config.Configuration) (*Forecast, error) {
	return GetForecastAt(logger, conf, time.Now())
}

// GetForecastAt computes the forecast with an injectable generation time.
func GetForecastAt(logger *zap.Logger, conf config.Configuration, now time.Time) (*Forecast, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	inputs, err := conf.Parameters.ToParameterSet()
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("failed to generate forecast id: %w", err)
	}

	derived := inputs.Derive()
	result := projection.Project(inputs)
	summary := report.Summarize(result, derived.TotalCapital)

	for _, record := range result {
		logger.Debug(fmt.Sprintf("projected month %d", record.Month),
			zap.String("op", "forecast.GetForecast"),
			zap.Float64("disbursed", record.AmountDisbursed),
			zap.Float64("profit", record.Profit),
			zap.Float64("aum", record.AUM),
		)
	}

	logger.Info("forecast computed",
		zap.String("op", "forecast.GetForecast"),
		zap.String("id", id.String()),
		zap.Float64("totalCapital", derived.TotalCapital),
		zap.Float64("totalProfit", summary.TotalProfit),
		zap.Float64("finalAum", summary.FinalAUM),
	)

	return &Forecast{
		ID:              id.String(),
		GeneratedAt:     now,
		Parameters:      conf.Parameters,
		Inputs:          inputs,
		Derived:         derived,
		Projection:      result,
		Summary:         summary,
		Recommendations: report.Recommend(summary, inputs),
		Scenarios:       report.CompareScenarios(summary, derived.DefaultRate, report.DefaultScenarios),
		Warnings:        conf.ValidateConfiguration(),
	}, nil
}
