package forecast

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/nbfc-projection/internal/config"
	"github.com/iwvelando/nbfc-projection/internal/projection"
	"github.com/iwvelando/nbfc-projection/pkg/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetForecastDefaults(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	conf := config.DefaultConfiguration()

	result, err := GetForecast(logger, conf)
	if err != nil {
		t.Fatalf("GetForecast() error = %v", err)
	}

	if _, err := uuid.Parse(result.ID); err != nil {
		t.Errorf("ID %q is not a uuid: %v", result.ID, err)
	}
	if len(result.Projection) != 12 {
		t.Fatalf("expected 12 months, got %d", len(result.Projection))
	}
	if result.Derived.TotalCapital != 200000000 {
		t.Errorf("TotalCapital = %v, expected 200000000", result.Derived.TotalCapital)
	}
	if result.Summary.FinalAUM != result.Projection[11].AUM {
		t.Errorf("FinalAUM = %v, expected %v", result.Summary.FinalAUM, result.Projection[11].AUM)
	}
	if len(result.Recommendations) == 0 {
		t.Error("expected recommendations")
	}
	if len(result.Scenarios) != 3 {
		t.Errorf("expected 3 scenarios, got %d", len(result.Scenarios))
	}
	if len(result.Warnings) != 0 {
		t.Errorf("expected no warnings for defaults, got %v", result.Warnings)
	}
}

func TestGetForecastMatchesEngine(t *testing.T) {
	conf := config.DefaultConfiguration()
	result, err := GetForecast(nil, conf)
	if err != nil {
		t.Fatalf("GetForecast() error = %v", err)
	}

	inputs, err := conf.Parameters.ToParameterSet()
	if err != nil {
		t.Fatalf("ToParameterSet() error = %v", err)
	}
	if !reflect.DeepEqual(result.Projection, projection.Project(inputs)) {
		t.Error("forecast projection differs from a direct engine run")
	}
}

func TestGetForecastInvalidParameters(t *testing.T) {
	conf := config.DefaultConfiguration()
	conf.Parameters.MonthlyInterestRate = 60

	_, err := GetForecast(zap.NewNop(), conf)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "monthlyInterestRate out of range [15,50]: got 60") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGetForecastAtUsesGivenTime(t *testing.T) {
	now := time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)
	result, err := GetForecastAt(zap.NewNop(), config.DefaultConfiguration(), now)
	if err != nil {
		t.Fatalf("GetForecastAt() error = %v", err)
	}
	if !result.GeneratedAt.Equal(now) {
		t.Errorf("GeneratedAt = %v, expected %v", result.GeneratedAt, now)
	}
}

func TestGetForecastLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	conf := config.DefaultConfiguration()
	conf.Parameters.OpexRates.Month1 = 8

	result, err := GetForecast(zap.New(core), conf)
	if err != nil {
		t.Fatalf("GetForecast() error = %v", err)
	}

	if got := logs.FilterMessage("forecast computed").Len(); got != 1 {
		t.Errorf("expected one summary log entry, got %d", got)
	}
	if got := logs.FilterField(zap.String("op", "forecast.GetForecast")).Len(); got != 13 {
		t.Errorf("expected 13 entries tagged with op, got %d", got)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("expected the ignored month-one opex warning, got %v", result.Warnings)
	}
}

func TestGetForecastScenariosAndRecommendations(t *testing.T) {
	result, err := GetForecast(nil, config.DefaultConfiguration())
	if err != nil {
		t.Fatalf("GetForecast() error = %v", err)
	}

	conservative := testutil.FindScenario(result.Scenarios, "Conservative (-20%)")
	if conservative == nil {
		t.Fatal("conservative scenario missing")
	}
	if conservative.TotalProfit != result.Summary.TotalProfit*0.8 {
		t.Errorf("conservative profit = %v, expected %v", conservative.TotalProfit, result.Summary.TotalProfit*0.8)
	}

	current := testutil.FindScenario(result.Scenarios, "Current")
	if current == nil || current.DefaultRate != 7 {
		t.Errorf("current scenario = %+v, expected a 7%% default rate", current)
	}

	for _, title := range []string{"Low Risk", "Standard Cycles"} {
		if testutil.FindRecommendation(result.Recommendations, title) == nil {
			t.Errorf("recommendation %q missing", title)
		}
	}
	if testutil.FindRecommendation(result.Recommendations, "Marketing Optimization") != nil {
		t.Error("marketing review should not be suggested at the default 2% spend")
	}
}
