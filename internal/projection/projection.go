// Package projection holds the month-by-month lending projection engine and
// the data structures it consumes and produces.
package projection

import (
	"math"

	"github.com/iwvelando/nbfc-projection/pkg/constants"
)

// OpexRates holds the operating-expense percentage for each business phase.
// Month1 is collected for display only; the first month always uses
// constants.FirstMonthOpexRate.
type OpexRates struct {
	Month1     float64
	Month2     float64
	Month3     float64
	Month4Plus float64
}

// Collections holds the share of each disbursement collected at T+0, T+30,
// T+60 and T+90 days. Whatever is left over defaults.
type Collections struct {
	T0  float64
	T30 float64
	T60 float64
	T90 float64
}

// Total returns the overall collection rate.
func (c Collections) Total() float64 {
	return c.T0 + c.T30 + c.T60 + c.T90
}

// DefaultRate returns the percentage of disbursement never collected.
func (c Collections) DefaultRate() float64 {
	return constants.PercentageMultiplier - c.Total()
}

// ParameterSet is the validated input to Project. Currency values are in
// absolute units; rates are percentages.
type ParameterSet struct {
	CapitalByMonth      [constants.CapitalInjectionMonths]float64
	ProcessingFeeRate   float64
	MonthlyInterestRate float64
	CostOfFundsRate     float64
	MarketingRate       float64
	OpexRates           OpexRates
	AvgLoanTicket       float64
	RotationCycleDays   int
	Collections         Collections
}

// CapitalInjected returns the fresh capital for the zero-based month.
func (p ParameterSet) CapitalInjected(month int) float64 {
	if month < 0 || month >= len(p.CapitalByMonth) {
		return 0
	}
	return p.CapitalByMonth[month]
}

// OpexRate returns the OpEx percentage applied in the zero-based month.
func (p ParameterSet) OpexRate(month int) float64 {
	switch month {
	case 0:
		return constants.FirstMonthOpexRate
	case 1:
		return p.OpexRates.Month2
	case 2:
		return p.OpexRates.Month3
	default:
		return p.OpexRates.Month4Plus
	}
}

// TotalCapital returns the sum of all injected capital.
func (p ParameterSet) TotalCapital() float64 {
	total := 0.0
	for _, capital := range p.CapitalByMonth {
		total += capital
	}
	return total
}

// Derived holds run-wide figures computed once from a ParameterSet.
type Derived struct {
	TotalCapital   float64
	CollectionRate float64
	DefaultRate    float64
	CyclesPerYear  float64
	// AnnualROI is a fraction: (1+monthly)^12 - 1.
	AnnualROI float64
}

// Derive computes the run-wide figures.
func (p ParameterSet) Derive() Derived {
	d := Derived{
		TotalCapital:   p.TotalCapital(),
		CollectionRate: p.Collections.Total(),
		DefaultRate:    p.Collections.DefaultRate(),
		AnnualROI:      math.Pow(1+p.MonthlyInterestRate/constants.PercentageMultiplier, constants.MonthsPerYear) - 1,
	}
	if p.RotationCycleDays > 0 {
		d.CyclesPerYear = constants.DaysPerYear / float64(p.RotationCycleDays)
	}
	return d
}

// Revenue breaks down one month's income.
type Revenue struct {
	Interest        float64
	ProcessingFee   float64
	BadDebtRecovery float64
	Total           float64
}

// Costs breaks down one month's expenses.
type Costs struct {
	Opex      float64
	Marketing float64
	API       float64
	FundCost  float64
	BadDebt   float64
	GST       float64
	Total     float64
}

// MonthRecord is the outcome of a single simulated month.
type MonthRecord struct {
	Month            int
	CapitalDeployed  float64
	CapitalAvailable float64
	AmountDisbursed  float64
	Customers        int
	Revenue          Revenue
	Costs            Costs
	Profit           float64
	AUM              float64
	ROIPercent       float64
}

// Projection is the ordered sequence of monthly records, month 1 first.
type Projection []MonthRecord

// Final returns the last record, or the zero record for an empty projection.
func (p Projection) Final() MonthRecord {
	if len(p) == 0 {
		return MonthRecord{}
	}
	return p[len(p)-1]
}

// Series extracts one value per month.
func (p Projection) Series(value func(MonthRecord) float64) []float64 {
	series := make([]float64, len(p))
	for i, record := range p {
		series[i] = value(record)
	}
	return series
}
