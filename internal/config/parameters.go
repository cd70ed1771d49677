package config

import (
	"errors"
	"fmt"

	"github.com/iwvelando/nbfc-projection/internal/projection"
	"github.com/iwvelando/nbfc-projection/pkg/constants"
	"github.com/iwvelando/nbfc-projection/pkg/validation"
)

// Parameters are the user-facing business inputs. Capital is given in Crores
// and converted to absolute units by ToParameterSet.
type Parameters struct {
	CapitalCrores       []float64   `yaml:"capitalCrores" json:"capitalCrores" toml:"capitalCrores" mapstructure:"capitalCrores"`
	ProcessingFeeRate   float64     `yaml:"processingFeeRate" json:"processingFeeRate" toml:"processingFeeRate" mapstructure:"processingFeeRate"`
	MonthlyInterestRate float64     `yaml:"monthlyInterestRate" json:"monthlyInterestRate" toml:"monthlyInterestRate" mapstructure:"monthlyInterestRate"`
	CostOfFundsRate     float64     `yaml:"costOfFundsRate" json:"costOfFundsRate" toml:"costOfFundsRate" mapstructure:"costOfFundsRate"`
	MarketingRate       float64     `yaml:"marketingRate" json:"marketingRate" toml:"marketingRate" mapstructure:"marketingRate"`
	OpexRates           OpexRates   `yaml:"opexRates" json:"opexRates" toml:"opexRates" mapstructure:"opexRates"`
	AvgLoanTicket       float64     `yaml:"avgLoanTicket" json:"avgLoanTicket" toml:"avgLoanTicket" mapstructure:"avgLoanTicket"`
	RotationCycleDays   int         `yaml:"rotationCycleDays" json:"rotationCycleDays" toml:"rotationCycleDays" mapstructure:"rotationCycleDays"`
	Collections         Collections `yaml:"collections" json:"collections" toml:"collections" mapstructure:"collections"`
}

// OpexRates holds the OpEx percentage per phase.
type OpexRates struct {
	Month1     float64 `yaml:"month1" json:"month1" toml:"month1" mapstructure:"month1"`
	Month2     float64 `yaml:"month2" json:"month2" toml:"month2" mapstructure:"month2"`
	Month3     float64 `yaml:"month3" json:"month3" toml:"month3" mapstructure:"month3"`
	Month4Plus float64 `yaml:"month4Plus" json:"month4Plus" toml:"month4Plus" mapstructure:"month4Plus"`
}

// Collections holds the percentage collected in each window.
type Collections struct {
	T0  float64 `yaml:"t0" json:"t0" toml:"t0" mapstructure:"t0"`
	T30 float64 `yaml:"t30" json:"t30" toml:"t30" mapstructure:"t30"`
	T60 float64 `yaml:"t60" json:"t60" toml:"t60" mapstructure:"t60"`
	T90 float64 `yaml:"t90" json:"t90" toml:"t90" mapstructure:"t90"`
}

// DefaultParameters returns the reference plan: 20 Cr deployed over five
// months at 30% monthly interest.
func DefaultParameters() Parameters {
	return Parameters{
		CapitalCrores:       []float64{5, 4, 4, 4, 3},
		ProcessingFeeRate:   11.8,
		MonthlyInterestRate: 30.0,
		CostOfFundsRate:     1.5,
		MarketingRate:       2.0,
		OpexRates: OpexRates{
			Month1:     constants.FirstMonthOpexRate,
			Month2:     10.0,
			Month3:     5.0,
			Month4Plus: 4.0,
		},
		AvgLoanTicket:     22000,
		RotationCycleDays: 30,
		Collections: Collections{
			T0:  80,
			T30: 5,
			T60: 5,
			T90: 3,
		},
	}
}

// Validate checks every parameter against its allowed range and returns all
// violations joined together.
func (p Parameters) Validate() error {
	var errs []error

	if len(p.CapitalCrores) > constants.CapitalInjectionMonths {
		errs = append(errs, fmt.Errorf("capitalCrores accepts at most %d months: got %d",
			constants.CapitalInjectionMonths, len(p.CapitalCrores)))
	}
	for i, capital := range p.CapitalCrores {
		errs = append(errs, validation.ValidateNonNegative(fmt.Sprintf("capitalCrores[month %d]", i+1), capital))
	}

	errs = append(errs,
		validation.ValidateRange("processingFeeRate", p.ProcessingFeeRate,
			constants.MinProcessingFeeRate, constants.MaxProcessingFeeRate),
		validation.ValidateRange("monthlyInterestRate", p.MonthlyInterestRate,
			constants.MinMonthlyInterestRate, constants.MaxMonthlyInterestRate),
		validation.ValidateRange("costOfFundsRate", p.CostOfFundsRate,
			constants.MinCostOfFundsRate, constants.MaxCostOfFundsRate),
		validation.ValidateRange("marketingRate", p.MarketingRate,
			constants.MinMarketingRate, constants.MaxMarketingRate),
		validation.ValidateRange("opexRates.month2", p.OpexRates.Month2, constants.MinOpexRate, constants.MaxOpexRate),
		validation.ValidateRange("opexRates.month3", p.OpexRates.Month3, constants.MinOpexRate, constants.MaxOpexRate),
		validation.ValidateRange("opexRates.month4Plus", p.OpexRates.Month4Plus, constants.MinOpexRate, constants.MaxOpexRate),
		validation.ValidateRange("avgLoanTicket", p.AvgLoanTicket,
			constants.MinAvgLoanTicket, constants.MaxAvgLoanTicket),
		validation.ValidateIntRange("rotationCycleDays", p.RotationCycleDays,
			constants.MinRotationCycleDays, constants.MaxRotationCycleDays),
		validation.ValidateNonNegative("collections.t0", p.Collections.T0),
		validation.ValidateNonNegative("collections.t30", p.Collections.T30),
		validation.ValidateNonNegative("collections.t60", p.Collections.T60),
		validation.ValidateNonNegative("collections.t90", p.Collections.T90),
		validation.ValidateMaxTotal("collections", constants.MaxCollectionTotal,
			p.Collections.T0, p.Collections.T30, p.Collections.T60, p.Collections.T90),
	)

	return errors.Join(errs...)
}

// ToParameterSet validates the parameters and converts them into the engine's
// input, scaling capital from Crores to absolute units.
func (p Parameters) ToParameterSet() (projection.ParameterSet, error) {
	if err := p.Validate(); err != nil {
		return projection.ParameterSet{}, fmt.Errorf("invalid parameters: %w", err)
	}

	set := projection.ParameterSet{
		ProcessingFeeRate:   p.ProcessingFeeRate,
		MonthlyInterestRate: p.MonthlyInterestRate,
		CostOfFundsRate:     p.CostOfFundsRate,
		MarketingRate:       p.MarketingRate,
		OpexRates: projection.OpexRates{
			Month1:     p.OpexRates.Month1,
			Month2:     p.OpexRates.Month2,
			Month3:     p.OpexRates.Month3,
			Month4Plus: p.OpexRates.Month4Plus,
		},
		AvgLoanTicket:     p.AvgLoanTicket,
		RotationCycleDays: p.RotationCycleDays,
		Collections: projection.Collections{
			T0:  p.Collections.T0,
			T30: p.Collections.T30,
			T60: p.Collections.T60,
			T90: p.Collections.T90,
		},
	}
	for i, capital := range p.CapitalCrores {
		set.CapitalByMonth[i] = capital * constants.CroreDivisor
	}

	return set, nil
}

// TotalCapitalCrores sums the configured capital.
func (p Parameters) TotalCapitalCrores() float64 {
	total := 0.0
	for _, capital := range p.CapitalCrores {
		total += capital
	}
	return total
}
