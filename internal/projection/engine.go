package projection

import (
	"math"

	"github.com/iwvelando/nbfc-projection/pkg/constants"
	"github.com/iwvelando/nbfc-projection/pkg/mathutil"
)

// Project runs the twelve-month recurrence. It is a pure function of params:
// it performs no I/O, keeps no state, and does not validate its input.
func Project(params ParameterSet) Projection {
	defaultRate := params.Collections.DefaultRate()
	results := make(Projection, 0, constants.MonthsPerYear)

	var previous MonthRecord
	for month := 0; month < constants.MonthsPerYear; month++ {
		record := projectMonth(params, month, defaultRate, previous)
		results = append(results, record)
		previous = record
	}

	return results
}

// projectMonth computes one month from the previous month's record. For the
// first month previous is the zero record.
func projectMonth(params ParameterSet, month int, defaultRate float64, previous MonthRecord) MonthRecord {
	injected := params.CapitalInjected(month)

	// Only positive profit is reinvested.
	capitalAvailable := injected
	if month > 0 {
		capitalAvailable = previous.AUM + injected + mathutil.Max(previous.Profit, 0)
	}

	// The processing fee is a markup on deployable capital.
	markup := 1 + params.ProcessingFeeRate/constants.PercentageMultiplier
	disbursed := capitalAvailable * markup

	customers := 0
	if params.AvgLoanTicket > 0 {
		customers = int(math.Floor(disbursed / params.AvgLoanTicket))
	}

	opex := mathutil.ApplyPercentage(disbursed, params.OpexRate(month))
	if month == 0 && disbursed <= constants.FirstMonthOpexThreshold {
		opex = constants.FirstMonthOpexFloor
	}

	fundCost := 0.0
	if isFundCostMonth(month) && injected > 0 {
		fundCost = mathutil.ApplyPercentage(injected, params.CostOfFundsRate)
	}

	badDebt := mathutil.ApplyPercentage(disbursed, defaultRate)
	processingFee := mathutil.ApplyPercentage(disbursed, params.ProcessingFeeRate)

	costs := Costs{
		Opex:      opex,
		Marketing: mathutil.ApplyPercentage(disbursed, params.MarketingRate),
		API:       disbursed * constants.APICostRate,
		FundCost:  fundCost,
		BadDebt:   badDebt,
		GST:       processingFee * constants.GSTRate,
	}
	costs.Total = costs.Opex + costs.API + costs.Marketing + costs.FundCost + costs.BadDebt + costs.GST

	revenue := Revenue{
		Interest:      mathutil.ApplyPercentage(disbursed, params.MonthlyInterestRate),
		ProcessingFee: processingFee,
	}
	if month > 0 {
		revenue.BadDebtRecovery = badDebt * constants.BadDebtRecoveryRate
	}
	revenue.Total = revenue.Interest + revenue.ProcessingFee + revenue.BadDebtRecovery

	profit := revenue.Total - costs.Total

	return MonthRecord{
		Month:            month + 1,
		CapitalDeployed:  injected,
		CapitalAvailable: capitalAvailable,
		AmountDisbursed:  disbursed,
		Customers:        customers,
		Revenue:          revenue,
		Costs:            costs,
		Profit:           profit,
		AUM:              disbursed + previous.AUM*constants.AUMRetentionFactor + profit,
		ROIPercent:       mathutil.CalculatePercentage(profit, disbursed),
	}
}

func isFundCostMonth(month int) bool {
	for _, m := range constants.FundCostMonths {
		if m == month {
			return true
		}
	}
	return false
}
