package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iwvelando/nbfc-projection/internal/forecast"
	"github.com/iwvelando/nbfc-projection/internal/projection"
	"github.com/iwvelando/nbfc-projection/pkg/constants"
	"github.com/iwvelando/nbfc-projection/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const summaryTimeLayout = "2006-01-02 15:04"

// SummaryFormat prints the executive summary.
func SummaryFormat(f *forecast.Forecast) error {
	return WriteSummary(os.Stdout, f)
}

// WriteSummary writes the plain-text executive summary.
func WriteSummary(w io.Writer, f *forecast.Forecast) error {
	_, err := io.WriteString(w, SummaryText(f))
	return err
}

// SummaryText renders the plain-text executive summary.
func SummaryText(f *forecast.Forecast) string {
	p := message.NewPrinter(language.English)
	params := f.Inputs
	s := f.Summary

	var b strings.Builder
	b.WriteString("NBFC Business Projection Summary\n")
	fmt.Fprintf(&b, "Generated on: %s\n", f.GeneratedAt.Format(summaryTimeLayout))
	fmt.Fprintf(&b, "Report ID: %s\n", f.ID)

	b.WriteString("\nBUSINESS PARAMETERS:\n")
	fmt.Fprintf(&b, "- Total Capital: %s%s Crores\n", constants.CurrencySymbol, format.ToCrores(f.Derived.TotalCapital).StringFixed(1))
	fmt.Fprintf(&b, "- Monthly Interest: %g%%\n", params.MonthlyInterestRate)
	fmt.Fprintf(&b, "- Processing Fees: %g%%\n", params.ProcessingFeeRate)
	fmt.Fprintf(&b, "- Cost of Funds: %g%% monthly\n", params.CostOfFundsRate)
	fmt.Fprintf(&b, "- Marketing: %g%%\n", params.MarketingRate)
	b.WriteString(p.Sprintf("- Average Ticket: %s%.0f\n", constants.CurrencySymbol, params.AvgLoanTicket))
	fmt.Fprintf(&b, "- Rotation Cycle: %d days\n", params.RotationCycleDays)
	fmt.Fprintf(&b, "- Collection Rate: %g%%\n", f.Derived.CollectionRate)

	b.WriteString("\nFINANCIAL RESULTS (12 months):\n")
	fmt.Fprintf(&b, "- Total Revenue: %s%s Crores\n", constants.CurrencySymbol, format.CroreString(s.TotalRevenue))
	fmt.Fprintf(&b, "- Total Costs: %s%s Crores\n", constants.CurrencySymbol, format.CroreString(s.TotalCosts))
	fmt.Fprintf(&b, "- Net Profit: %s%s Crores\n", constants.CurrencySymbol, format.CroreString(s.TotalProfit))
	fmt.Fprintf(&b, "- Final AUM: %s%s Crores\n", constants.CurrencySymbol, format.CroreString(s.FinalAUM))
	fmt.Fprintf(&b, "- Average Monthly ROI: %s\n", format.Percent(s.AverageROI, 1))
	b.WriteString(p.Sprintf("- Total Customers: %d\n", s.TotalCustomers))

	b.WriteString("\nGROWTH METRICS:\n")
	fmt.Fprintf(&b, "- Capital Multiplication: %sx\n", format.Fixed(s.CapitalMultiple, 1))
	fmt.Fprintf(&b, "- Revenue Growth: %s\n", revenueTrend(f.Projection))
	fmt.Fprintf(&b, "- Risk Profile: %s default rate\n", format.Percent(f.Derived.DefaultRate, 1))

	if len(f.Warnings) > 0 {
		b.WriteString("\nWARNINGS:\n")
		for _, warning := range f.Warnings {
			fmt.Fprintf(&b, "- %s\n", warning)
		}
	}

	return b.String()
}

// revenueTrend describes how revenue moved between the first and last month.
func revenueTrend(result projection.Projection) string {
	if len(result) < 2 {
		return "Not enough data"
	}
	first := result[0].Revenue.Total
	last := result.Final().Revenue.Total
	switch {
	case first <= 0:
		if last > 0 {
			return "Upward trend"
		}
		return "Flat"
	case last > first:
		return fmt.Sprintf("Upward trend (%sx month 1)", format.Fixed(last/first, 1))
	case last < first:
		return fmt.Sprintf("Downward trend (%sx month 1)", format.Fixed(last/first, 1))
	default:
		return "Flat"
	}
}
