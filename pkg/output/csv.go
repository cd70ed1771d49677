package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/iwvelando/nbfc-projection/internal/projection"
	"github.com/iwvelando/nbfc-projection/pkg/constants"
	"github.com/iwvelando/nbfc-projection/pkg/format"
)

// CSVHeader lists the export columns. Currency columns are in Crores.
var CSVHeader = []string{
	"month",
	"capital_deployed",
	"capital_available",
	"amount_disbursed",
	"num_customers",
	"interest_revenue",
	"processing_revenue",
	"bad_debt_recovery",
	"total_revenue",
	"opex",
	"marketing_cost",
	"api_cost",
	"fund_cost",
	"bad_debt",
	"gst",
	"total_costs",
	"profit",
	"aum",
	"roi_percentage",
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result projection.Projection) error {
	return WriteCSV(os.Stdout, result)
}

// WriteCSV writes one row per month, currency rounded to two places in Crores.
func WriteCSV(w io.Writer, result projection.Projection) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range result {
		record := []string{
			strconv.Itoa(r.Month),
			format.CroreString(r.CapitalDeployed),
			format.CroreString(r.CapitalAvailable),
			format.CroreString(r.AmountDisbursed),
			strconv.Itoa(r.Customers),
			format.CroreString(r.Revenue.Interest),
			format.CroreString(r.Revenue.ProcessingFee),
			format.CroreString(r.Revenue.BadDebtRecovery),
			format.CroreString(r.Revenue.Total),
			format.CroreString(r.Costs.Opex),
			format.CroreString(r.Costs.Marketing),
			format.CroreString(r.Costs.API),
			format.CroreString(r.Costs.FundCost),
			format.CroreString(r.Costs.BadDebt),
			format.CroreString(r.Costs.GST),
			format.CroreString(r.Costs.Total),
			format.CroreString(r.Profit),
			format.CroreString(r.AUM),
			format.Fixed(r.ROIPercent, constants.DecimalPlaces),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row for month %d: %w", r.Month, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// CsvString renders the CSV export into a string.
func CsvString(result projection.Projection) string {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, result); err != nil {
		return ""
	}
	return buf.String()
}

// CSVFileName names the export after the total capital, e.g. nbfc_projection_20.0cr.csv.
func CSVFileName(totalCapital float64) string {
	return fmt.Sprintf("nbfc_projection_%scr.csv", format.ToCrores(totalCapital).StringFixed(1))
}

// SummaryFileName names the summary export, e.g. nbfc_summary_20.0cr.txt.
func SummaryFileName(totalCapital float64) string {
	return fmt.Sprintf("nbfc_summary_%scr.txt", format.ToCrores(totalCapital).StringFixed(1))
}
