package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/nbfc-projection/internal/config"
	"github.com/iwvelando/nbfc-projection/internal/forecast"
	"github.com/iwvelando/nbfc-projection/internal/projection"
	"go.uber.org/zap"
)

var testTime = time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)

func defaultForecast(t *testing.T) *forecast.Forecast {
	t.Helper()
	f, err := forecast.GetForecastAt(zap.NewNop(), config.DefaultConfiguration(), testTime)
	if err != nil {
		t.Fatalf("GetForecastAt() error = %v", err)
	}
	return f
}

func TestCsvFormat(t *testing.T) {
	f := defaultForecast(t)

	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := CsvFormat(f.Projection)

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	if err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}
	if buf.String() != CsvString(f.Projection) {
		t.Error("CsvFormat output differs from CsvString")
	}
}

func TestWriteCSV(t *testing.T) {
	f := defaultForecast(t)

	records, err := csv.NewReader(strings.NewReader(CsvString(f.Projection))).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse csv: %v", err)
	}
	if len(records) != 13 {
		t.Fatalf("expected header plus 12 rows, got %d", len(records))
	}
	if strings.Join(records[0], ",") != strings.Join(CSVHeader, ",") {
		t.Errorf("header = %v", records[0])
	}

	first := records[1]
	tests := []struct {
		column   int
		expected string
	}{
		{0, "1"},
		{1, "5.00"},
		{2, "5.00"},
		{3, "5.59"},
		{4, "2540"},
		{7, "0.00"},
		{9, "0.56"},
		{16, "1.04"},
		{17, "6.63"},
		{18, "18.68"},
	}
	for _, tt := range tests {
		if first[tt.column] != tt.expected {
			t.Errorf("%s = %q, expected %q", CSVHeader[tt.column], first[tt.column], tt.expected)
		}
	}
	if records[12][0] != "12" {
		t.Errorf("last month = %q, expected 12", records[12][0])
	}
}

func TestWriteCSVEmptyProjection(t *testing.T) {
	out := CsvString(projection.Projection{})
	if strings.TrimSpace(out) != strings.Join(CSVHeader, ",") {
		t.Errorf("expected header only, got %q", out)
	}
}

func TestFileNames(t *testing.T) {
	tests := []struct {
		name    string
		capital float64
		csv     string
		summary string
	}{
		{"Default capital", 200000000, "nbfc_projection_20.0cr.csv", "nbfc_summary_20.0cr.txt"},
		{"Fractional capital", 55000000, "nbfc_projection_5.5cr.csv", "nbfc_summary_5.5cr.txt"},
		{"No capital", 0, "nbfc_projection_0.0cr.csv", "nbfc_summary_0.0cr.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CSVFileName(tt.capital); got != tt.csv {
				t.Errorf("CSVFileName() = %q, expected %q", got, tt.csv)
			}
			if got := SummaryFileName(tt.capital); got != tt.summary {
				t.Errorf("SummaryFileName() = %q, expected %q", got, tt.summary)
			}
		})
	}
}

func TestSummaryText(t *testing.T) {
	f := defaultForecast(t)
	text := SummaryText(f)

	expected := []string{
		"NBFC Business Projection Summary",
		"Generated on: 2025-04-01 09:30",
		"Report ID: " + f.ID,
		"- Total Capital: ₹20.0 Crores",
		"- Monthly Interest: 30%",
		"- Processing Fees: 11.8%",
		"- Cost of Funds: 1.5% monthly",
		"- Marketing: 2%",
		"- Average Ticket: ₹22,000",
		"- Rotation Cycle: 30 days",
		"- Collection Rate: 93%",
		"FINANCIAL RESULTS (12 months):",
		"- Risk Profile: 7.0% default rate",
		"- Revenue Growth: Upward trend",
	}
	for _, want := range expected {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q", want)
		}
	}
	if strings.Contains(text, "WARNINGS:") {
		t.Error("default parameters should not produce warnings")
	}
}

func TestSummaryTextWarnings(t *testing.T) {
	conf := config.DefaultConfiguration()
	conf.Parameters.OpexRates.Month1 = 8
	f, err := forecast.GetForecastAt(zap.NewNop(), conf, testTime)
	if err != nil {
		t.Fatalf("GetForecastAt() error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteSummary(&buf, f); err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}
	if !strings.Contains(buf.String(), "WARNINGS:") {
		t.Error("expected warnings section")
	}
}

func TestRevenueTrend(t *testing.T) {
	withRevenue := func(values ...float64) projection.Projection {
		p := make(projection.Projection, len(values))
		for i, v := range values {
			p[i].Month = i + 1
			p[i].Revenue.Total = v
		}
		return p
	}

	tests := []struct {
		name     string
		input    projection.Projection
		expected string
	}{
		{"Single month", withRevenue(10), "Not enough data"},
		{"Growing", withRevenue(10, 25), "Upward trend (2.5x month 1)"},
		{"Shrinking", withRevenue(10, 5), "Downward trend (0.5x month 1)"},
		{"Flat", withRevenue(10, 10), "Flat"},
		{"From zero", withRevenue(0, 10), "Upward trend"},
		{"All zero", withRevenue(0, 0), "Flat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := revenueTrend(tt.input); got != tt.expected {
				t.Errorf("revenueTrend() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestWritePretty(t *testing.T) {
	f := defaultForecast(t)

	var buf bytes.Buffer
	if err := WritePretty(&buf, f, false); err != nil {
		t.Fatalf("WritePretty() error = %v", err)
	}
	out := buf.String()

	expected := []string{
		"NBFC 12-Month Lending Projection",
		f.ID,
		"Monthly Projection",
		"5.59",
		"2540",
		"Scenario Comparison",
		"Conservative (-20%)",
		"Aggressive (+30%)",
		"Recommendations",
		"Total Capital",
		"₹20.0 Cr",
	}
	for _, header := range ProjectionHeaders {
		expected = append(expected, header)
	}
	for _, rec := range f.Recommendations {
		expected = append(expected, rec.Title)
	}
	for _, want := range expected {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q", want)
		}
	}
	if strings.Contains(out, "Amount Disbursed (₹ Cr)") {
		t.Error("charts rendered without being requested")
	}
}

func TestWritePrettyWithCharts(t *testing.T) {
	f := defaultForecast(t)

	var buf bytes.Buffer
	if err := WritePretty(&buf, f, true); err != nil {
		t.Fatalf("WritePretty() error = %v", err)
	}
	for _, title := range []string{"Amount Disbursed (₹ Cr)", "Monthly Profit (₹ Cr)", "AUM Growth (₹ Cr)", "Trends", "Customers", "ROI %"} {
		if !strings.Contains(buf.String(), title) {
			t.Errorf("missing chart %q", title)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	f := defaultForecast(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, f); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	if decoded.ID != f.ID {
		t.Errorf("ID = %q, expected %q", decoded.ID, f.ID)
	}
	if len(decoded.Rows) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(decoded.Rows))
	}
	if decoded.Rows[0].AmountDisbursed != 5.59 {
		t.Errorf("Rows[0].AmountDisbursed = %v, expected 5.59", decoded.Rows[0].AmountDisbursed)
	}
	if decoded.Rows[0].Customers != 2540 {
		t.Errorf("Rows[0].Customers = %d, expected 2540", decoded.Rows[0].Customers)
	}
	if decoded.Metrics.TotalCapitalCrores != 20 {
		t.Errorf("TotalCapitalCrores = %v, expected 20", decoded.Metrics.TotalCapitalCrores)
	}
	if decoded.Metrics.CapitalVsTarget != 0 {
		t.Errorf("CapitalVsTarget = %v, expected 0", decoded.Metrics.CapitalVsTarget)
	}
	if decoded.Metrics.DefaultRate != 7 {
		t.Errorf("DefaultRate = %v, expected 7", decoded.Metrics.DefaultRate)
	}
	if len(decoded.Scenarios) != 3 {
		t.Errorf("expected 3 scenarios, got %d", len(decoded.Scenarios))
	}
	if decoded.Parameters.AvgLoanTicket != 22000 {
		t.Errorf("Parameters.AvgLoanTicket = %v, expected 22000", decoded.Parameters.AvgLoanTicket)
	}
}

func TestSparkline(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected string
	}{
		{"Empty", nil, ""},
		{"Rising", []float64{1, 2, 3}, "▁▄█"},
		{"Constant", []float64{5, 5, 5}, "▁▁▁"},
		{"Negative floor", []float64{-4, 0, 4}, "▁▄█"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sparkline(tt.values); got != tt.expected {
				t.Errorf("Sparkline() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestBarChart(t *testing.T) {
	out := BarChart([]string{"M1", "M2", "M3"}, []float64{10, -5, 0}, 10)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(lines))
	}
	if got := strings.Count(lines[0], "█"); got != 10 {
		t.Errorf("largest bar has %d blocks, expected 10", got)
	}
	if got := strings.Count(lines[1], "░"); got != 5 {
		t.Errorf("negative bar has %d shaded blocks, expected 5", got)
	}
	if strings.Contains(lines[2], "█") || strings.Contains(lines[2], "░") {
		t.Errorf("zero value should draw no bar: %q", lines[2])
	}
}

func TestBarChartDefaults(t *testing.T) {
	if BarChart(nil, nil, 10) != "" {
		t.Error("expected empty chart for no values")
	}
	out := BarChart([]string{"only"}, []float64{3}, 0)
	if got := strings.Count(out, "█"); got != DefaultBarWidth {
		t.Errorf("default width drew %d blocks, expected %d", got, DefaultBarWidth)
	}
}
