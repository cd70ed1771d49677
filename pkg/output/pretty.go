package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/iwvelando/nbfc-projection/internal/forecast"
	"github.com/iwvelando/nbfc-projection/internal/report"
	"github.com/iwvelando/nbfc-projection/pkg/format"
)

// Theme colors
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	cellStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	lossStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Padding(0, 1)
)

var levelStyles = map[report.Level]lipgloss.Style{
	report.LevelGood: lipgloss.NewStyle().Foreground(ColorGreen),
	report.LevelFair: lipgloss.NewStyle().Foreground(ColorOrange),
	report.LevelPoor: lipgloss.NewStyle().Foreground(ColorRed),
}

// ProjectionHeaders are the columns of the monthly projection table.
var ProjectionHeaders = []string{
	"Month", "Deployed", "Available", "Disbursed", "Customers",
	"Revenue", "Costs", "Profit", "AUM", "ROI %",
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(f *forecast.Forecast, charts bool) error {
	return WritePretty(os.Stdout, f, charts)
}

// WritePretty renders the key metrics, monthly table, summary, scenarios and
// recommendations.
func WritePretty(w io.Writer, f *forecast.Forecast, charts bool) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("NBFC 12-Month Lending Projection"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Report %s generated %s", f.ID, f.GeneratedAt.Format(summaryTimeLayout))))
	b.WriteString("\n\n")

	b.WriteString(renderKeyMetrics(NewKeyMetrics(f.Derived, f.Inputs)))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Monthly Projection (₹ Crores)"))
	b.WriteString("\n")
	b.WriteString(ProjectionTable(f).Render())
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("12-Month Summary"))
	b.WriteString("\n")
	b.WriteString(summaryTable(f.Summary).Render())
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Scenario Comparison"))
	b.WriteString("\n")
	b.WriteString(scenarioTable(f.Scenarios).Render())
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Recommendations"))
	b.WriteString("\n")
	for _, rec := range f.Recommendations {
		b.WriteString(renderRecommendation(rec))
		b.WriteString("\n")
	}

	if len(f.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Warnings"))
		b.WriteString("\n")
		for _, warning := range f.Warnings {
			b.WriteString(levelStyles[report.LevelFair].Render("! " + warning))
			b.WriteString("\n")
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	if charts {
		return WriteCharts(w, f.Projection)
	}
	return nil
}

// ProjectionTable builds the monthly table; loss months render in red.
func ProjectionTable(f *forecast.Forecast) *table.Table {
	rows := make([][]string, 0, len(f.Projection))
	for _, r := range f.Projection {
		rows = append(rows, []string{
			strconv.Itoa(r.Month),
			format.CroreString(r.CapitalDeployed),
			format.CroreString(r.CapitalAvailable),
			format.CroreString(r.AmountDisbursed),
			strconv.Itoa(r.Customers),
			format.CroreString(r.Revenue.Total),
			format.CroreString(r.Costs.Total),
			format.CroreString(r.Profit),
			format.CroreString(r.AUM),
			format.Fixed(r.ROIPercent, 1),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(ProjectionHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if row >= 0 && row < len(f.Projection) && f.Projection[row].Profit < 0 {
				return lossStyle.Align(alignFor(col))
			}
			return cellStyle.Align(alignFor(col))
		})
}

func summaryTable(s report.Summary) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Rows(
			[]string{"Total Revenue", format.Crores(s.TotalRevenue)},
			[]string{"Total Costs", format.Crores(s.TotalCosts)},
			[]string{"Net Profit", format.Crores(s.TotalProfit)},
			[]string{"Final AUM", format.Crores(s.FinalAUM)},
			[]string{"Average Monthly ROI", format.Percent(s.AverageROI, 1)},
			[]string{"Total Customers", strconv.Itoa(s.TotalCustomers)},
			[]string{"Capital Multiple", format.Fixed(s.CapitalMultiple, 1) + "x"},
		).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cellStyle.Align(alignFor(col))
		})
}

func scenarioTable(scenarios []report.Scenario) *table.Table {
	rows := make([][]string, 0, len(scenarios))
	for _, s := range scenarios {
		rows = append(rows, []string{
			s.Name,
			format.Crores(s.TotalProfit),
			format.Percent(s.AverageROI, 1),
			format.Percent(s.DefaultRate, 1),
		})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers("Scenario", "Net Profit", "Avg ROI", "Default Rate").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle.Align(alignFor(col))
		})
}

func renderKeyMetrics(m KeyMetrics) string {
	vsTarget := format.Fixed(m.CapitalVsTarget, 1)
	if m.CapitalVsTarget >= 0 {
		vsTarget = "+" + vsTarget
	}
	cards := []string{
		metricCard("Total Capital", "₹"+format.Fixed(m.TotalCapitalCrores, 1)+" Cr", vsTarget+" Cr vs target"),
		metricCard("Annual ROI", format.Percent(m.AnnualROIPercent, 1), format.Fixed(m.CyclesPerYear, 1)+" cycles/year"),
		metricCard("Collection Rate", format.Percent(m.CollectionRate, 1), format.Percent(m.DefaultRate, 1)+" default"),
		metricCard("Avg Ticket", format.Currency(m.AvgLoanTicket), "per customer"),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func metricCard(label, value, delta string) string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1).
		MarginRight(1)
	content := lipgloss.JoinVertical(lipgloss.Left,
		mutedStyle.Render(label),
		lipgloss.NewStyle().Bold(true).Foreground(ColorText).Render(value),
		mutedStyle.Render(delta),
	)
	return card.Render(content)
}

func renderRecommendation(rec report.Recommendation) string {
	style, ok := levelStyles[rec.Level]
	if !ok {
		style = mutedStyle
	}
	return style.Render(fmt.Sprintf("[%s] %s: %s", rec.Level, rec.Title, rec.Message))
}

func alignFor(col int) lipgloss.Position {
	if col == 0 {
		return lipgloss.Left
	}
	return lipgloss.Right
}
