package output

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iwvelando/nbfc-projection/internal/projection"
	"github.com/iwvelando/nbfc-projection/pkg/format"
)

// DefaultBarWidth is the widest bar drawn by BarChart.
const DefaultBarWidth = 40

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode block sparkline scaled between the series
// minimum and maximum.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	low, high := values[0], values[0]
	for _, v := range values[1:] {
		low = math.Min(low, v)
		high = math.Max(high, v)
	}
	span := high - low

	var b strings.Builder
	for _, v := range values {
		idx := 0
		if span > 0 {
			idx = int((v - low) / span * float64(len(sparkBlocks)-1))
		}
		if idx >= len(sparkBlocks) {
			idx = len(sparkBlocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}

// BarChart renders one horizontal bar per value, scaled to the largest
// magnitude. Negative values draw a red bar of light shading.
func BarChart(labels []string, values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}
	if width <= 0 {
		width = DefaultBarWidth
	}

	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, math.Abs(v))
	}

	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}

	positive := lipgloss.NewStyle().Foreground(ColorAccent)
	negative := lipgloss.NewStyle().Foreground(ColorRed)

	var b strings.Builder
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		barLen := 0
		if peak > 0 {
			barLen = int(math.Round(math.Abs(v) / peak * float64(width)))
		}

		var bar string
		if v < 0 {
			bar = negative.Render(strings.Repeat("░", barLen))
		} else {
			bar = positive.Render(strings.Repeat("█", barLen))
		}
		fmt.Fprintf(&b, "%-*s │%s %s\n", labelWidth, label, bar, format.CroreString(v))
	}
	return b.String()
}

// WriteCharts draws the disbursement, profit and AUM series in Crores,
// followed by one sparkline each for revenue, costs, customers and ROI.
func WriteCharts(w io.Writer, result projection.Projection) error {
	labels := make([]string, len(result))
	for i, r := range result {
		labels[i] = fmt.Sprintf("M%d", r.Month)
	}

	charts := []struct {
		title  string
		series func(projection.MonthRecord) float64
	}{
		{"Amount Disbursed (₹ Cr)", func(r projection.MonthRecord) float64 { return r.AmountDisbursed }},
		{"Monthly Profit (₹ Cr)", func(r projection.MonthRecord) float64 { return r.Profit }},
		{"AUM Growth (₹ Cr)", func(r projection.MonthRecord) float64 { return r.AUM }},
	}

	var b strings.Builder
	for _, c := range charts {
		values := result.Series(c.series)
		b.WriteString("\n")
		b.WriteString(headerStyle.Render(c.title))
		b.WriteString("  ")
		b.WriteString(mutedStyle.Render(Sparkline(values)))
		b.WriteString("\n")
		b.WriteString(BarChart(labels, values, DefaultBarWidth))
	}

	trends := []struct {
		title  string
		series func(projection.MonthRecord) float64
		last   func(float64) string
	}{
		{"Revenue", func(r projection.MonthRecord) float64 { return r.Revenue.Total }, format.CroreString},
		{"Costs", func(r projection.MonthRecord) float64 { return r.Costs.Total }, format.CroreString},
		{"Customers", func(r projection.MonthRecord) float64 { return float64(r.Customers) }, func(v float64) string {
			return fmt.Sprintf("%.0f", v)
		}},
		{"ROI %", func(r projection.MonthRecord) float64 { return r.ROIPercent }, func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		}},
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Trends"))
	b.WriteString("\n")
	for _, tr := range trends {
		values := result.Series(tr.series)
		if len(values) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%-9s %s %s\n", tr.title, Sparkline(values), tr.last(values[len(values)-1]))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
