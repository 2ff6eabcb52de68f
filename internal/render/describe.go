package render

import (
	"fmt"
	"strings"

	"github.com/bizlens/bizlens/internal/catalog"
	"github.com/bizlens/bizlens/internal/domain"
)

// Display names for the catalog's metric fields.
var metricLabels = map[string]string{
	domain.FieldRevenue:      "Revenue",
	domain.FieldExpenses:     "Expenses",
	domain.FieldProfit:       "Net Profit",
	domain.FieldProfitMargin: "Profit Margin",
	domain.FieldMargin:       "Margin",
	domain.FieldAmounts:      "Expenses",
}

// Axis titles for the catalog's categorical fields.
var axisTitles = map[string]string{
	domain.FieldMonths:     "Month",
	domain.FieldNames:      "Name",
	domain.FieldCategories: "Category",
}

func metricLabel(metric string) string {
	if l, ok := metricLabels[metric]; ok {
		return l
	}
	return metric
}

func axisTitle(field string) string {
	if t, ok := axisTitles[field]; ok {
		return t
	}
	return field
}

func joinedMetricLabels(metrics []string) string {
	labels := make([]string, 0, len(metrics))
	for _, m := range metrics {
		labels = append(labels, metricLabel(m))
	}
	return strings.Join(labels, " & ")
}

// Describe produces the user-facing acknowledgment sentence for a spec. The
// same spec always yields the identical string.
func Describe(spec domain.ChartSpec) string {
	var b strings.Builder
	b.WriteString(chartTypeName(spec.ChartType))
	b.WriteString(" chart showing ")
	b.WriteString(strings.Join(spec.YAxis, ", "))
	b.WriteString(" by ")
	b.WriteString(spec.XAxis)

	if len(spec.ComparisonSet) > 0 {
		b.WriteString(" comparing ")
		b.WriteString(strings.Join(spec.ComparisonSet, " vs "))
	} else if len(spec.TimeFilter) > 0 {
		b.WriteString(" for ")
		b.WriteString(strings.Join(spec.TimeFilter, ", "))
	}
	return b.String()
}

func chartTypeName(t domain.ChartType) string {
	switch t {
	case domain.ChartBar:
		return "Bar"
	case domain.ChartPie:
		return "Pie"
	case domain.ChartArea:
		return "Area"
	default:
		return "Line"
	}
}

// buildTitle derives the chart heading. Filtered charts carry a time-period
// suffix: "(A vs B)" for a two-month selection, a comma list otherwise.
func buildTitle(spec domain.ChartSpec, labels []string) string {
	suffix := ""
	if len(spec.FilterLabels()) > 0 {
		if len(labels) == 2 {
			suffix = fmt.Sprintf(" (%s vs %s)", labels[0], labels[1])
		} else if len(labels) > 0 {
			suffix = fmt.Sprintf(" (%s)", strings.Join(labels, ", "))
		}
	}

	switch spec.ChartType {
	case domain.ChartPie:
		return joinedMetricLabels(spec.YAxis) + " Distribution" + suffix
	case domain.ChartBar:
		return joinedMetricLabels(spec.YAxis) + " by " + axisTitle(spec.XAxis) + suffix
	case domain.ChartLine:
		if len(spec.SecondaryAxis) > 0 {
			return joinedMetricLabels(spec.YAxis) + " & " + joinedMetricLabels(spec.SecondaryAxis) + " (Dual Axis)" + suffix
		}
		return joinedMetricLabels(spec.YAxis) + " Trend" + suffix
	case domain.ChartArea:
		return joinedMetricLabels(spec.YAxis) + " Trend" + suffix
	}
	return joinedMetricLabels(spec.YAxis) + suffix
}

// primaryAxisTitle labels the left scale by the shared unit of the plotted
// metrics, falling back to a neutral label when units mix.
func primaryAxisTitle(src *catalog.Source, currency string, metrics []string) string {
	switch uniformUnit(src, metrics) {
	case catalog.UnitCurrency:
		return "Amount (" + currency + ")"
	case catalog.UnitPercent:
		return "Percent (%)"
	}
	return "Value"
}

func secondaryAxisTitle(src *catalog.Source, currency string, metrics []string) string {
	switch uniformUnit(src, metrics) {
	case catalog.UnitCurrency:
		return joinedMetricLabels(metrics) + " (" + currency + ")"
	case catalog.UnitPercent:
		return joinedMetricLabels(metrics) + " (%)"
	}
	return joinedMetricLabels(metrics)
}

func uniformUnit(src *catalog.Source, metrics []string) catalog.Unit {
	var unit catalog.Unit
	for i, m := range metrics {
		u := src.Unit(m)
		if i == 0 {
			unit = u
			continue
		}
		if u != unit {
			return ""
		}
	}
	return unit
}
