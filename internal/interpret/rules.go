// Package interpret turns free-form request text into chart specifications.
// Each decision axis (modification, time window, data source, chart type) is
// an ordered table of cue predicates evaluated first-match-wins, so the
// priority between rules is data, not control flow.
package interpret

import (
	"strings"

	"github.com/bizlens/bizlens/internal/domain"
)

type textPredicate func(text string) bool

func containsAny(cues ...string) textPredicate {
	return func(text string) bool {
		for _, cue := range cues {
			if strings.Contains(text, cue) {
				return true
			}
		}
		return false
	}
}

func without(p textPredicate, excluded ...string) textPredicate {
	return func(text string) bool {
		if !p(text) {
			return false
		}
		for _, cue := range excluded {
			if strings.Contains(text, cue) {
				return false
			}
		}
		return true
	}
}

// Cue phrases that mark a request as patching the previous chart.
var modificationCue = containsAny("also", "add", "include", "plus", "with", "and also", "can you also")

// modificationRule decides what a modification request adds. Evaluated in
// order; the margin rule must come first so "profit margin" never falls
// through to the plain profit rule.
type modificationRule struct {
	when    textPredicate
	modType domain.ModificationType
	metrics []string
}

var modificationRules = []modificationRule{
	{containsAny("profit margin", "margin"), domain.ModAddSecondaryAxis, []string{domain.FieldProfitMargin}},
	{containsAny("profit"), domain.ModAddMetric, []string{domain.FieldProfit}},
	{containsAny("revenue"), domain.ModAddMetric, []string{domain.FieldRevenue}},
	{containsAny("expense"), domain.ModAddMetric, []string{domain.FieldExpenses}},
}

// comparisonCue routes extracted months into the comparison set instead of
// the time filter.
var comparisonCue = containsAny("compare", "vs", "versus", "against")

// sourceRule picks the data source and axes for a fresh request.
type sourceRule struct {
	when  textPredicate
	apply func(text string, spec *domain.ChartSpec)
}

var sourceRules = []sourceRule{
	{containsAny("customer", "client"), applyCustomers},
	{without(containsAny("expense breakdown", "cost breakdown", "expense categories", "cost categories"), "revenue", "profit"), applyExpenseCategories},
	{containsAny("region", "area", "location", "geographic"), applyRegions},
}

func applyCustomers(text string, spec *domain.ChartSpec) {
	spec.DataSource = domain.SourceCustomers
	spec.XAxis = domain.FieldNames
	if strings.Contains(text, "margin") {
		spec.YAxis = []string{domain.FieldMargin}
	} else {
		spec.YAxis = []string{domain.FieldRevenue}
	}
}

func applyExpenseCategories(text string, spec *domain.ChartSpec) {
	spec.DataSource = domain.SourceExpenses
	spec.XAxis = domain.FieldCategories
	spec.YAxis = []string{domain.FieldAmounts}
}

func applyRegions(text string, spec *domain.ChartSpec) {
	spec.DataSource = domain.SourceRegions
	spec.XAxis = domain.FieldNames
	spec.YAxis = []string{domain.FieldRevenue}
}

// Metric cues for the default monthly source. Each group is tested
// independently so multi-metric requests collect every match.
var (
	revenueCue = containsAny("revenue", "sales", "income")
	expenseCue = containsAny("expense", "cost", "spending")
)

// applyMonthly builds the y-axis for the monthly default. The expense cue is
// suppressed when "breakdown" appears (that phrasing means the category
// source), and "net profit" requests route to profit rather than margin.
func applyMonthly(text string, spec *domain.ChartSpec) {
	spec.DataSource = domain.SourceMonthly
	spec.XAxis = domain.FieldMonths

	var metrics []string
	if revenueCue(text) {
		metrics = append(metrics, domain.FieldRevenue)
	}
	if expenseCue(text) && !strings.Contains(text, "breakdown") {
		metrics = append(metrics, domain.FieldExpenses)
	}
	if strings.Contains(text, "margin") && !strings.Contains(text, "net profit") {
		metrics = append(metrics, domain.FieldProfitMargin)
	} else if strings.Contains(text, "profit") && !strings.Contains(text, "margin") {
		metrics = append(metrics, domain.FieldProfit)
	}
	if len(metrics) == 0 {
		metrics = []string{domain.FieldRevenue}
	}
	spec.YAxis = metrics
}

// chartTypeRule maps explicit shape keywords to a chart type. Pie outranks
// bar outranks line outranks area.
type chartTypeRule struct {
	when      textPredicate
	chartType domain.ChartType
}

var chartTypeRules = []chartTypeRule{
	{containsAny("pie", "donut", "distribution", "breakdown"), domain.ChartPie},
	{containsAny("bar", "column", "compare", "comparison"), domain.ChartBar},
	{containsAny("line", "trend", "time", "monthly", "over time"), domain.ChartLine},
	{containsAny("area", "filled"), domain.ChartArea},
}

// fallbackChartType picks a shape when no keyword matched: bar suits a
// discrete month selection, pie suits a single metric over a categorical
// source, line covers the rest.
func fallbackChartType(spec domain.ChartSpec) domain.ChartType {
	if len(spec.TimeFilter) > 0 || len(spec.ComparisonSet) > 0 {
		return domain.ChartBar
	}
	if spec.DataSource != domain.SourceMonthly && len(spec.YAxis) == 1 {
		return domain.ChartPie
	}
	return domain.ChartLine
}
