package assistant

import (
	"fmt"

	"github.com/bizlens/bizlens/internal/catalog"
	"github.com/bizlens/bizlens/internal/domain"
)

// Summary holds the dashboard headline figures computed from the catalog.
type Summary struct {
	Currency string

	TotalRevenue  float64
	TotalExpenses float64
	TotalProfit   float64

	LatestMonth      string
	LatestRevenue    float64
	LatestProfit     float64
	LatestMargin     float64
	RevenueGrowthPct float64 // latest month vs the one before

	TopCustomer        string
	TopCustomerRevenue float64
	TopExpense         string
	TopExpenseAmount   float64
	TopRegion          string
	TopRegionRevenue   float64
}

// BuildSummary computes dashboard figures from the catalog.
func BuildSummary(cat *catalog.Catalog) (Summary, error) {
	s := Summary{Currency: cat.Currency}

	monthly, ok := cat.Source(domain.SourceMonthly)
	if !ok {
		return s, fmt.Errorf("summary: source %s not in catalog", domain.SourceMonthly)
	}
	revenue, ok := monthly.Metric(domain.FieldRevenue)
	if !ok || len(revenue) == 0 {
		return s, fmt.Errorf("summary: monthly revenue missing")
	}
	expenses, _ := monthly.Metric(domain.FieldExpenses)
	profit, _ := monthly.Metric(domain.FieldProfit)
	margin, _ := monthly.Metric(domain.FieldProfitMargin)

	s.TotalRevenue = sum(revenue)
	s.TotalExpenses = sum(expenses)
	s.TotalProfit = sum(profit)

	last := len(revenue) - 1
	s.LatestMonth = monthly.Labels[last]
	s.LatestRevenue = revenue[last]
	if len(profit) > last {
		s.LatestProfit = profit[last]
	}
	if len(margin) > last {
		s.LatestMargin = margin[last]
	}
	if last > 0 && revenue[last-1] != 0 {
		s.RevenueGrowthPct = (revenue[last] - revenue[last-1]) / revenue[last-1] * 100
	}

	s.TopCustomer, s.TopCustomerRevenue = topOf(cat, domain.SourceCustomers, domain.FieldRevenue)
	s.TopExpense, s.TopExpenseAmount = topOf(cat, domain.SourceExpenses, domain.FieldAmounts)
	s.TopRegion, s.TopRegionRevenue = topOf(cat, domain.SourceRegions, domain.FieldRevenue)

	return s, nil
}

// DeterministicSummaryText renders the summary as prose, used when no LLM is
// available.
func DeterministicSummaryText(s Summary) string {
	return fmt.Sprintf(
		"Across the period the business took in %s %.0f of revenue against %s %.0f of expenses, for %s %.0f net profit. "+
			"%s closed at %s %.0f revenue (%+.1f%% month over month) with a %.1f%% profit margin. "+
			"%s remains the top customer at %s %.0f, %s is the largest expense at %s %.0f, and %s leads regional sales at %s %.0f.",
		s.Currency, s.TotalRevenue, s.Currency, s.TotalExpenses, s.Currency, s.TotalProfit,
		s.LatestMonth, s.Currency, s.LatestRevenue, s.RevenueGrowthPct, s.LatestMargin,
		s.TopCustomer, s.Currency, s.TopCustomerRevenue,
		s.TopExpense, s.Currency, s.TopExpenseAmount,
		s.TopRegion, s.Currency, s.TopRegionRevenue,
	)
}

func topOf(cat *catalog.Catalog, source domain.DataSource, field string) (string, float64) {
	src, ok := cat.Source(source)
	if !ok {
		return "", 0
	}
	values, ok := src.Metric(field)
	if !ok || len(values) == 0 {
		return "", 0
	}
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return src.Labels[best], values[best]
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
