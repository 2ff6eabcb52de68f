package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bizlens/bizlens/internal/assistant"
	"github.com/bizlens/bizlens/internal/catalog"
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorDim).
	Padding(0, 2)

// FormatDashboard renders the headline metric cards and the latest-month
// figures.
func FormatDashboard(s assistant.Summary) string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard("Revenue", money(s.Currency, s.TotalRevenue), StyleGreen),
		metricCard("Expenses", money(s.Currency, s.TotalExpenses), StyleRed),
		metricCard("Profit", money(s.Currency, s.TotalProfit), StyleBlue),
		metricCard("Margin", fmt.Sprintf("%.1f%%", s.LatestMargin), StylePurple),
	)

	growth := StyleGreen
	if s.RevenueGrowthPct < 0 {
		growth = StyleRed
	}
	latest := fmt.Sprintf("%s: %s revenue, %s month over month",
		Bold(s.LatestMonth),
		money(s.Currency, s.LatestRevenue),
		growth.Render(fmt.Sprintf("%+.1f%%", s.RevenueGrowthPct)),
	)

	leaders := Dim(fmt.Sprintf("top customer %s (%s) · largest expense %s (%s) · leading region %s (%s)",
		s.TopCustomer, money(s.Currency, s.TopCustomerRevenue),
		s.TopExpense, money(s.Currency, s.TopExpenseAmount),
		s.TopRegion, money(s.Currency, s.TopRegionRevenue),
	))

	return strings.Join([]string{Header("Business Dashboard"), cards, latest, leaders}, "\n") + "\n"
}

func metricCard(title, value string, style lipgloss.Style) string {
	body := Dim(title) + "\n" + style.Bold(true).Render(value)
	return cardStyle.Render(body)
}

// FormatSourceTable renders one data source as an aligned table: the label
// column followed by every metric column.
func FormatSourceTable(src *catalog.Source, currency string) string {
	metrics := src.Metrics()

	headers := make([]string, 0, len(metrics)+1)
	headers = append(headers, src.LabelField)
	for _, m := range metrics {
		headers = append(headers, m)
	}

	rows := make([][]string, len(src.Labels))
	for i, label := range src.Labels {
		row := make([]string, 0, len(metrics)+1)
		row = append(row, label)
		for _, m := range metrics {
			values, _ := src.Metric(m)
			if src.Unit(m) == catalog.UnitPercent {
				row = append(row, fmt.Sprintf("%.1f%%", values[i]))
			} else {
				row = append(row, money(currency, values[i]))
			}
		}
		rows[i] = row
	}

	return Header(string(src.Name)) + "\n" + RenderTable(headers, rows)
}

func money(currency string, v float64) string {
	return fmt.Sprintf("%s %s", currency, formatValue(v))
}
