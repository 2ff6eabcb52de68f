package assistant

import (
	"fmt"
	"strings"

	"github.com/bizlens/bizlens/internal/catalog"
)

const narrationSystemPromptTemplate = `You are a business analyst assistant for a small Malaysian company. Answer questions about the business figures below in 2-4 sentences, appropriate for a terminal. Quote amounts with the %CURRENCY% currency prefix. Do not invent figures that are not listed.

## Business data
%DATA%

Rules:
1. Be concise and concrete. Lead with the number that answers the question.
2. When the user asks for a chart, describe the headline insight; the chart itself is rendered separately.
3. Plain text only. No markdown, no code fences, no emoji.`

const summarySystemPrompt = `You are a business analyst assistant. Write a short dashboard summary (3-5 sentences) of the business figures provided. Lead with overall health, then the strongest and weakest signals. Plain text only, no markdown, no emoji.`

// BuildNarrationSystemPrompt renders the catalog into the narration prompt so
// the model answers from real figures.
func BuildNarrationSystemPrompt(cat *catalog.Catalog) string {
	prompt := strings.Replace(narrationSystemPromptTemplate, "%CURRENCY%", cat.Currency, 1)
	return strings.Replace(prompt, "%DATA%", formatCatalogData(cat), 1)
}

// formatCatalogData lists every source's labels and metric values.
func formatCatalogData(cat *catalog.Catalog) string {
	var b strings.Builder
	for _, src := range cat.Sources() {
		fmt.Fprintf(&b, "### %s\n", src.Name)
		for _, metric := range src.Metrics() {
			values, _ := src.Metric(metric)
			fmt.Fprintf(&b, "%s by %s:\n", metric, src.LabelField)
			for i, label := range src.Labels {
				if src.Unit(metric) == catalog.UnitPercent {
					fmt.Fprintf(&b, "  %s: %.1f%%\n", label, values[i])
				} else {
					fmt.Fprintf(&b, "  %s: %s %.0f\n", label, cat.Currency, values[i])
				}
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// buildSummaryUserPrompt feeds the deterministic summary figures to the model.
func buildSummaryUserPrompt(s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total revenue: %s %.0f\n", s.Currency, s.TotalRevenue)
	fmt.Fprintf(&b, "Total expenses: %s %.0f\n", s.Currency, s.TotalExpenses)
	fmt.Fprintf(&b, "Total profit: %s %.0f\n", s.Currency, s.TotalProfit)
	fmt.Fprintf(&b, "Latest month: %s\n", s.LatestMonth)
	fmt.Fprintf(&b, "Latest revenue: %s %.0f (%+.1f%% vs prior month)\n", s.Currency, s.LatestRevenue, s.RevenueGrowthPct)
	fmt.Fprintf(&b, "Latest profit margin: %.1f%%\n", s.LatestMargin)
	fmt.Fprintf(&b, "Top customer: %s (%s %.0f)\n", s.TopCustomer, s.Currency, s.TopCustomerRevenue)
	fmt.Fprintf(&b, "Largest expense: %s (%s %.0f)\n", s.TopExpense, s.Currency, s.TopExpenseAmount)
	fmt.Fprintf(&b, "Leading region: %s (%s %.0f)\n", s.TopRegion, s.Currency, s.TopRegionRevenue)
	return b.String()
}

// truncateTitle shortens a question into a session title.
func truncateTitle(question string) string {
	const max = 60
	title := strings.TrimSpace(question)
	runes := []rune(title)
	if len(runes) <= max {
		return title
	}
	return string(runes[:max-3]) + "..."
}
