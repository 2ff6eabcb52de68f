package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizlens/bizlens/internal/catalog"
)

func TestBuildSummary_Figures(t *testing.T) {
	summary, err := BuildSummary(catalog.Default())
	require.NoError(t, err)

	assert.Equal(t, "RM", summary.Currency)
	assert.InDelta(t, 671000, summary.TotalRevenue, 0.01)
	assert.InDelta(t, 513000, summary.TotalExpenses, 0.01)
	assert.InDelta(t, 158000, summary.TotalProfit, 0.01)

	assert.Equal(t, "Jan 2025", summary.LatestMonth)
	assert.InDelta(t, 130000, summary.LatestRevenue, 0.01)
	assert.InDelta(t, 42000, summary.LatestProfit, 0.01)
	assert.InDelta(t, 32.3, summary.LatestMargin, 0.01)
	// 118000 -> 130000
	assert.InDelta(t, 10.17, summary.RevenueGrowthPct, 0.01)

	assert.Equal(t, "ABC Trading", summary.TopCustomer)
	assert.InDelta(t, 45000, summary.TopCustomerRevenue, 0.01)
	assert.Equal(t, "Staff Costs", summary.TopExpense)
	assert.InDelta(t, 35000, summary.TopExpenseAmount, 0.01)
	assert.Equal(t, "KL", summary.TopRegion)
	assert.InDelta(t, 45000, summary.TopRegionRevenue, 0.01)
}

func TestDeterministicSummaryText(t *testing.T) {
	summary, err := BuildSummary(catalog.Default())
	require.NoError(t, err)

	text := DeterministicSummaryText(summary)

	assert.Contains(t, text, "RM 671000")
	assert.Contains(t, text, "RM 513000")
	assert.Contains(t, text, "RM 158000")
	assert.Contains(t, text, "Jan 2025")
	assert.Contains(t, text, "32.3% profit margin")
	assert.Contains(t, text, "ABC Trading")
	assert.Contains(t, text, "Staff Costs")
	assert.Contains(t, text, "KL leads regional sales")

	// Idempotent for identical input.
	assert.Equal(t, text, DeterministicSummaryText(summary))
}

func TestBuildNarrationSystemPrompt(t *testing.T) {
	prompt := BuildNarrationSystemPrompt(catalog.Default())

	assert.Contains(t, prompt, "RM")
	assert.Contains(t, prompt, "Aug 2024: RM 95000")
	assert.Contains(t, prompt, "Jan 2025: RM 130000")
	assert.Contains(t, prompt, "32.3%")
	assert.Contains(t, prompt, "ABC Trading")
	assert.NotContains(t, prompt, "%DATA%")
	assert.NotContains(t, prompt, "%CURRENCY%")
}

func TestTruncateTitle(t *testing.T) {
	assert.Equal(t, "show revenue", truncateTitle("  show revenue  "))

	long := "show me the revenue and expenses and profit and margin trends for every month we have"
	title := truncateTitle(long)
	assert.LessOrEqual(t, len([]rune(title)), 60)
	assert.Contains(t, title, "...")
}
