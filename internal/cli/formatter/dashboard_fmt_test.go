package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizlens/bizlens/internal/assistant"
	"github.com/bizlens/bizlens/internal/catalog"
	"github.com/bizlens/bizlens/internal/domain"
)

func TestFormatDashboard(t *testing.T) {
	summary, err := assistant.BuildSummary(catalog.Default())
	require.NoError(t, err)

	out := FormatDashboard(summary)
	assert.Contains(t, out, "BUSINESS DASHBOARD")
	assert.Contains(t, out, "RM 671000")
	assert.Contains(t, out, "RM 513000")
	assert.Contains(t, out, "32.3%")
	assert.Contains(t, out, "Jan 2025")
	assert.Contains(t, out, "ABC Trading")
}

func TestFormatSourceTable(t *testing.T) {
	cat := catalog.Default()
	src, ok := cat.Source(domain.SourceCustomers)
	require.True(t, ok)

	out := FormatSourceTable(src, cat.Currency)
	assert.Contains(t, out, "CUSTOMERS")
	assert.Contains(t, out, "XYZ Manufacturing")
	assert.Contains(t, out, "RM 45000")
	// Margin is a percent metric, not a currency one.
	assert.Contains(t, out, "35.0%")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(
		[]string{"Name", "Value"},
		[][]string{
			{"short", "1"},
			{"a much longer name", "22"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	// Both value cells start at the same column offset.
	assert.Equal(t, strings.Index(lines[2], "1"), strings.Index(lines[3], "22"))
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}
