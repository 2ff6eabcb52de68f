package render

import (
	"testing"

	"github.com/bizlens/bizlens/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDescribe_MultiMetricWithFilter(t *testing.T) {
	spec := domain.ChartSpec{
		DataSource: domain.SourceMonthly,
		XAxis:      domain.FieldMonths,
		YAxis:      []string{domain.FieldRevenue, domain.FieldExpenses},
		ChartType:  domain.ChartLine,
		TimeFilter: []string{"Nov 2024", "Dec 2024", "Jan 2025"},
	}
	assert.Equal(t,
		"Line chart showing revenue, expenses by months for Nov 2024, Dec 2024, Jan 2025",
		Describe(spec))
}

func TestDescribe_Area(t *testing.T) {
	spec := domain.ChartSpec{
		DataSource: domain.SourceMonthly,
		XAxis:      domain.FieldMonths,
		YAxis:      []string{domain.FieldProfitMargin},
		ChartType:  domain.ChartArea,
	}
	assert.Equal(t, "Area chart showing profit_margin by months", Describe(spec))
}

func TestDescribe_ComparisonBeatsFilterAnnotation(t *testing.T) {
	spec := domain.ChartSpec{
		DataSource:    domain.SourceMonthly,
		XAxis:         domain.FieldMonths,
		YAxis:         []string{domain.FieldProfit},
		ChartType:     domain.ChartBar,
		TimeFilter:    []string{"Aug 2024"},
		ComparisonSet: []string{"Oct 2024", "Jan 2025"},
	}
	assert.Equal(t,
		"Bar chart showing profit by months comparing Oct 2024 vs Jan 2025",
		Describe(spec))
}

func TestBuildTitle_CommaListForThreeMonths(t *testing.T) {
	spec := domain.ChartSpec{
		DataSource: domain.SourceMonthly,
		XAxis:      domain.FieldMonths,
		YAxis:      []string{domain.FieldRevenue},
		ChartType:  domain.ChartBar,
		TimeFilter: []string{"Nov 2024", "Dec 2024", "Jan 2025"},
	}
	title := buildTitle(spec, []string{"Nov 2024", "Dec 2024", "Jan 2025"})
	assert.Equal(t, "Revenue by Month (Nov 2024, Dec 2024, Jan 2025)", title)
}
