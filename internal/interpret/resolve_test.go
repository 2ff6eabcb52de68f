package interpret

import (
	"testing"

	"github.com/bizlens/bizlens/internal/catalog"
	"github.com/bizlens/bizlens/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_FreshSpecPassesThrough(t *testing.T) {
	next := domain.ChartSpec{
		DataSource: domain.SourceCustomers,
		XAxis:      domain.FieldNames,
		YAxis:      []string{domain.FieldRevenue},
		ChartType:  domain.ChartPie,
	}
	previous := domain.ChartSpec{DataSource: domain.SourceMonthly}

	got := Resolve(next, &previous)
	assert.Equal(t, next, got)
}

func TestResolve_ModificationWithoutPreviousPassesThrough(t *testing.T) {
	next := domain.ChartSpec{
		DataSource:       domain.SourceMonthly,
		XAxis:            domain.FieldMonths,
		YAxis:            []string{domain.FieldRevenue},
		ChartType:        domain.ChartLine,
		SecondaryAxis:    []string{domain.FieldProfitMargin},
		IsModification:   true,
		ModificationType: domain.ModAddSecondaryAxis,
	}

	got := Resolve(next, nil)
	assert.Equal(t, next, got)
}

func TestResolve_AddSecondaryAxisRoundTrip(t *testing.T) {
	c := NewClassifier(catalog.Default())
	previous := domain.ChartSpec{
		DataSource: domain.SourceMonthly,
		XAxis:      domain.FieldMonths,
		YAxis:      []string{domain.FieldRevenue, domain.FieldExpenses},
		ChartType:  domain.ChartBar,
	}

	next := c.Classify("also include profit margin")
	got := Resolve(next, &previous)

	assert.Equal(t, previous.YAxis, got.YAxis)
	assert.Equal(t, []string{domain.FieldProfitMargin}, got.SecondaryAxis)
	assert.Equal(t, domain.ChartLine, got.ChartType, "secondary axis forces a line chart")
	assert.Equal(t, previous.DataSource, got.DataSource)
}

func TestResolve_AddSecondaryAxisReplacesExisting(t *testing.T) {
	previous := domain.ChartSpec{
		DataSource:    domain.SourceMonthly,
		XAxis:         domain.FieldMonths,
		YAxis:         []string{domain.FieldRevenue},
		ChartType:     domain.ChartLine,
		SecondaryAxis: []string{domain.FieldProfit},
	}
	next := domain.ChartSpec{
		IsModification:   true,
		ModificationType: domain.ModAddSecondaryAxis,
		SecondaryAxis:    []string{domain.FieldProfitMargin},
	}

	got := Resolve(next, &previous)
	assert.Equal(t, []string{domain.FieldProfitMargin}, got.SecondaryAxis)
}

func TestResolve_AddMetricUnionPreservesOrder(t *testing.T) {
	previous := domain.ChartSpec{
		DataSource: domain.SourceMonthly,
		XAxis:      domain.FieldMonths,
		YAxis:      []string{domain.FieldRevenue},
		ChartType:  domain.ChartLine,
	}
	next := domain.ChartSpec{
		YAxis:            []string{domain.FieldExpenses},
		IsModification:   true,
		ModificationType: domain.ModAddMetric,
	}

	got := Resolve(next, &previous)
	assert.Equal(t, []string{domain.FieldRevenue, domain.FieldExpenses}, got.YAxis)

	// Adding an already-present metric changes nothing.
	again := Resolve(next, &got)
	assert.Equal(t, []string{domain.FieldRevenue, domain.FieldExpenses}, again.YAxis)
}

func TestResolve_ModificationKeepsPreviousSource(t *testing.T) {
	previous := domain.ChartSpec{
		DataSource: domain.SourceCustomers,
		XAxis:      domain.FieldNames,
		YAxis:      []string{domain.FieldRevenue},
		ChartType:  domain.ChartBar,
	}
	next := domain.ChartSpec{
		DataSource:       domain.SourceMonthly,
		XAxis:            domain.FieldMonths,
		YAxis:            []string{domain.FieldExpenses},
		IsModification:   true,
		ModificationType: domain.ModAddMetric,
	}

	got := Resolve(next, &previous)
	assert.Equal(t, domain.SourceCustomers, got.DataSource)
	assert.Equal(t, domain.FieldNames, got.XAxis)
}

func TestResolve_PieWithMultipleMetricsDemotesToBar(t *testing.T) {
	previous := domain.ChartSpec{
		DataSource: domain.SourceCustomers,
		XAxis:      domain.FieldNames,
		YAxis:      []string{domain.FieldRevenue},
		ChartType:  domain.ChartPie,
	}
	next := domain.ChartSpec{
		YAxis:            []string{domain.FieldMargin},
		IsModification:   true,
		ModificationType: domain.ModAddMetric,
	}

	got := Resolve(next, &previous)
	require.Len(t, got.YAxis, 2)
	assert.Equal(t, domain.ChartBar, got.ChartType)
}

func TestResolve_FreshPieWithMultipleMetricsDemotesToBar(t *testing.T) {
	next := domain.ChartSpec{
		DataSource: domain.SourceMonthly,
		XAxis:      domain.FieldMonths,
		YAxis:      []string{domain.FieldRevenue, domain.FieldExpenses},
		ChartType:  domain.ChartPie,
	}

	got := Resolve(next, nil)
	assert.Equal(t, domain.ChartBar, got.ChartType)
}

func TestResolve_DoesNotMutatePrevious(t *testing.T) {
	previous := domain.ChartSpec{
		DataSource: domain.SourceMonthly,
		XAxis:      domain.FieldMonths,
		YAxis:      []string{domain.FieldRevenue},
		ChartType:  domain.ChartLine,
	}
	next := domain.ChartSpec{
		YAxis:            []string{domain.FieldExpenses},
		IsModification:   true,
		ModificationType: domain.ModAddMetric,
	}

	_ = Resolve(next, &previous)
	assert.Equal(t, []string{domain.FieldRevenue}, previous.YAxis)
}
