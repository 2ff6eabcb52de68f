package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizlens/bizlens/internal/catalog"
	"github.com/bizlens/bizlens/internal/domain"
)

// Every preset must survive the full pipeline: pass the chart gate, classify,
// and render against the default catalog.
func TestQuickActions_AllRender(t *testing.T) {
	svc := NewService(catalog.Default(), cannedNarrator(), nil, nil)

	actions := QuickActions()
	require.Len(t, actions, 4)

	for _, action := range actions {
		t.Run(action.Label, func(t *testing.T) {
			assert.True(t, WantsChart(action.Question))

			state := domain.NewSessionState("qa")
			turn, err := svc.HandleTurn(context.Background(), state, action.Question)
			require.NoError(t, err)
			assert.True(t, turn.HasChart())
			assert.NotEmpty(t, turn.Description)
		})
	}
}

func TestQuickActions_ExpectedSpecs(t *testing.T) {
	svc := NewService(catalog.Default(), cannedNarrator(), nil, nil)

	spec, _, _, err := svc.BuildChart("show customer pie chart", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceCustomers, spec.DataSource)
	assert.Equal(t, domain.ChartPie, spec.ChartType)

	spec, _, _, err = svc.BuildChart("show profit margin trends", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceMonthly, spec.DataSource)
	assert.Equal(t, []string{domain.FieldProfitMargin}, spec.YAxis)
	assert.Equal(t, domain.ChartLine, spec.ChartType)

	spec, _, _, err = svc.BuildChart("show regional revenue", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceRegions, spec.DataSource)
}
