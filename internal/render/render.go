// Package render maps resolved chart specifications onto concrete chart
// data: filtered label/value series with colors, axis titles, and a
// deterministic human-readable description. Output is plain data so any
// surface (terminal blocks, PNG, XLSX, MCP JSON) can draw it.
package render

import (
	"fmt"

	"github.com/bizlens/bizlens/internal/catalog"
	"github.com/bizlens/bizlens/internal/domain"
)

// FillMode controls how an area series is shaded.
type FillMode string

const (
	FillNone   FillMode = ""
	FillToZero FillMode = "to_zero"
	FillToNext FillMode = "to_next"
)

// Series is one plotted metric.
type Series struct {
	Metric string    `json:"metric"`
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
	Color  string    `json:"color"`

	// Secondary series plot against the right-hand scale with a dashed,
	// diamond-marker style.
	Secondary bool `json:"secondary,omitempty"`
	Dashed    bool `json:"dashed,omitempty"`

	Fill FillMode `json:"fill,omitempty"`

	// ScaleByValue marks a single-metric bar series whose bars are shaded
	// by value instead of using one flat color.
	ScaleByValue bool `json:"scale_by_value,omitempty"`
}

// Chart is the renderable result of one spec.
type Chart struct {
	Type           domain.ChartType `json:"type"`
	Title          string           `json:"title"`
	XLabel         string           `json:"x_label"`
	YLabel         string           `json:"y_label"`
	SecondaryLabel string           `json:"secondary_label,omitempty"`
	Labels         []string         `json:"labels"`
	Series         []Series         `json:"series"`

	// Palette carries the slice colors for pie charts, cycled over labels.
	Palette []string `json:"palette,omitempty"`
}

// Render resolves spec against the catalog. Specs produced by the classifier
// and resolver always render; errors surface only for hand-built specs that
// name an unknown source or no plottable metric. Identical inputs produce
// identical output, including the description.
func Render(spec domain.ChartSpec, cat *catalog.Catalog) (*Chart, string, error) {
	src, ok := cat.Source(spec.DataSource)
	if !ok {
		return nil, "", fmt.Errorf("render: unknown data source %q", spec.DataSource)
	}

	idx := filterIndices(src, spec)
	labels := pickLabels(src.Labels, idx)

	chart := &Chart{
		Type:   spec.ChartType,
		XLabel: axisTitle(spec.XAxis),
		Labels: labels,
	}

	primary := buildSeries(src, spec.YAxis, idx)
	if len(primary) == 0 {
		return nil, "", fmt.Errorf("render: no plottable metrics for %s in %v", spec.DataSource, spec.YAxis)
	}
	if spec.ChartType == domain.ChartPie && len(primary) > 1 {
		return nil, "", fmt.Errorf("render: pie chart requires exactly one metric, got %d", len(primary))
	}

	switch spec.ChartType {
	case domain.ChartArea:
		fill := FillToZero
		if len(primary) > 1 {
			fill = FillToNext
		}
		for i := range primary {
			primary[i].Fill = fill
		}
	case domain.ChartBar:
		if len(primary) == 1 {
			primary[0].ScaleByValue = true
		}
	case domain.ChartPie:
		chart.Palette = sliceColors(len(labels))
	}

	chart.Series = primary

	// Secondary metrics only carry meaning on a line chart.
	if spec.ChartType == domain.ChartLine && len(spec.SecondaryAxis) > 0 {
		secondary := buildSeries(src, spec.SecondaryAxis, idx)
		for i := range secondary {
			secondary[i].Secondary = true
			secondary[i].Dashed = true
			secondary[i].Color = seriesColor(secondary[i].Metric, len(primary)+i)
		}
		chart.Series = append(chart.Series, secondary...)
		chart.SecondaryLabel = secondaryAxisTitle(src, cat.Currency, spec.SecondaryAxis)
	}

	chart.YLabel = primaryAxisTitle(src, cat.Currency, spec.YAxis)
	chart.Title = buildTitle(spec, labels)

	return chart, Describe(spec), nil
}

// filterIndices returns the label indices to plot, in catalog order. Month
// selections only apply to the monthly source; an empty result means no
// restriction.
func filterIndices(src *catalog.Source, spec domain.ChartSpec) []int {
	filter := spec.FilterLabels()
	if len(filter) == 0 || spec.DataSource != domain.SourceMonthly {
		return nil
	}
	wanted := make(map[string]bool, len(filter))
	for _, f := range filter {
		wanted[f] = true
	}
	var idx []int
	for i, label := range src.Labels {
		if wanted[label] {
			idx = append(idx, i)
		}
	}
	return idx
}

func pickLabels(labels []string, idx []int) []string {
	if idx == nil {
		return append([]string(nil), labels...)
	}
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		out = append(out, labels[i])
	}
	return out
}

func pickValues(values []float64, idx []int) []float64 {
	if idx == nil {
		return append([]float64(nil), values...)
	}
	out := make([]float64, 0, len(idx))
	for _, i := range idx {
		out = append(out, values[i])
	}
	return out
}

// buildSeries creates one series per known metric, skipping names the source
// does not carry (a modification can graft a monthly metric onto a
// categorical source; the unknown name simply does not plot).
func buildSeries(src *catalog.Source, metrics []string, idx []int) []Series {
	var out []Series
	for _, metric := range metrics {
		values, ok := src.Metric(metric)
		if !ok {
			continue
		}
		out = append(out, Series{
			Metric: metric,
			Label:  metricLabel(metric),
			Values: pickValues(values, idx),
			Color:  seriesColor(metric, len(out)),
		})
	}
	return out
}
