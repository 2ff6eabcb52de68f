// Package export renders charts to files: PNG images via go-chart and XLSX
// workbooks via excelize. Input is the surface-neutral chart data produced by
// the render package.
package export

import (
	"fmt"
	"io"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bizlens/bizlens/internal/domain"
	"github.com/bizlens/bizlens/internal/render"
)

const (
	pngWidth  = 1024
	pngHeight = 512
)

// WritePNG renders the chart as a PNG image.
func WritePNG(w io.Writer, c *render.Chart) error {
	if len(c.Series) == 0 {
		return fmt.Errorf("export png: chart has no series")
	}
	switch c.Type {
	case domain.ChartPie:
		return writePie(w, c)
	case domain.ChartBar:
		return writeBars(w, c)
	default:
		return writeLines(w, c)
	}
}

// SavePNG renders the chart as a PNG file at path.
func SavePNG(path string, c *render.Chart) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	if err := WritePNG(f, c); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	return nil
}

// writeLines draws line and area charts. Labels map onto x positions 0..n-1
// with one tick per label; secondary series go on the right-hand axis.
func writeLines(w io.Writer, c *render.Chart) error {
	labels := c.Labels
	pad := len(labels) == 1 // go-chart needs at least two x values
	if pad {
		labels = append([]string{labels[0]}, "")
	}

	xs := make([]float64, len(labels))
	ticks := make([]chart.Tick, len(labels))
	for i, label := range labels {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: label}
	}

	var series []chart.Series
	hasSecondary := false
	for _, s := range c.Series {
		style := chart.Style{
			StrokeColor: hexColor(s.Color),
			StrokeWidth: 2.2,
		}
		if s.Dashed {
			style.StrokeDashArray = []float64{5.0, 5.0}
		}
		if s.Fill != render.FillNone {
			style.FillColor = hexColor(s.Color).WithAlpha(72)
		}
		values := s.Values
		if pad {
			values = append(append([]float64(nil), values...), values[len(values)-1])
		}
		cs := chart.ContinuousSeries{
			Name:    s.Label,
			XValues: xs,
			YValues: values,
			Style:   style,
		}
		if s.Secondary {
			cs.YAxis = chart.YAxisSecondary
			hasSecondary = true
		}
		series = append(series, cs)
	}

	ch := chart.Chart{
		Title:      c.Title,
		Width:      pngWidth,
		Height:     pngHeight,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 24}},
		XAxis: chart.XAxis{
			Name:  c.XLabel,
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: 0, Max: float64(len(labels) - 1)},
		},
		// Explicit ranges keep go-chart from rejecting flat series (zero
		// range delta) such as a single padded point.
		YAxis: chart.YAxis{
			Name:  c.YLabel,
			Range: &chart.ContinuousRange{Min: 0, Max: axisMax(c.Series, false)},
		},
		Series: series,
	}
	if hasSecondary {
		ch.YAxisSecondary = chart.YAxis{
			Name:  c.SecondaryLabel,
			Range: &chart.ContinuousRange{Min: 0, Max: axisMax(c.Series, true)},
		}
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("export png: rendering %s chart: %w", c.Type, err)
	}
	return nil
}

// writeBars draws bar charts. A single metric gets one value-shaded bar per
// label; multiple metrics interleave one bar per metric within each label
// group, colored by metric, with the label on the group's first bar.
func writeBars(w io.Writer, c *render.Chart) error {
	var bars []chart.Value

	if len(c.Series) == 1 {
		s := c.Series[0]
		min, max := valueRange(s.Values)
		for i, label := range c.Labels {
			color := hexColor(s.Color)
			if s.ScaleByValue {
				color = color.WithAlpha(shadeAlpha(s.Values[i], min, max))
			}
			bars = append(bars, chart.Value{
				Value: s.Values[i],
				Label: label,
				Style: chart.Style{FillColor: color, StrokeColor: color},
			})
		}
	} else {
		for i, label := range c.Labels {
			for j, s := range c.Series {
				if i >= len(s.Values) {
					continue
				}
				barLabel := ""
				if j == 0 {
					barLabel = label
				}
				color := hexColor(s.Color)
				bars = append(bars, chart.Value{
					Value: s.Values[i],
					Label: barLabel,
					Style: chart.Style{FillColor: color, StrokeColor: color},
				})
			}
		}
	}

	bc := chart.BarChart{
		Title:      c.Title,
		Width:      pngWidth,
		Height:     pngHeight,
		BarWidth:   barWidth(len(bars)),
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 24}},
		YAxis:      chart.YAxis{Name: c.YLabel},
		Bars:       bars,
	}

	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("export png: rendering bar chart: %w", err)
	}
	return nil
}

func writePie(w io.Writer, c *render.Chart) error {
	s := c.Series[0]
	values := make([]chart.Value, 0, len(c.Labels))
	for i, label := range c.Labels {
		if i >= len(s.Values) {
			break
		}
		color := hexColor(pieColor(c.Palette, i))
		values = append(values, chart.Value{
			Value: s.Values[i],
			Label: label,
			Style: chart.Style{FillColor: color, StrokeColor: color},
		})
	}

	pc := chart.PieChart{
		Title:  c.Title,
		Width:  pngHeight, // square canvas keeps the circle round
		Height: pngHeight,
		Values: values,
	}

	if err := pc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("export png: rendering pie chart: %w", err)
	}
	return nil
}

// hexColor parses "#RRGGBB" into a drawing color.
func hexColor(hex string) drawing.Color {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	return drawing.ColorFromHex(hex)
}

func pieColor(palette []string, i int) string {
	if len(palette) == 0 {
		return "#4ECDC4"
	}
	return palette[i%len(palette)]
}

// axisMax returns a headroom-padded maximum over the series assigned to one
// scale. Never zero, so the axis always has a positive range.
func axisMax(series []render.Series, secondary bool) float64 {
	var max float64
	for _, s := range series {
		if s.Secondary != secondary {
			continue
		}
		for _, v := range s.Values {
			if v > max {
				max = v
			}
		}
	}
	if max <= 0 {
		return 1
	}
	return max * 1.1
}

func valueRange(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// shadeAlpha maps a value within [min, max] to an opacity, so higher bars
// read darker.
func shadeAlpha(v, min, max float64) uint8 {
	if max <= min {
		return 255
	}
	frac := (v - min) / (max - min)
	return uint8(110 + frac*145)
}

func barWidth(count int) int {
	if count == 0 {
		return 60
	}
	w := (pngWidth - 200) / count
	if w > 80 {
		return 80
	}
	if w < 12 {
		return 12
	}
	return w
}
