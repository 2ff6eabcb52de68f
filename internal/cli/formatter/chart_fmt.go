package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bizlens/bizlens/internal/domain"
	"github.com/bizlens/bizlens/internal/render"
)

const (
	barWidth    = 32
	filledBlock = "█"
)

// FormatChart renders chart data as a styled terminal block: title, legend,
// and horizontal value bars. Pie charts show each slice's share of the
// total; every other type shows one bar row per label and series, scaled to
// the largest value on that series' axis.
func FormatChart(c *render.Chart) string {
	var b strings.Builder

	b.WriteString(Header(c.Title))
	b.WriteString("\n")

	if c.Type == domain.ChartPie {
		writePieBlock(&b, c)
	} else {
		writeSeriesBlock(&b, c)
	}

	return b.String()
}

// FormatChartDescription renders the deterministic chart acknowledgment.
func FormatChartDescription(desc string) string {
	return StyleBlue.Render(desc)
}

func writePieBlock(b *strings.Builder, c *render.Chart) {
	s := c.Series[0]
	total := 0.0
	for _, v := range s.Values {
		total += v
	}

	labelW := maxLabelWidth(c.Labels)
	for i, label := range c.Labels {
		share := 0.0
		if total > 0 {
			share = s.Values[i] / total
		}
		color := sliceColor(c.Palette, i)
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).
			Render(strings.Repeat(filledBlock, barLen(share, 1)))
		fmt.Fprintf(b, "%-*s  %s %5.1f%%  %s\n",
			labelW, label, bar, share*100, Dim(formatValue(s.Values[i])))
	}
}

func writeSeriesBlock(b *strings.Builder, c *render.Chart) {
	if len(c.Series) > 1 {
		b.WriteString(legend(c.Series))
		b.WriteString("\n")
	}

	primaryMax, secondaryMax := axisMaxima(c.Series)
	labelW := maxLabelWidth(c.Labels)

	for i, label := range c.Labels {
		if len(c.Series) == 1 {
			s := c.Series[0]
			b.WriteString(barRow(label, labelW, s, i, primaryMax))
			continue
		}
		fmt.Fprintf(b, "%s\n", Bold(label))
		for _, s := range c.Series {
			max := primaryMax
			if s.Secondary {
				max = secondaryMax
			}
			b.WriteString("  " + barRow(s.Label, labelW, s, i, max))
		}
	}

	if c.SecondaryLabel != "" {
		fmt.Fprintf(b, "%s\n", Dim(fmt.Sprintf("right axis: %s", c.SecondaryLabel)))
	}
}

// barRow renders one "label  ███  value" line for index i of series s.
func barRow(label string, labelW int, s render.Series, i int, max float64) string {
	share := 0.0
	if max > 0 {
		share = s.Values[i] / max
	}
	bar := strings.Repeat(filledBlock, barLen(share, max))
	if s.Dashed {
		bar = strings.ReplaceAll(bar, filledBlock, "▒")
	}
	styled := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render(bar)
	return fmt.Sprintf("%-*s  %s %s\n", labelW, label, styled, Dim(formatValue(s.Values[i])))
}

func legend(series []render.Series) string {
	parts := make([]string, len(series))
	for i, s := range series {
		mark := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render("●")
		label := s.Label
		if s.Secondary {
			label += " (right axis)"
		}
		parts[i] = mark + " " + label
	}
	return strings.Join(parts, "  ")
}

// axisMaxima returns the largest primary and secondary series values, so the
// two scales are normalized independently.
func axisMaxima(series []render.Series) (float64, float64) {
	var primary, secondary float64
	for _, s := range series {
		for _, v := range s.Values {
			if s.Secondary {
				if v > secondary {
					secondary = v
				}
			} else if v > primary {
				primary = v
			}
		}
	}
	return primary, secondary
}

func barLen(share float64, max float64) int {
	if max <= 0 || share <= 0 {
		return 0
	}
	n := int(share * barWidth)
	if n < 1 {
		n = 1
	}
	if n > barWidth {
		n = barWidth
	}
	return n
}

func maxLabelWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		if len(l) > w {
			w = len(l)
		}
	}
	return w
}

func sliceColor(palette []string, i int) string {
	if len(palette) == 0 {
		return string(ColorFg)
	}
	return palette[i%len(palette)]
}

// formatValue trims trailing zeros so 45000 prints as "45000" and 17.9 as
// "17.9".
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
