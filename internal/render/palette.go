package render

// Fixed colors for the core metrics, matching the house dashboard theme.
var metricColors = map[string]string{
	"revenue":       "#00D4AA",
	"expenses":      "#FF6B6B",
	"profit":        "#00C851",
	"profit_margin": "#4ECDC4",
}

// categoricalPalette cycles over pie slices and any metric without a fixed
// color.
var categoricalPalette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7", "#DDA0DD",
}

func seriesColor(metric string, i int) string {
	if c, ok := metricColors[metric]; ok {
		return c
	}
	return categoricalPalette[i%len(categoricalPalette)]
}

func sliceColors(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = categoricalPalette[i%len(categoricalPalette)]
	}
	return out
}
