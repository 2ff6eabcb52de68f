package interpret

import "github.com/bizlens/bizlens/internal/domain"

// Resolve merges a freshly classified spec with the session's remembered
// previous spec. Fresh requests (or modifications arriving with no previous
// chart) pass through unchanged; modification requests patch a copy of the
// previous spec, keeping its data source and x-axis even when the new text
// hints at a different source.
func Resolve(next domain.ChartSpec, previous *domain.ChartSpec) domain.ChartSpec {
	if !next.IsModification || previous == nil {
		return normalize(next.Clone())
	}

	out := previous.Clone()
	switch next.ModificationType {
	case domain.ModAddSecondaryAxis:
		out.SecondaryAxis = append([]string(nil), next.SecondaryAxis...)
		out.ChartType = domain.ChartLine
	case domain.ModAddMetric:
		for _, m := range next.YAxis {
			if !out.HasMetric(m) {
				out.YAxis = append(out.YAxis, m)
			}
		}
	}
	return normalize(out)
}

// normalize repairs combinations a classification or patch can produce but
// the renderer cannot draw: a pie chart carries exactly one metric, so a
// multi-metric pie demotes to a grouped bar instead of silently mis-rendering.
func normalize(spec domain.ChartSpec) domain.ChartSpec {
	if spec.ChartType == domain.ChartPie && len(spec.YAxis) > 1 {
		spec.ChartType = domain.ChartBar
	}
	return spec
}
