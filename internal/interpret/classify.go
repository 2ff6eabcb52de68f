package interpret

import (
	"strings"

	"github.com/bizlens/bizlens/internal/catalog"
	"github.com/bizlens/bizlens/internal/domain"
)

// Classifier maps request text onto chart specifications using the rule
// tables in this package. Classification is total: every axis has a default,
// so any input produces a renderable spec.
type Classifier struct {
	months []string
}

// NewClassifier builds a classifier bound to the catalog's month labels.
func NewClassifier(cat *catalog.Catalog) *Classifier {
	return &Classifier{months: cat.MonthLabels()}
}

// Classify derives a ChartSpec from raw user text. The modification flag
// depends only on lexical cues, never on whether a previous spec exists;
// pairing the result with session memory is Resolve's job.
func (c *Classifier) Classify(text string) domain.ChartSpec {
	t := strings.ToLower(text)
	var spec domain.ChartSpec

	c.classifyModification(t, &spec)
	c.classifyTimeWindow(t, &spec)
	c.classifySource(t, &spec)
	spec.ChartType = c.classifyChartType(t, spec)

	return spec
}

// classifyModification detects patch requests. A cue phrase alone is not
// enough: the request must also name something to add, otherwise it is
// treated as a fresh request so the remaining axes resolve normally.
func (c *Classifier) classifyModification(t string, spec *domain.ChartSpec) {
	if !modificationCue(t) {
		return
	}
	for _, rule := range modificationRules {
		if !rule.when(t) {
			continue
		}
		spec.IsModification = true
		spec.ModificationType = rule.modType
		if rule.modType == domain.ModAddSecondaryAxis {
			spec.SecondaryAxis = append([]string(nil), rule.metrics...)
		} else {
			spec.YAxis = append([]string(nil), rule.metrics...)
		}
		return
	}
}

// classifyTimeWindow extracts month selections. The "last/past N months"
// shorthands take precedence over named months; comparison cues route named
// months into the comparison set instead of the time filter.
func (c *Classifier) classifyTimeWindow(t string, spec *domain.ChartSpec) {
	if n := trailingWindow(t); n > 0 && n <= len(c.months) {
		spec.TimeFilter = append([]string(nil), c.months[len(c.months)-n:]...)
		return
	}
	months := extractMonths(t, c.months)
	if len(months) == 0 {
		return
	}
	if comparisonCue(t) {
		spec.ComparisonSet = months
	} else {
		spec.TimeFilter = months
	}
}

// classifySource picks the data source and axes. Modification requests keep
// placeholder monthly defaults here; Resolve replaces them with the previous
// spec's source and axes.
func (c *Classifier) classifySource(t string, spec *domain.ChartSpec) {
	if spec.IsModification {
		spec.DataSource = domain.SourceMonthly
		spec.XAxis = domain.FieldMonths
		if len(spec.YAxis) == 0 {
			spec.YAxis = []string{domain.FieldRevenue}
		}
		return
	}
	for _, rule := range sourceRules {
		if rule.when(t) {
			rule.apply(t, spec)
			return
		}
	}
	applyMonthly(t, spec)
}

func (c *Classifier) classifyChartType(t string, spec domain.ChartSpec) domain.ChartType {
	for _, rule := range chartTypeRules {
		if rule.when(t) {
			return rule.chartType
		}
	}
	return fallbackChartType(spec)
}
