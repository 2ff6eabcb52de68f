// Package catalog holds the fixed schema of business data sources: named
// groups of parallel field arrays (one categorical label field plus one or
// more numeric metric fields of identical length).
package catalog

import (
	"fmt"

	"github.com/bizlens/bizlens/internal/domain"
)

// Unit classifies how a metric's values are displayed.
type Unit string

const (
	UnitCurrency Unit = "currency"
	UnitPercent  Unit = "percent"
)

// Source is one named group of parallel arrays. Index i of Labels
// corresponds to index i of every metric array.
type Source struct {
	Name       domain.DataSource
	LabelField string
	Labels     []string

	metricOrder []string
	metrics     map[string][]float64
	units       map[string]Unit
}

// NewSource creates a source with its categorical label field.
func NewSource(name domain.DataSource, labelField string, labels []string) *Source {
	return &Source{
		Name:       name,
		LabelField: labelField,
		Labels:     append([]string(nil), labels...),
		metrics:    make(map[string][]float64),
		units:      make(map[string]Unit),
	}
}

// AddMetric registers a metric field. The value array must be parallel to
// the source's labels.
func (s *Source) AddMetric(field string, values []float64, unit Unit) error {
	if len(values) != len(s.Labels) {
		return fmt.Errorf("metric %s: %d values for %d labels", field, len(values), len(s.Labels))
	}
	if _, exists := s.metrics[field]; exists {
		return fmt.Errorf("metric %s: already registered", field)
	}
	s.metricOrder = append(s.metricOrder, field)
	s.metrics[field] = append([]float64(nil), values...)
	s.units[field] = unit
	return nil
}

// Metric returns the value array for a field.
func (s *Source) Metric(field string) ([]float64, bool) {
	v, ok := s.metrics[field]
	return v, ok
}

// Metrics returns the metric field names in registration order.
func (s *Source) Metrics() []string {
	return append([]string(nil), s.metricOrder...)
}

// DefaultMetric is the canonical metric used when a request names none:
// the first registered field (revenue for every shipped source that has it).
func (s *Source) DefaultMetric() string {
	if len(s.metricOrder) == 0 {
		return ""
	}
	return s.metricOrder[0]
}

// Unit returns the display unit for a metric field.
func (s *Source) Unit(field string) Unit {
	if u, ok := s.units[field]; ok {
		return u
	}
	return UnitCurrency
}

// Len is the number of label/value rows.
func (s *Source) Len() int {
	return len(s.Labels)
}

// Catalog is the process-wide read-only set of sources.
type Catalog struct {
	Currency string

	order   []domain.DataSource
	sources map[domain.DataSource]*Source
}

// New creates an empty catalog with the given display currency.
func New(currency string) *Catalog {
	return &Catalog{
		Currency: currency,
		sources:  make(map[domain.DataSource]*Source),
	}
}

// Add registers a source. Every metric array must already be parallel to the
// source labels; AddMetric enforces that, so Add only guards against
// duplicate registration.
func (c *Catalog) Add(s *Source) error {
	if _, exists := c.sources[s.Name]; exists {
		return fmt.Errorf("source %s: already registered", s.Name)
	}
	c.order = append(c.order, s.Name)
	c.sources[s.Name] = s
	return nil
}

// Source looks up a data source by name.
func (c *Catalog) Source(name domain.DataSource) (*Source, bool) {
	s, ok := c.sources[name]
	return s, ok
}

// Sources returns all sources in registration order.
func (c *Catalog) Sources() []*Source {
	out := make([]*Source, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.sources[name])
	}
	return out
}

// MonthLabels returns the monthly source's labels in chronological order.
func (c *Catalog) MonthLabels() []string {
	s, ok := c.sources[domain.SourceMonthly]
	if !ok {
		return nil
	}
	return append([]string(nil), s.Labels...)
}
