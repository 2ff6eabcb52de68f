package domain

// ChartSpec is the resolved structured description of one chart request:
// which data source to plot, which fields go on each axis, the chart shape,
// and any filtering or patching the request asked for. A fresh spec replaces
// the session's current spec every turn; a modification spec patches it.
type ChartSpec struct {
	DataSource       DataSource       `json:"data_source"`
	XAxis            string           `json:"x_axis"`
	YAxis            []string         `json:"y_axis"`
	ChartType        ChartType        `json:"chart_type"`
	TimeFilter       []string         `json:"time_filter,omitempty"`
	ComparisonSet    []string         `json:"comparison_set,omitempty"`
	SecondaryAxis    []string         `json:"secondary_axis,omitempty"`
	IsModification   bool             `json:"is_modification"`
	ModificationType ModificationType `json:"modification_type,omitempty"`
}

// Clone returns a deep copy so resolving a modification never aliases the
// slices of the remembered previous spec.
func (s ChartSpec) Clone() ChartSpec {
	c := s
	c.YAxis = append([]string(nil), s.YAxis...)
	c.TimeFilter = append([]string(nil), s.TimeFilter...)
	c.ComparisonSet = append([]string(nil), s.ComparisonSet...)
	c.SecondaryAxis = append([]string(nil), s.SecondaryAxis...)
	return c
}

// HasMetric reports whether name is already one of the y-axis metrics.
func (s ChartSpec) HasMetric(name string) bool {
	for _, m := range s.YAxis {
		if m == name {
			return true
		}
	}
	return false
}

// FilterLabels returns the active x-axis restriction, preferring the
// comparison set when both are somehow populated. The classifier constructs
// at most one of the two.
func (s ChartSpec) FilterLabels() []string {
	if len(s.ComparisonSet) > 0 {
		return s.ComparisonSet
	}
	return s.TimeFilter
}
