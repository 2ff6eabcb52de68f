package interpret

import "strings"

// extractMonths returns the catalog month labels mentioned in text, in
// catalog chronological order regardless of where they appear in the text.
// Every full month name contains its three-letter prefix, so a single
// substring test on the lowercased prefix covers both spellings.
func extractMonths(text string, monthLabels []string) []string {
	var out []string
	for _, label := range monthLabels {
		if len(label) < 3 {
			continue
		}
		abbr := strings.ToLower(label[:3])
		if strings.Contains(text, abbr) {
			out = append(out, label)
		}
	}
	return out
}

// trailingWindow recognizes the "last/past N months" shorthands. Returns the
// window size, or 0 when the text uses no shorthand.
func trailingWindow(text string) int {
	switch {
	case strings.Contains(text, "last 3 months"), strings.Contains(text, "past 3 months"):
		return 3
	case strings.Contains(text, "last 2 months"), strings.Contains(text, "past 2 months"):
		return 2
	}
	return 0
}
