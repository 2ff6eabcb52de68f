package llm

import "strings"

// CleanNarration normalizes raw model output into display-ready prose.
// Models occasionally wrap plain-text answers in markdown code fences or
// quote the whole reply; both get stripped.
func CleanNarration(raw string) string {
	s := stripCodeFences(raw)
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' && !strings.Contains(s[1:len(s)-1], "\"") {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}

// stripCodeFences removes markdown code fences (```text ... ``` or ``` ... ```).
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	var result []string
	inFence := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}
