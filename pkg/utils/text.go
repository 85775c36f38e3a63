package utils

import "strings"

// NormalizeMultiValue cleans a comma separated multi-value field such as
// "형제/자매, 친인척, 친인척": parts are trimmed, empty parts dropped and
// duplicates removed while keeping first-seen order.
func NormalizeMultiValue(text string) string {
	if text == "" {
		return text
	}

	seen := make(map[string]bool)
	var result []string
	for _, p := range strings.Split(text, ",") {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		result = append(result, p)
	}
	return strings.Join(result, ", ")
}
