package htmltag

import "strings"

// MergeClasses joins class tokens from configured and any extra classes into
// a single space-separated string. Entries may hold several tokens; duplicates
// are dropped while the first occurrence keeps its position.
func MergeClasses(configured []string, extra ...string) string {
	seen := make(map[string]struct{}, len(configured)+len(extra))
	tokens := make([]string, 0, len(configured)+len(extra))

	add := func(value string) {
		for _, token := range strings.Fields(value) {
			if _, exists := seen[token]; exists {
				continue
			}
			seen[token] = struct{}{}
			tokens = append(tokens, token)
		}
	}

	for _, value := range configured {
		add(value)
	}
	for _, value := range extra {
		add(value)
	}
	return strings.Join(tokens, " ")
}
