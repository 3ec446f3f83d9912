package digest

import (
	"fmt"
	"strings"

	"devdigest/internal/models"
)

const maxFallbackLines = 5

// FallbackSummary builds a deterministic summary with no network calls.
// Contributions are grouped by a key derived from the title: truncated at
// the first ':', then at the first '(', then trimmed. Order of the two
// truncations is deliberate and load-bearing for titles containing both.
func FallbackSummary(batch []models.Contribution) string {
	counts := make(map[string]int)
	order := make([]string, 0, len(batch))

	for _, c := range batch {
		key := c.Title
		if i := strings.IndexByte(key, ':'); i >= 0 {
			key = key[:i]
		}
		if i := strings.IndexByte(key, '('); i >= 0 {
			key = key[:i]
		}
		key = strings.TrimSpace(key)

		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}

	bullets := make([]string, 0, len(order))
	for _, key := range order {
		if counts[key] > 1 {
			bullets = append(bullets, fmt.Sprintf("• Made %d improvements to %s", counts[key], key))
		} else {
			bullets = append(bullets, "• "+key)
		}
	}

	if len(bullets) > maxFallbackLines {
		bullets = bullets[:maxFallbackLines]
	}
	if len(bullets) == 0 {
		return "• Various code improvements"
	}
	return strings.Join(bullets, "\n")
}
