// Package filter derives the visible subset of a choice registry from a
// search query. Matching is a case-insensitive substring test on the label;
// registry order is always preserved and an empty query yields the full
// registry. Filtering is pure and synchronous - no debouncing.
package filter

import (
	"strings"

	"github.com/dropsel/dropsel/internal/choice"
)

// Visible returns the choices whose label contains query, case-insensitively,
// in registry order. An empty query returns all choices.
func Visible(choices []choice.Choice, query string) []choice.Choice {
	if query == "" {
		out := make([]choice.Choice, len(choices))
		copy(out, choices)
		return out
	}

	q := strings.ToLower(query)
	out := make([]choice.Choice, 0, len(choices))
	for _, c := range choices {
		if strings.Contains(strings.ToLower(c.Label), q) {
			out = append(out, c)
		}
	}
	return out
}
