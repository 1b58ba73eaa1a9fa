// Package search implements the shared resource-picker filter: a
// case-insensitive substring match over a caller-chosen set of fields.
package search

import "strings"

// Match returns the items whose listed field values contain term,
// case-insensitively. An empty term returns the input slice unchanged.
// Empty field values never match.
func Match[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)
	var out []T
	for _, item := range items {
		for _, field := range fields(item) {
			if field == "" {
				continue
			}
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
