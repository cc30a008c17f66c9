// Package fuzzy scores and ranks search candidates for every search surface
// in the console. The scoring rules are fixed so that the per-field search and
// the command palette always agree on ordering.
package fuzzy

import (
	"sort"
	"strings"
)

const (
	prefixScore    = 120
	substringScore = 90
	subsequenceHit = 3
	proximityBase  = 40
)

// Score rates how well query matches haystack. Zero means no match; an empty
// query matches everything with a score of 1.
func Score(query, haystack string) int {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return 1
	}
	h := strings.ToLower(haystack)
	if strings.HasPrefix(h, normalized) {
		return prefixScore
	}
	if strings.Contains(h, normalized) {
		return substringScore
	}

	pattern := []rune(normalized)
	text := []rune(h)
	cursor := 0
	score := 0
	for i := 0; i < len(text) && cursor < len(pattern); i++ {
		if text[i] == pattern[cursor] {
			cursor++
			score += subsequenceHit
		}
	}
	if cursor != len(pattern) {
		return 0
	}
	if bonus := proximityBase - (len(text) - len(pattern)); bonus > 0 {
		score += bonus
	}
	return score
}

// Rank filters items to those that match query, orders them by descending
// score and truncates the list to limit. Equal scores keep their input order.
// A limit of zero or less keeps every match.
func Rank[T any](query string, items []T, haystack func(T) string, limit int) []T {
	type scored struct {
		item  T
		score int
	}
	matches := make([]scored, 0, len(items))
	for _, item := range items {
		if s := Score(query, haystack(item)); s > 0 {
			matches = append(matches, scored{item: item, score: s})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	results := make([]T, len(matches))
	for i, m := range matches {
		results[i] = m.item
	}
	return results
}
