package fuzzy

import (
	"sort"
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Positions returns the sorted rune offsets in text that a renderer should
// emphasize for query. It only drives display; ranking always goes through
// Score.
func Positions(query, text string) []int {
	pattern := []rune(strings.ToLower(strings.TrimSpace(query)))
	if len(pattern) == 0 || text == "" {
		return nil
	}
	chars := util.ToChars([]byte(text))
	result, pos := algo.FuzzyMatchV2(false, false, true, &chars, pattern, true, nil)
	if result.Start < 0 || pos == nil {
		return nil
	}
	offsets := append([]int(nil), (*pos)...)
	sort.Ints(offsets)
	return offsets
}

// Mark passes every rune of text found in positions through render and
// leaves the rest untouched.
func Mark(text string, positions []int, render func(string) string) string {
	if len(positions) == 0 || render == nil {
		return text
	}
	marked := make(map[int]bool, len(positions))
	for _, p := range positions {
		marked[p] = true
	}
	var b strings.Builder
	for i, r := range []rune(text) {
		if marked[i] {
			b.WriteString(render(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
