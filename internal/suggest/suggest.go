// Package suggest finds the closest known names to a mistyped token.
package suggest

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// limit is the largest edit distance still considered a plausible typo of a
// candidate with n characters.
func limit(n int) int {
	switch {
	case n <= 3:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}

type scored struct {
	val  string
	dist int
}

// Closest returns up to max candidates that token plausibly misspells, best
// first. Prefix matches rank ahead of edit-distance matches.
func Closest(token string, candidates []string, max int) []string {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" || max <= 0 {
		return nil
	}

	var results []scored
	seen := make(map[string]bool, len(candidates))
	for _, cand := range candidates {
		c := strings.ToLower(cand)
		if seen[c] || c == t {
			continue
		}
		seen[c] = true

		if strings.HasPrefix(c, t) && len(t) >= 2 {
			results = append(results, scored{val: cand, dist: 0})
			continue
		}
		dist := levenshtein.ComputeDistance(t, c)
		if dist > limit(len(c)) {
			continue
		}
		results = append(results, scored{val: cand, dist: dist})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].val < results[j].val
		}
		return results[i].dist < results[j].dist
	})

	if len(results) > max {
		results = results[:max]
	}
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.val
	}
	return out
}

// Hint formats the closest candidates as a "did you mean" suffix, or returns
// an empty string when nothing is close.
func Hint(token string, candidates []string) string {
	best := Closest(token, candidates, 3)
	if len(best) == 0 {
		return ""
	}
	return " (did you mean " + strings.Join(best, ", ") + "?)"
}
