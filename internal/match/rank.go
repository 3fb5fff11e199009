package match

import (
	"sort"
	"strings"
)

// Normalize lower-cases s. It is the only transformation applied to queries
// and candidate names before scoring; whitespace and punctuation pass
// through unchanged.
func Normalize(s string) string {
	return strings.ToLower(s)
}

// Rank scores every item's name against query and returns the best limit
// matches, ordered by similarity descending with distance ascending as the
// tie-break. Items equal on both metrics keep their input order. Rank never
// fails: an empty item list or a non-positive limit yields an empty result,
// and a limit beyond the item count returns the full sorted list.
func Rank[T any](items []T, name func(T) string, query string, limit int) []Match[T] {
	if limit <= 0 || len(items) == 0 {
		return nil
	}

	query = Normalize(query)

	matches := make([]Match[T], 0, len(items))
	for _, item := range items {
		matches = append(matches, Match[T]{
			Item:  item,
			Score: ScoreStrings(Normalize(name(item)), query),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score.Similarity != matches[j].Score.Similarity {
			return matches[i].Score.Similarity > matches[j].Score.Similarity
		}
		return matches[i].Score.Distance < matches[j].Score.Distance
	})

	if limit < len(matches) {
		matches = matches[:limit]
	}
	return matches
}
