// Package match implements the fuzzy matching core: a combined
// edit-distance / Jaro-Winkler scorer and a generic ranker that orders
// candidates against a query.
package match

// Score pairs the two metrics computed for one candidate against a query.
// Distance is the Levenshtein edit distance (lower is closer). Similarity
// is the prefix-boosted Jaro-Winkler similarity in [0, 1] (higher is closer).
type Score struct {
	Distance   int     `json:"distance"`
	Similarity float64 `json:"similarity"`
}

// Match pairs an item with its Score against a specific query.
type Match[T any] struct {
	Item  T
	Score Score
}

// ScoreStrings computes the Score for candidate against query. Both inputs
// must already be normalized; Rank does that for its callers. Two empty
// strings score as Score{Distance: 0, Similarity: 0}, not a perfect match.
func ScoreStrings(candidate, query string) Score {
	return Score{
		Distance:   Distance(candidate, query),
		Similarity: Similarity(candidate, query),
	}
}
