package match

// Distance computes the Levenshtein edit distance between two strings: the
// minimum number of single-character insertions, deletions, or substitutions
// required to change one string into the other. The distance is symmetric
// and zero exactly when the strings are identical.
func Distance(a, b string) int {
	if len(a) == 0 {
		return len([]rune(b))
	}
	if len(b) == 0 {
		return len([]rune(a))
	}

	// Operate on runes so multi-byte characters count as one edit
	runesA := []rune(a)
	runesB := []rune(b)

	// Two-row DP keeps memory at O(len(b))
	prev := make([]int, len(runesB)+1)
	curr := make([]int, len(runesB)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(runesA); i++ {
		curr[0] = i

		for j := 1; j <= len(runesB); j++ {
			cost := 0
			if runesA[i-1] != runesB[j-1] {
				cost = 1
			}

			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(runesB)]
}
