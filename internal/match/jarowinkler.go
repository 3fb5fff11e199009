package match

const (
	// winklerMaxPrefix caps how many leading characters feed the prefix bonus.
	winklerMaxPrefix = 4
	// winklerScale weights the prefix bonus.
	winklerScale = 0.1
)

// Similarity computes the Jaro-Winkler similarity between two strings:
// 1.0 means identical, 0.0 means no resemblance. The Winkler bonus boosts
// the base Jaro similarity for strings sharing a common prefix, up to
// winklerMaxPrefix characters at winklerScale per character. The formula is
// symmetric in its two arguments.
func Similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		// Zero-length inputs have no matching window; score them as
		// dissimilar rather than dividing by zero.
		return 0.0
	}
	if a == b {
		return 1.0
	}

	runesA := []rune(a)
	runesB := []rune(b)

	jaro := jaroSimilarity(runesA, runesB)

	prefix := 0
	for prefix < len(runesA) && prefix < len(runesB) && runesA[prefix] == runesB[prefix] {
		prefix++
		if prefix == winklerMaxPrefix {
			break
		}
	}

	return jaro + float64(prefix)*winklerScale*(1.0-jaro)
}

// jaroSimilarity is the base Jaro metric: matching characters within a
// bounded window, corrected for transpositions.
func jaroSimilarity(a, b []rune) float64 {
	lenA := len(a)
	lenB := len(b)
	if lenA == 0 || lenB == 0 {
		return 0.0
	}

	window := max(lenA, lenB)/2 - 1
	if window < 0 {
		window = 0
	}

	matchedA := make([]bool, lenA)
	matchedB := make([]bool, lenB)

	matches := 0
	for i := range a {
		lo := max(0, i-window)
		hi := min(lenB-1, i+window)
		for j := lo; j <= hi; j++ {
			if matchedB[j] || a[i] != b[j] {
				continue
			}
			matchedA[i] = true
			matchedB[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0.0
	}

	// Walk the two matched subsequences in parallel; characters that pair
	// up unequal are half a transposition each.
	transpositions := 0
	j := 0
	for i := range a {
		if !matchedA[i] {
			continue
		}
		for !matchedB[j] {
			j++
		}
		if a[i] != b[j] {
			transpositions++
		}
		j++
	}
	transpositions /= 2

	m := float64(matches)
	return (m/float64(lenA) + m/float64(lenB) + (m-float64(transpositions))/m) / 3.0
}
