package matchengine

import "strings"

// fuzzyThreshold is the normalized edit-distance similarity a pair of
// strings must reach to count as a match.
const fuzzyThreshold = 0.8

// fuzzyMatch reports whether two strings approximately match: either one
// contains the other, or their normalized Levenshtein similarity reaches
// the threshold. Callers are expected to lower-case both sides.
func fuzzyMatch(a, b string) bool {
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	longer, shorter := a, b
	if len(b) > len(a) {
		longer, shorter = b, a
	}
	if len(longer) == 0 {
		return true
	}

	similarity := float64(len(longer)-levenshteinDistance(longer, shorter)) / float64(len(longer))
	return similarity >= fuzzyThreshold
}

// levenshteinDistance computes the classic edit distance with unit costs on
// full strings. No length cap: worst case is O(len(a)*len(b)).
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[i] = min(curr[i-1]+1, prev[i]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// keywordSimilarity is the Jaccard overlap of two keyword lists, scaled to
// [0,100]. Zero when either list is empty.
func keywordSimilarity(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := make(map[string]struct{}, len(a))
	for _, w := range a {
		setA[w] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, w := range b {
		setB[w] = struct{}{}
	}

	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return float64(intersection) / float64(union) * 100
}
