package matchengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyMatchSubstring(t *testing.T) {
	assert.True(t, fuzzyMatch("javascript", "java"))
	assert.True(t, fuzzyMatch("react", "react native"))
}

func TestFuzzyMatchNearMiss(t *testing.T) {
	// One substitution in ten characters: similarity 0.9.
	assert.True(t, fuzzyMatch("kubernetes", "kubernates"))
}

func TestFuzzyMatchRejectsUnrelated(t *testing.T) {
	assert.False(t, fuzzyMatch("python", "golang"))
	assert.False(t, fuzzyMatch("react", "html"))
}

func TestFuzzyMatchReflexive(t *testing.T) {
	assert.True(t, fuzzyMatch("terraform", "terraform"))
	assert.True(t, fuzzyMatch("", ""))
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
	assert.Equal(t, 0, levenshteinDistance("same", "same"))
	assert.Equal(t, 3, levenshteinDistance("", "abc"))
	assert.Equal(t, 3, levenshteinDistance("abc", ""))
}

func TestKeywordSimilarityIdentity(t *testing.T) {
	words := []string{"react", "node", "backend"}

	assert.Equal(t, 100.0, keywordSimilarity(words, words))
}

func TestKeywordSimilarityDisjoint(t *testing.T) {
	assert.Equal(t, 0.0, keywordSimilarity([]string{"react"}, []string{"cobol"}))
}

func TestKeywordSimilarityPartialOverlap(t *testing.T) {
	got := keywordSimilarity([]string{"alpha", "beta"}, []string{"beta", "gamma"})

	assert.InDelta(t, 100.0/3, got, 1e-9)
}

func TestKeywordSimilarityEmptySides(t *testing.T) {
	assert.Equal(t, 0.0, keywordSimilarity(nil, []string{"react"}))
	assert.Equal(t, 0.0, keywordSimilarity([]string{"react"}, nil))
	assert.Equal(t, 0.0, keywordSimilarity(nil, nil))
}
