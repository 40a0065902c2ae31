package matchengine

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywordsFiltersStopWordsAndShortTokens(t *testing.T) {
	text := "The quick brown fox is an expert in Go"

	assert.Equal(t, []string{"quick", "brown", "fox", "expert"}, extractKeywords(text))
}

func TestExtractKeywordsStripsPunctuation(t *testing.T) {
	text := "backend, frontend; full-stack!"

	assert.Equal(t, []string{"backend", "frontend", "full", "stack"}, extractKeywords(text))
}

func TestExtractKeywordsCap(t *testing.T) {
	words := make([]string, 0, 150)
	for i := 0; i < 150; i++ {
		words = append(words, fmt.Sprintf("token%03d", i))
	}

	assert.Len(t, extractKeywords(strings.Join(words, " ")), maxKeywords)
}

func TestExtractKeywordsEmpty(t *testing.T) {
	assert.Empty(t, extractKeywords(""))
	assert.Empty(t, extractKeywords("a an of to"))
}
