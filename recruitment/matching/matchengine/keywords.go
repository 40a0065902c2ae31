package matchengine

import (
	"regexp"
	"strings"
)

// maxKeywords caps the keyword set used for Jaccard similarity.
const maxKeywords = 100

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "can": {}, "may": {}, "might": {}, "must": {}, "shall": {},
}

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// extractKeywords lower-cases the text, strips punctuation, and returns the
// first maxKeywords tokens longer than 2 characters that are not stop words.
func extractKeywords(text string) []string {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), " ")

	var keywords []string
	for _, token := range strings.Fields(cleaned) {
		if len(token) <= 2 {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		keywords = append(keywords, token)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}
