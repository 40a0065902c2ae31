package matchengine

import "strings"

// educationVocabulary covers degree levels, institution words, and common
// fields of study. Matching is a simple presence test on lower-cased text.
var educationVocabulary = []string{
	"bachelor", "master", "phd", "doctorate", "mba", "degree", "diploma",
	"university", "college", "institute", "school",
	"computer science", "engineering", "mathematics", "physics", "chemistry",
	"business", "economics", "finance", "marketing",
}

// extractEducation returns the vocabulary terms present in the text, in
// vocabulary order, deduplicated.
func extractEducation(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, term := range educationVocabulary {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return dedupeFold(found)
}
