package matchengine

import (
	"strings"

	"github.com/hirematch/engine/recruitment/matching"
)

// maxHeaderLen is the short-line heuristic: a line mentioning a section
// keyword only counts as a header when shorter than this, which filters out
// body prose that happens to mention "experience" or "skills".
const maxHeaderLen = 50

// sectionKeywords maps each canonical section to the heading words that
// open it.
var sectionKeywords = map[string][]string{
	matching.SectionContact:    {"contact", "personal", "info"},
	matching.SectionSummary:    {"summary", "objective", "profile", "about"},
	matching.SectionExperience: {"experience", "work", "employment", "career", "professional"},
	matching.SectionEducation:  {"education", "academic", "university", "degree", "school"},
	matching.SectionSkills:     {"skills", "technical", "technologies", "tools", "proficient"},
}

// boundaryHeaders close any open section, independent of which section is
// currently being accumulated.
var boundaryHeaders = []string{
	"experience", "education", "skills", "projects", "certifications",
	"achievements", "references", "contact", "summary", "objective",
}

// segmentResume splits resume text into the five canonical sections. Every
// key is always present; sections whose header never appears map to "".
func (e *Engine) segmentResume(text string) map[string]string {
	sections := make(map[string]string, len(matching.SectionNames))
	for _, name := range matching.SectionNames {
		sections[name] = extractSection(text, sectionKeywords[name])
	}
	return sections
}

// extractSection scans the text line by line and returns the content that
// follows the first header matching one of the keywords, up to the next
// boundary header. Single pass, no backtracking; empty string when no
// header is found.
func extractSection(text string, keywords []string) string {
	lines := strings.Split(text, "\n")

	var content strings.Builder
	inSection := false

	for _, raw := range lines {
		line := strings.ToLower(strings.TrimSpace(raw))

		if isHeaderLine(line, keywords) {
			inSection = true
			continue
		}

		if inSection && isBoundaryHeader(line) {
			break
		}

		if inSection {
			content.WriteString(raw)
			content.WriteByte('\n')
		}
	}

	return strings.TrimSpace(content.String())
}

func isHeaderLine(line string, keywords []string) bool {
	if len(line) >= maxHeaderLen {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}

func isBoundaryHeader(line string) bool {
	return isHeaderLine(line, boundaryHeaders)
}
