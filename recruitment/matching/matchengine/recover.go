package matchengine

import (
	"path"
	"regexp"
	"strings"

	"github.com/hirematch/engine/internal/pdf"
	"github.com/hirematch/engine/recruitment/matching"
)

// minRecoveredLen is the confidence threshold for accepting extracted text.
// Below it the extraction is treated as failed and the next strategy runs.
// This is a heuristic, not a correctness guarantee: binary garbage can pass
// it and legitimately short documents can fail it.
const minRecoveredLen = 50

// fallbackVocabulary is appended to locator-derived pseudo-text so that
// downstream scoring does not collapse to zero when a document cannot be
// read at all.
const fallbackVocabulary = "resume cv curriculum vitae professional experience skills education background developer engineer manager analyst designer programmer software technology"

var digitsRe = regexp.MustCompile(`\d+`)

// Recover extracts a plausible plain-text string from a binary document.
// It never fails and always returns a non-empty string. Strategies, in
// order: real PDF parsing, the low-confidence literal scan, and finally
// pseudo-text derived from the locator. The returned TextSource tells the
// caller which strategy produced the text.
func (e *Engine) Recover(data []byte, locator string) (string, matching.TextSource) {
	if pdf.IsPDF(data) {
		if text, err := pdf.ExtractText(data); err == nil && len(strings.TrimSpace(text)) > minRecoveredLen {
			return text, matching.TextSourceParsed
		}
	}

	if text := pdf.ScanLiteralText(data); len(text) > minRecoveredLen {
		return text, matching.TextSourceScanned
	}

	return FallbackText(locator), matching.TextSourceFallback
}

// FallbackText derives bag-of-words pseudo-text from a document locator.
// Used when the document bytes are unreadable or unreachable.
func FallbackText(locator string) string {
	name := locator
	if i := strings.IndexByte(name, '?'); i >= 0 {
		name = name[:i]
	}
	name = path.Base(name)
	if name == "." || name == "/" {
		name = ""
	}
	name = strings.TrimSuffix(name, path.Ext(name))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	name = digitsRe.ReplaceAllString(name, "")
	name = strings.Join(strings.Fields(name), " ")

	if name == "" {
		return fallbackVocabulary
	}
	return name + " " + fallbackVocabulary
}
