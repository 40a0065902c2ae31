package matchengine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirematch/engine/recruitment/matching"
)

func TestRecoverLiteralScan(t *testing.T) {
	data := []byte("\x00\x01(Senior software engineer with React)\xff\x02(and Node.js experience since 2018)\x03")

	text, source := testEngine().Recover(data, "resume.bin")

	assert.Equal(t, matching.TextSourceScanned, source)
	assert.Equal(t, "Senior software engineer with React and Node.js experience since 2018", text)
}

func TestRecoverFallsBackToLocator(t *testing.T) {
	text, source := testEngine().Recover([]byte("tiny"), "Jane_Smith-Frontend_Developer.pdf")

	assert.Equal(t, matching.TextSourceFallback, source)
	assert.True(t, strings.HasPrefix(text, "Jane Smith Frontend Developer"))
	assert.Contains(t, text, "curriculum vitae")
}

func TestRecoverNeverReturnsEmpty(t *testing.T) {
	text, source := testEngine().Recover(nil, "")

	assert.Equal(t, matching.TextSourceFallback, source)
	assert.NotEmpty(t, text)
}

func TestFallbackTextStripsQueryExtensionAndDigits(t *testing.T) {
	got := FallbackText("https://cdn.example.com/resumes/John_Doe-Resume2024.pdf?X-Amz-Signature=abc")

	assert.Equal(t, "John Doe Resume "+fallbackVocabulary, got)
}

func TestFallbackTextDigitsOnlyName(t *testing.T) {
	assert.Equal(t, fallbackVocabulary, FallbackText("20240115.pdf"))
}
