package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPDF(t *testing.T) {
	assert.True(t, IsPDF([]byte("%PDF-1.7\n...")))
	assert.False(t, IsPDF([]byte("PK\x03\x04")))
	assert.False(t, IsPDF(nil))
}

func TestScanLiteralTextJoinsRuns(t *testing.T) {
	data := []byte("\x00\x01(first literal run)\xff\x02(second run)\x03")

	assert.Equal(t, "first literal run second run", ScanLiteralText(data))
}

func TestScanLiteralTextDiscardsShortRuns(t *testing.T) {
	data := []byte("(ab)(xyz)(long enough)")

	assert.Equal(t, "long enough", ScanLiteralText(data))
}

func TestScanLiteralTextStripsNonPrintable(t *testing.T) {
	data := []byte("(hello\x01world)")

	assert.Equal(t, "helloworld", ScanLiteralText(data))
}

func TestScanLiteralTextNoParens(t *testing.T) {
	assert.Equal(t, "", ScanLiteralText([]byte("no literals here")))
	assert.Equal(t, "", ScanLiteralText(nil))
}
