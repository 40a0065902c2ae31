package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz" // Lightweight PDF renderer
)

const (
	// literalRunCap bounds a single scanned text run.
	literalRunCap = 200
	// minLiteralRun discards runs that are too short to be real words.
	minLiteralRun = 3
)

// IsPDF reports whether the data carries a PDF header.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF-"))
}

// ExtractText extracts the text content of every page of a PDF document.
func ExtractText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

// ScanLiteralText is a low-confidence extraction that works on any binary
// document encoding literal text between '(' and ')' byte pairs. It collects
// runs of printable ASCII, capping each run at literalRunCap bytes and
// discarding runs of minLiteralRun bytes or fewer. It can both false-positive
// on binary garbage and false-negative on legitimately short text; callers
// gate acceptance on the length of the result.
func ScanLiteralText(data []byte) string {
	var sb strings.Builder

	for i := 0; i < len(data); i++ {
		if data[i] != '(' {
			continue
		}

		var run strings.Builder
		j := i + 1
		for j < len(data) && data[j] != ')' && j-i < literalRunCap {
			if data[j] >= 32 && data[j] <= 126 {
				run.WriteByte(data[j])
			}
			j++
		}

		if run.Len() > minLiteralRun {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(run.String())
		}
	}

	return sb.String()
}
