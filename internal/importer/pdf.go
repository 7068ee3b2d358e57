package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

const maxTextBytes = 512 * 1024

// ErrScannedPDF is returned for PDFs without an extractable text layer.
var ErrScannedPDF = errors.New("pdf has no extractable text")

// ExtractPDFLines returns the non-empty text lines of a PDF. The pdf
// library panics on some malformed files; those panics surface as errors.
func ExtractPDFLines(data []byte) (lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			lines = nil
			err = fmt.Errorf("panic during PDF text extraction: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open PDF reader: %w", err)
	}

	plainText, err := reader.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("extract plain text: %w", err)
	}

	text, err := io.ReadAll(io.LimitReader(plainText, maxTextBytes))
	if err != nil {
		return nil, fmt.Errorf("read plain text: %w", err)
	}

	for _, line := range strings.Split(string(text), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return nil, ErrScannedPDF
	}
	return lines, nil
}

// ParsePDF extracts a text PDF statement.
func ParsePDF(data []byte, currency string) (*Result, error) {
	lines, err := ExtractPDFLines(data)
	if err != nil {
		return nil, err
	}
	return ParseStatementLines(lines, currency), nil
}
