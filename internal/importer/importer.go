// Package importer turns bank statements into transactions. Text PDFs are
// parsed line by line with pattern rules; CSV exports are mapped by
// header name.
package importer

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/pfdash/backend/internal/finance"
)

const (
	FormatPDF = "pdf"
	FormatCSV = "csv"
)

var ErrUnsupportedFormat = errors.New("unsupported statement format")

// Result is the outcome of parsing one statement. Skipped holds the raw
// lines that looked like transactions but could not be parsed.
type Result struct {
	Transactions []*finance.Transaction
	Skipped      []string
}

// Parse dispatches on the statement format. Currency is stamped on every
// row that does not carry its own.
func Parse(format string, data []byte, currency string) (*Result, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatPDF:
		return ParsePDF(data, currency)
	case FormatCSV:
		return ParseCSV(bytes.NewReader(data), currency)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
