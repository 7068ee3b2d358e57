// Package export renders transaction lists as downloadable files and can
// store them in a Cloud Storage bucket.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pfdash/backend/internal/finance"
	"github.com/xuri/excelize/v2"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	sheetName = "Transactions"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

var header = []string{"Date", "Type", "Category", "Amount", "Currency", "Note", "Source", "Recurrence"}

// File is a rendered export.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Render writes the transactions in the requested format. The filename is
// stamped with the export day.
func Render(format string, txs []*finance.Transaction, now time.Time) (*File, error) {
	stamp := now.Format("20060102")
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatCSV:
		data, err := CSV(txs)
		if err != nil {
			return nil, err
		}
		return &File{
			Filename:    fmt.Sprintf("transactions_%s.csv", stamp),
			ContentType: "text/csv; charset=utf-8",
			Data:        data,
		}, nil
	case FormatXLSX:
		data, err := XLSX(txs)
		if err != nil {
			return nil, err
		}
		return &File{
			Filename:    fmt.Sprintf("transactions_%s.xlsx", stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func row(tx *finance.Transaction) []string {
	recurrence := ""
	if tx.Recurrence != nil {
		recurrence = string(tx.Recurrence.Interval)
	}
	return []string{
		tx.Date.String(),
		string(tx.Type),
		tx.Category,
		strconv.FormatFloat(tx.Amount, 'f', 2, 64),
		tx.Currency,
		tx.Note,
		string(tx.Source),
		recurrence,
	}
}

// CSV renders the transactions with a header row. A UTF-8 BOM is written
// first so spreadsheet apps detect the encoding.
func CSV(txs []*finance.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, tx := range txs {
		if err := w.Write(row(tx)); err != nil {
			return nil, fmt.Errorf("write csv row %s: %w", tx.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// XLSX renders the transactions into a single worksheet. Amounts are
// written as numbers so they can be summed in the spreadsheet.
func XLSX(txs []*finance.Transaction) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, tx := range txs {
		values := row(tx)
		cells := make([]any, len(values))
		for j, v := range values {
			cells[j] = v
		}
		cells[3] = tx.Amount

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	widths := map[string]float64{"A": 12, "B": 10, "C": 16, "D": 12, "E": 10, "F": 30, "G": 10, "H": 12}
	for col, width := range widths {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
