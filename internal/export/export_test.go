package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/pfdash/backend/internal/finance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var exportDay = time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

func sample() []*finance.Transaction {
	return []*finance.Transaction{
		{
			ID: "t1", Type: finance.Expense, Amount: 12.5, Category: "Food",
			Date: civil.Date{Year: 2024, Month: 6, Day: 1}, Note: "Lunch, with team",
			Currency: "USD", Source: finance.SourceManual,
		},
		{
			ID: "t2", Type: finance.Income, Amount: 900, Category: "Salary",
			Date: civil.Date{Year: 2024, Month: 6, Day: 2}, Currency: "EUR",
			Source:     finance.SourceRecurring,
			Recurrence: &finance.Recurrence{Interval: finance.Monthly},
		},
	}
}

func TestCSV(t *testing.T) {
	data, err := CSV(sample())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	lines := strings.Split(strings.TrimSpace(string(data[3:])), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Type,Category,Amount,Currency,Note,Source,Recurrence", lines[0])
	assert.Equal(t, `2024-06-01,expense,Food,12.50,USD,"Lunch, with team",manual,`, lines[1])
	assert.Equal(t, "2024-06-02,income,Salary,900.00,EUR,,recurring,monthly", lines[2])
}

func TestXLSX(t *testing.T) {
	data, err := XLSX(sample())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, header, rows[0])
	assert.Equal(t, "Food", rows[1][2])
	assert.Equal(t, "12.5", rows[1][3])
	assert.Equal(t, "monthly", rows[2][7])
}

func TestRender(t *testing.T) {
	tests := []struct {
		format      string
		filename    string
		contentType string
	}{
		{"", "transactions_20240615.csv", "text/csv; charset=utf-8"},
		{"CSV", "transactions_20240615.csv", "text/csv; charset=utf-8"},
		{"xlsx", "transactions_20240615.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			file, err := Render(tt.format, sample(), exportDay)
			require.NoError(t, err)
			assert.Equal(t, tt.filename, file.Filename)
			assert.Equal(t, tt.contentType, file.ContentType)
			assert.NotEmpty(t, file.Data)
		})
	}

	_, err := Render("pdf", sample(), exportDay)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestObjectName(t *testing.T) {
	assert.Equal(t, "exports/user-1/transactions_20240615.csv",
		ObjectName("user-1", &File{Filename: "transactions_20240615.csv"}))
}
