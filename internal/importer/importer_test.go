package importer

import (
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/pfdash/backend/internal/finance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMerchant(t *testing.T) {
	tests := []struct {
		raw  string
		want Merchant
	}{
		{"POS UBER EATS 123456789 SYDNEY", Merchant{Name: "Uber Eats", Category: "Food"}},
		{"UBER *TRIP", Merchant{Name: "Uber", Category: "Transport"}},
		{"AMAZON PRIME VIDEO", Merchant{Name: "Amazon Prime", Category: "Entertainment"}},
		{"amazon marketplace", Merchant{Name: "Amazon", Category: "Shopping"}},
		{"green leaf cafe", Merchant{Name: "Green Leaf Cafe", Category: "Food"}},
		{"xy mystery vendor pty ltd", Merchant{Name: "XY Mystery Vendor Pty", Category: CategoryOther}},
		{"", Merchant{Name: "", Category: CategoryOther}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMerchant(tt.raw))
		})
	}
}

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		in   string
		want civil.Date
		ok   bool
	}{
		{"01/12/2024", civil.Date{Year: 2024, Month: 12, Day: 1}, true},
		{"2024-01-20", civil.Date{Year: 2024, Month: 1, Day: 20}, true},
		{"15.01.2024", civil.Date{Year: 2024, Month: 1, Day: 15}, true},
		{"Jan 15, 2024", civil.Date{Year: 2024, Month: 1, Day: 15}, true},
		{"Jan. 5 2024", civil.Date{Year: 2024, Month: 1, Day: 5}, true},
		{"3 Feb 2024", civil.Date{Year: 2024, Month: 2, Day: 3}, true},
		{"15/01/24", civil.Date{Year: 2024, Month: 1, Day: 15}, true},
		{"Jan 15", civil.Date{}, false},
		{"garbage", civil.Date{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseFlexibleDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in        string
		marker    string
		want      float64
		wantDebit bool
	}{
		{"45.67", "", 45.67, true},
		{"$1,234.56", "", 1234.56, true},
		{"-12.00", "", 12, false},
		{"3,200.00", "CR", 3200, false},
		{"9.99", "dr", 9.99, true},
		{"€20.00", "", 20, true},
	}

	for _, tt := range tests {
		t.Run(tt.in+tt.marker, func(t *testing.T) {
			got, debit := parseAmount(tt.in, tt.marker)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Equal(t, tt.wantDebit, debit)
		})
	}
}

func TestParseStatementLines(t *testing.T) {
	lines := []string{
		"Statement Period: 01/12/2024 to 31/12/2024",
		"01/12/2024 WOOLWORTHS 1234 SYDNEY 45.67",
		"2024-01-20 ACME PAYROLL 3,200.00 CR",
		"15.01.2024 Refund -12.00",
		"Jan 15, 2024 NETFLIX.COM 15.99",
		"Jan 15 ALDI STORES 32.45",
		"Opening balance 1,000.00",
		"02/01/2024 Coffee Shop 0.00",
	}

	res := ParseStatementLines(lines, "AUD")
	require.Len(t, res.Transactions, 4)
	assert.Equal(t, []string{"Jan 15 ALDI STORES 32.45", "02/01/2024 Coffee Shop 0.00"}, res.Skipped)

	woolies := res.Transactions[0]
	assert.Equal(t, finance.Expense, woolies.Type)
	assert.Equal(t, 45.67, woolies.Amount)
	assert.Equal(t, "Food", woolies.Category)
	assert.Equal(t, "Woolworths", woolies.Note)
	assert.Equal(t, civil.Date{Year: 2024, Month: 12, Day: 1}, woolies.Date)
	assert.Equal(t, "AUD", woolies.Currency)
	assert.Equal(t, finance.SourceImport, woolies.Source)
	assert.True(t, woolies.IsActive())

	salary := res.Transactions[1]
	assert.Equal(t, finance.Income, salary.Type)
	assert.Equal(t, 3200.0, salary.Amount)
	assert.Equal(t, "Salary", salary.Category)
	assert.Equal(t, "Acme Payroll", salary.Note)

	refund := res.Transactions[2]
	assert.Equal(t, finance.Income, refund.Type)
	assert.Equal(t, 12.0, refund.Amount)

	netflix := res.Transactions[3]
	assert.Equal(t, "Entertainment", netflix.Category)
	assert.Equal(t, civil.Date{Year: 2024, Month: 1, Day: 15}, netflix.Date)
}

func TestParseCSV(t *testing.T) {
	input := strings.Join([]string{
		"Date,Amount,Type,Category,Note,Currency",
		"2024-03-01,12.50,expense,Food,Lunch,",
		"2024-03-02,-100.00,,,,usd",
		"not-a-date,5,expense,Food,,",
		"2024-03-03,abc,expense,Food,,",
		"2024-03-04,5,transfer,Food,,",
		`2024-03-05,"1,007.25",,,Starbucks Reserve,`,
	}, "\n")

	res, err := ParseCSV(strings.NewReader(input), "EUR")
	require.NoError(t, err)
	require.Len(t, res.Transactions, 3)
	assert.Len(t, res.Skipped, 3)

	lunch := res.Transactions[0]
	assert.Equal(t, finance.Expense, lunch.Type)
	assert.Equal(t, 12.5, lunch.Amount)
	assert.Equal(t, "Food", lunch.Category)
	assert.Equal(t, "Lunch", lunch.Note)
	assert.Equal(t, "EUR", lunch.Currency)

	refund := res.Transactions[1]
	assert.Equal(t, finance.Income, refund.Type)
	assert.Equal(t, 100.0, refund.Amount)
	assert.Equal(t, CategoryOther, refund.Category)
	assert.Equal(t, "USD", refund.Currency)

	coffee := res.Transactions[2]
	assert.Equal(t, finance.Expense, coffee.Type)
	assert.Equal(t, 1007.25, coffee.Amount)
	assert.Equal(t, "Food", coffee.Category)
	assert.Equal(t, "Starbucks", coffee.Note)
}

func TestParseCSV_Header(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("when,amount\n2024-01-01,5"), "USD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"date"`)

	res, err := ParseCSV(strings.NewReader(""), "USD")
	require.NoError(t, err)
	assert.Empty(t, res.Transactions)
}

func TestParse(t *testing.T) {
	_, err := Parse("ofx", []byte("x"), "USD")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Parse("PDF", []byte("definitely not a pdf"), "USD")
	assert.Error(t, err)

	res, err := Parse("csv", []byte("date,amount\n2024-01-01,5"), "USD")
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, "USD", res.Transactions[0].Currency)
}
