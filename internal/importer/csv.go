package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pfdash/backend/internal/finance"
)

// csvColumns are the recognised header names. Only date and amount are
// required.
var csvColumns = []string{"date", "type", "amount", "category", "note", "currency"}

// ParseCSV reads a statement exported as CSV with a header row. Column
// order is free. A row without a type is an expense unless its amount is
// negative, in which case it is income.
func ParseCSV(r io.Reader, currency string) (*Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Result{}, nil
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, required := range []string{"date", "amount"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("csv header is missing the %q column (known columns: %s)",
				required, strings.Join(csvColumns, ", "))
		}
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	res := &Result{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		raw := strings.Join(record, ",")

		tx, ok := csvTransaction(field, record, currency)
		if !ok {
			res.Skipped = append(res.Skipped, raw)
			continue
		}
		res.Transactions = append(res.Transactions, tx)
	}
	return res, nil
}

func csvTransaction(field func([]string, string) string, record []string, currency string) (*finance.Transaction, bool) {
	date, ok := parseFlexibleDate(field(record, "date"))
	if !ok {
		return nil, false
	}

	amountStr := strings.NewReplacer("$", "", "£", "", "€", "", ",", "").Replace(field(record, "amount"))
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil || amount == 0 {
		return nil, false
	}

	txType := finance.TransactionType(strings.ToLower(field(record, "type")))
	switch {
	case txType == "" && amount < 0:
		txType = finance.Income
	case txType == "":
		txType = finance.Expense
	case !txType.Valid():
		return nil, false
	}
	if amount < 0 {
		amount = -amount
	}

	note := field(record, "note")
	category := field(record, "category")
	if category == "" {
		merchant := NormalizeMerchant(note)
		category = merchant.Category
		if note != "" {
			note = merchant.Name
		}
	}

	rowCurrency := strings.ToUpper(field(record, "currency"))
	if rowCurrency == "" {
		rowCurrency = currency
	}

	return &finance.Transaction{
		Type:     txType,
		Amount:   amount,
		Category: category,
		Date:     date,
		Note:     note,
		Currency: rowCurrency,
		State:    finance.StateActive,
		Source:   finance.SourceImport,
	}, true
}
