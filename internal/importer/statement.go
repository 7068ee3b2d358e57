package importer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/pfdash/backend/internal/finance"
)

// transactionLineRe matches a line with: date ... description ... amount.
// Groups: (1) date, (2) description, (3) amount, (4) optional CR/DR marker.
var transactionLineRe = regexp.MustCompile(
	`(?i)^` +
		`(\d{1,2}[/\-\.]\d{1,2}[/\-\.]\d{2,4}|\d{4}[/\-]\d{2}[/\-]\d{2}|` +
		`(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2}(?:[,\s]+\d{2,4})?|` +
		`\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?(?:[,\s]+\d{2,4})?)` +
		`\s+(.+?)\s+` +
		`(-?[$£€]?\d{1,3}(?:,\d{3})*\.\d{2}|-?[$£€]?\d+\.\d{2})\s*(CR|DR)?$`,
)

// dateFormats to try when parsing statement dates. Day-first formats win
// over month-first ones.
var dateFormats = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"02.01.2006",
	"2006-01-02",
	"2006/01/02",
	"Jan 02 2006",
	"Jan 2 2006",
	"02 Jan 2006",
	"2 Jan 2006",
	"Jan 02, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"2 January 2006",
	"02/01/06",
	"2/1/06",
}

// ParseStatementLines extracts transactions from plain statement text
// lines. Lines that do not look like a transaction are ignored; lines
// that do but carry an unreadable date or a zero amount are reported as
// skipped.
func ParseStatementLines(lines []string, currency string) *Result {
	res := &Result{}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		m := transactionLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		date, ok := parseFlexibleDate(m[1])
		if !ok {
			res.Skipped = append(res.Skipped, line)
			continue
		}
		amount, isDebit := parseAmount(m[3], m[4])
		if amount <= 0 {
			res.Skipped = append(res.Skipped, line)
			continue
		}

		merchant := NormalizeMerchant(m[2])
		txType := finance.Expense
		if !isDebit {
			txType = finance.Income
		}

		res.Transactions = append(res.Transactions, &finance.Transaction{
			Type:     txType,
			Amount:   amount,
			Category: merchant.Category,
			Date:     date,
			Note:     merchant.Name,
			Currency: currency,
			State:    finance.StateActive,
			Source:   finance.SourceImport,
		})
	}
	return res
}

// parseFlexibleDate tries each known layout in order.
func parseFlexibleDate(s string) (civil.Date, bool) {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Replace(s, ". ", " ", 1)
	for _, layout := range dateFormats {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return civil.DateOf(t), true
	}
	return civil.Date{}, false
}

// parseAmount extracts an absolute amount from a string like "$1,234.56"
// or "-45.00". A leading minus or a CR marker means money came in.
func parseAmount(s, marker string) (float64, bool) {
	s = strings.TrimSpace(s)
	isDebit := !strings.EqualFold(marker, "CR")

	if strings.HasPrefix(s, "-") {
		s = s[1:]
		isDebit = false
	}
	s = strings.NewReplacer("$", "", "£", "", "€", "", ",", "").Replace(s)

	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return amount, isDebit
}
