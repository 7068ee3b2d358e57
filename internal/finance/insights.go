package finance

import (
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/civil"
)

const (
	InsightTopCategory InsightKind = "top-category"
	InsightSavingsRate InsightKind = "savings-rate"
	InsightOverspend   InsightKind = "overspend-warning"
	InsightForecast    InsightKind = "forecast"
)

const (
	// TrailingWindowDays is the length of the window insights look back over.
	TrailingWindowDays = 30

	overspendRatio = 0.8
)

type InsightKind string

// Insight is one line of dashboard text plus the figure it reports.
type Insight struct {
	ID       string      `json:"id"`
	Kind     InsightKind `json:"kind"`
	Text     string      `json:"text"`
	Category string      `json:"category,omitempty"`
	Amount   float64     `json:"amount"`
	Percent  int64       `json:"percent"`
}

// WindowStart returns the first calendar date inside the trailing window
// that ends at asOf.
func WindowStart(asOf time.Time) civil.Date {
	return civil.DateOf(asOf).AddDays(-TrailingWindowDays)
}

// ComputeInsights derives the dashboard insights from a transaction snapshot.
//
// The result is ordered top category, savings rate, overspend warning,
// forecast; only the forecast is always present. Input order matters only
// for breaking ties between equally large categories. Amounts in different
// currencies are summed as raw numbers; prefs.Currency selects the symbol
// used in the text.
func ComputeInsights(txs []Transaction, prefs Preferences, asOf time.Time) []Insight {
	start := WindowStart(asOf)

	var (
		income, expense float64
		order           []string
		byCategory      = make(map[string]float64)
	)
	for _, tx := range txs {
		if !tx.IsActive() || tx.Date.Before(start) {
			continue
		}
		switch tx.Type {
		case Income:
			income += tx.Amount
		case Expense:
			expense += tx.Amount
			if _, seen := byCategory[tx.Category]; !seen {
				order = append(order, tx.Category)
			}
			byCategory[tx.Category] += tx.Amount
		}
	}

	var insights []Insight

	if len(order) > 0 {
		top := order[0]
		for _, category := range order[1:] {
			if byCategory[category] > byCategory[top] {
				top = category
			}
		}
		insights = append(insights, Insight{
			ID:       string(InsightTopCategory),
			Kind:     InsightTopCategory,
			Category: top,
			Amount:   byCategory[top],
			Text: fmt.Sprintf("Your top spending category over the last %d days is %s at %s.",
				TrailingWindowDays, top, FormatMoney(byCategory[top], prefs.Currency)),
		})
	}

	if income != 0 {
		rate := RoundHalfUp(100 * (income - expense) / income)
		insights = append(insights, Insight{
			ID:      string(InsightSavingsRate),
			Kind:    InsightSavingsRate,
			Percent: rate,
			Text:    fmt.Sprintf("Your savings rate over the last %d days is %d%%.", TrailingWindowDays, rate),
		})
	}

	if expense > overspendRatio*income {
		insights = append(insights, Insight{
			ID:   string(InsightOverspend),
			Kind: InsightOverspend,
			Text: "Warning: you have spent more than 80% of your income over the last 30 days.",
		})
	}

	forecast := RoundHalfUp(MonthlyForecast(txs))
	insights = append(insights, Insight{
		ID:     string(InsightForecast),
		Kind:   InsightForecast,
		Amount: float64(forecast),
		Text:   fmt.Sprintf("Forecasted net for next month: %s.", FormatWhole(forecast, prefs.Currency)),
	})

	return insights
}

// MonthlyNets groups every active transaction by calendar month and returns
// each month's income minus expense, keyed by YYYY-MM.
func MonthlyNets(txs []Transaction) map[string]float64 {
	nets := make(map[string]float64)
	for _, tx := range txs {
		if !tx.IsActive() {
			continue
		}
		key := MonthKey(tx.Date)
		switch tx.Type {
		case Income:
			nets[key] += tx.Amount
		case Expense:
			nets[key] -= tx.Amount
		}
	}
	return nets
}

// MonthlyForecast is the unrounded mean of all observed monthly nets, or
// zero when there is no history.
func MonthlyForecast(txs []Transaction) float64 {
	nets := MonthlyNets(txs)
	if len(nets) == 0 {
		return 0
	}
	// Sum in month order so the result does not depend on map iteration.
	keys := make([]string, 0, len(nets))
	for key := range nets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var sum float64
	for _, key := range keys {
		sum += nets[key]
	}
	return sum / float64(len(nets))
}
