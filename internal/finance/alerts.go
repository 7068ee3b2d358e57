package finance

import (
	"sort"
	"strings"
)

// AlertThreshold is the share of a budget that must be exceeded before an
// alert is raised.
const AlertThreshold = 0.9

// BudgetAlert reports a category whose spending this month is close to or
// over its limit.
type BudgetAlert struct {
	Category     string  `json:"category"`
	PercentSpent int64   `json:"percentSpent"`
	Spent        float64 `json:"spent"`
	Limit        float64 `json:"limit"`
}

// DueAlerts returns one alert per budgeted category whose expense total for
// currentMonth (YYYY-MM) is strictly above AlertThreshold of its limit.
// Categories without a budget, and budgets with a zero or negative limit,
// never alert. Alerts are ordered by category name.
func DueAlerts(txs []Transaction, budgets Budgets, currentMonth string) []BudgetAlert {
	if len(budgets) == 0 {
		return nil
	}

	spent := make(map[string]float64, len(budgets))
	for _, tx := range txs {
		if !tx.IsActive() || tx.Type != Expense {
			continue
		}
		if _, budgeted := budgets[tx.Category]; !budgeted {
			continue
		}
		if !strings.HasPrefix(tx.Date.String(), currentMonth) {
			continue
		}
		spent[tx.Category] += tx.Amount
	}

	categories := make([]string, 0, len(budgets))
	for category := range budgets {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var alerts []BudgetAlert
	for _, category := range categories {
		limit := budgets[category]
		if limit <= 0 {
			continue
		}
		ratio := spent[category] / limit
		if ratio <= AlertThreshold {
			continue
		}
		alerts = append(alerts, BudgetAlert{
			Category:     category,
			PercentSpent: RoundHalfUp(spent[category] * 100 / limit),
			Spent:        spent[category],
			Limit:        limit,
		})
	}
	return alerts
}
