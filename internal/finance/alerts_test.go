package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDueAlerts(t *testing.T) {
	tests := []struct {
		name    string
		txs     []Transaction
		budgets Budgets
		want    []BudgetAlert
	}{
		{
			name:    "ninety five percent alerts",
			txs:     []Transaction{tx(Expense, 950, "Food", "2024-06-03")},
			budgets: Budgets{"Food": 1000},
			want:    []BudgetAlert{{Category: "Food", PercentSpent: 95, Spent: 950, Limit: 1000}},
		},
		{
			name:    "exactly ninety percent does not alert",
			txs:     []Transaction{tx(Expense, 900, "Food", "2024-06-03")},
			budgets: Budgets{"Food": 1000},
		},
		{
			name:    "just over ninety percent alerts with rounded percent",
			txs:     []Transaction{tx(Expense, 901, "Food", "2024-06-03")},
			budgets: Budgets{"Food": 1000},
			want:    []BudgetAlert{{Category: "Food", PercentSpent: 90, Spent: 901, Limit: 1000}},
		},
		{
			name: "over budget",
			txs: []Transaction{
				tx(Expense, 80, "Fun", "2024-06-03"),
				tx(Expense, 45, "Fun", "2024-06-20"),
			},
			budgets: Budgets{"Fun": 100},
			want:    []BudgetAlert{{Category: "Fun", PercentSpent: 125, Spent: 125, Limit: 100}},
		},
		{
			name:    "zero limit never alerts",
			txs:     []Transaction{tx(Expense, 10, "Food", "2024-06-03")},
			budgets: Budgets{"Food": 0},
		},
		{
			name:    "unbudgeted category never alerts",
			txs:     []Transaction{tx(Expense, 5000, "Travel", "2024-06-03")},
			budgets: Budgets{"Food": 100},
		},
		{
			name: "other months ignored",
			txs: []Transaction{
				tx(Expense, 950, "Food", "2024-05-31"),
				tx(Expense, 950, "Food", "2023-06-10"),
				tx(Expense, 10, "Food", "2024-06-01"),
			},
			budgets: Budgets{"Food": 1000},
		},
		{
			name: "income in a budgeted category ignored",
			txs: []Transaction{
				tx(Income, 950, "Food", "2024-06-03"),
			},
			budgets: Budgets{"Food": 1000},
		},
		{
			name: "no budgets",
			txs:  []Transaction{tx(Expense, 950, "Food", "2024-06-03")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DueAlerts(tt.txs, tt.budgets, "2024-06")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDueAlerts_ExcludesDeleted(t *testing.T) {
	deleted := tx(Expense, 500, "Food", "2024-06-04")
	deleted.State = StateDeleted
	txs := []Transaction{deleted, tx(Expense, 500, "Food", "2024-06-05")}

	assert.Empty(t, DueAlerts(txs, Budgets{"Food": 1000}, "2024-06"))
}

func TestDueAlerts_SortedByCategory(t *testing.T) {
	txs := []Transaction{
		tx(Expense, 99, "Transport", "2024-06-02"),
		tx(Expense, 99, "Food", "2024-06-02"),
		tx(Expense, 99, "Coffee", "2024-06-02"),
	}
	budgets := Budgets{"Transport": 100, "Food": 100, "Coffee": 100, "Rent": 100}

	alerts := DueAlerts(txs, budgets, CurrentMonth(testAsOf))

	require.Len(t, alerts, 3)
	assert.Equal(t, "Coffee", alerts[0].Category)
	assert.Equal(t, "Food", alerts[1].Category)
	assert.Equal(t, "Transport", alerts[2].Category)
	for _, a := range alerts {
		assert.Equal(t, int64(99), a.PercentSpent)
	}
}
