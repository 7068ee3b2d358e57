package search

import (
	"context"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/pfdash/backend/internal/finance"
	"github.com/pfdash/backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	require.NoError(t, err)
	return d
}

func seed(t *testing.T, st store.Store, userID string, txs ...finance.Transaction) {
	t.Helper()
	for i := range txs {
		tx := txs[i]
		tx.UserID = userID
		if tx.State == "" {
			tx.State = finance.StateActive
		}
		require.NoError(t, st.CreateTransaction(context.Background(), &tx))
	}
}

func TestBuildFilters(t *testing.T) {
	start := civil.Date{Year: 2024, Month: 1, Day: 1}
	end := civil.Date{Year: 2024, Month: 1, Day: 31}

	tests := []struct {
		name   string
		params Params
		want   string
	}{
		{
			name:   "user only",
			params: Params{UserID: "u1"},
			want:   `UserId:"u1"`,
		},
		{
			name:   "category and type",
			params: Params{UserID: "u1", Category: "Food", Type: finance.Expense},
			want:   `UserId:"u1" AND Category:"Food" AND Type:"expense"`,
		},
		{
			name:   "date range",
			params: Params{UserID: "u1", StartDate: &start, EndDate: &end},
			want:   `UserId:"u1" AND DateUnix >= 1704067200 AND DateUnix <= 1706659200`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildFilters(tt.params))
		})
	}
}

func TestHitToTransaction(t *testing.T) {
	tx := hitToTransaction(map[string]any{
		"objectID": "tx-1",
		"Note":     "Weekly groceries",
		"Category": "Food",
		"Amount":   42.5,
		"Currency": "EUR",
		"Date":     "2024-03-09",
		"Type":     "Expense",
	}, "u1")
	require.NotNil(t, tx)
	assert.Equal(t, "tx-1", tx.ID)
	assert.Equal(t, "u1", tx.UserID)
	assert.Equal(t, finance.Expense, tx.Type)
	assert.Equal(t, 42.5, tx.Amount)
	assert.Equal(t, civil.Date{Year: 2024, Month: 3, Day: 9}, tx.Date)
	assert.True(t, tx.IsActive())

	assert.Nil(t, hitToTransaction(map[string]any{"Note": "orphan"}, "u1"))
}

func TestToRecord(t *testing.T) {
	rec := toRecord(&finance.Transaction{
		ID: "tx-1", UserID: "u1", Type: finance.Income, Amount: 10,
		Category: "Salary", Date: civil.Date{Year: 2024, Month: 1, Day: 1}, Currency: "USD",
	})
	assert.Equal(t, "tx-1", rec["objectID"])
	assert.Equal(t, "u1", rec["UserId"])
	assert.Equal(t, "2024-01-01", rec["Date"])
	assert.Equal(t, int64(1704067200), rec["DateUnix"])
	assert.Equal(t, "income", rec["Type"])
}

func TestStoreScanner_Search(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	seed(t, st, "u1",
		finance.Transaction{ID: "a", Type: finance.Expense, Amount: 12, Category: "Food", Note: "Corner Bakery", Date: mustDate(t, "2024-05-01"), Currency: "USD"},
		finance.Transaction{ID: "b", Type: finance.Expense, Amount: 30, Category: "Transport", Note: "bakery run taxi", Date: mustDate(t, "2024-05-03"), Currency: "USD"},
		finance.Transaction{ID: "c", Type: finance.Income, Amount: 900, Category: "Salary", Date: mustDate(t, "2024-05-02"), Currency: "USD"},
		finance.Transaction{ID: "d", Type: finance.Expense, Amount: 5, Category: "Food", Note: "bakery", Date: mustDate(t, "2024-05-04"), Currency: "USD", State: finance.StateDeleted},
	)
	seed(t, st, "u2",
		finance.Transaction{ID: "e", Type: finance.Expense, Amount: 7, Category: "Food", Note: "bakery", Date: mustDate(t, "2024-05-05"), Currency: "USD"},
	)

	scanner := NewStoreScanner(st)

	t.Run("query matches note case-insensitively, newest first", func(t *testing.T) {
		res, err := scanner.Search(ctx, Params{UserID: "u1", Query: "BAKERY"})
		require.NoError(t, err)
		require.Len(t, res.Transactions, 2)
		assert.Equal(t, "b", res.Transactions[0].ID)
		assert.Equal(t, "a", res.Transactions[1].ID)
		assert.Equal(t, 2, res.TotalCount)
	})

	t.Run("query matches category", func(t *testing.T) {
		res, err := scanner.Search(ctx, Params{UserID: "u1", Query: "salary"})
		require.NoError(t, err)
		require.Len(t, res.Transactions, 1)
		assert.Equal(t, "c", res.Transactions[0].ID)
	})

	t.Run("filters by type and category", func(t *testing.T) {
		res, err := scanner.Search(ctx, Params{UserID: "u1", Category: "food", Type: finance.Expense})
		require.NoError(t, err)
		require.Len(t, res.Transactions, 1)
		assert.Equal(t, "a", res.Transactions[0].ID)
	})

	t.Run("date range", func(t *testing.T) {
		start := mustDate(t, "2024-05-02")
		end := mustDate(t, "2024-05-02")
		res, err := scanner.Search(ctx, Params{UserID: "u1", StartDate: &start, EndDate: &end})
		require.NoError(t, err)
		require.Len(t, res.Transactions, 1)
		assert.Equal(t, "c", res.Transactions[0].ID)
	})

	t.Run("pagination", func(t *testing.T) {
		res, err := scanner.Search(ctx, Params{UserID: "u1", PageSize: 2, Page: 1})
		require.NoError(t, err)
		assert.Equal(t, 3, res.TotalCount)
		assert.Equal(t, 2, res.TotalPages)
		require.Len(t, res.Transactions, 1)
		assert.Equal(t, "a", res.Transactions[0].ID)

		res, err = scanner.Search(ctx, Params{UserID: "u1", PageSize: 2, Page: 5})
		require.NoError(t, err)
		assert.Empty(t, res.Transactions)
	})
}
