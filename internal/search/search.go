// Package search finds a user's transactions by free text. Algolia serves
// the query when configured; StoreScanner answers the same queries from a
// store snapshot otherwise.
package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/pfdash/backend/internal/finance"
	"github.com/pfdash/backend/internal/store"
)

const (
	defaultPageSize = 25
	maxPageSize     = 100
)

// Params defines the input for a transaction search.
type Params struct {
	Query     string
	UserID    string
	Category  string
	Type      finance.TransactionType
	StartDate *civil.Date
	EndDate   *civil.Date
	// Pagination (offset-based, zero-indexed pages)
	Page     int
	PageSize int
}

// Result holds one page of matches.
type Result struct {
	Transactions []*finance.Transaction
	TotalCount   int
	TotalPages   int
	Page         int
}

func (p Params) normalized() Params {
	if p.PageSize <= 0 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	if p.Page < 0 {
		p.Page = 0
	}
	return p
}

// StoreScanner searches by loading the user's active transactions and
// matching them in memory.
type StoreScanner struct {
	store store.Store
}

func NewStoreScanner(st store.Store) *StoreScanner {
	return &StoreScanner{store: st}
}

// Search matches the query case-insensitively against note and category.
// Results are ordered newest first.
func (s *StoreScanner) Search(ctx context.Context, params Params) (*Result, error) {
	params = params.normalized()

	txs, err := store.ListAllTransactions(ctx, s.store, params.UserID, store.ListOptions{
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("scan transactions: %w", err)
	}

	var matched []*finance.Transaction
	for _, tx := range txs {
		if matches(tx, params) {
			matched = append(matched, tx)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)
	start := params.Page * params.PageSize
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}

	return &Result{
		Transactions: matched[start:end],
		TotalCount:   total,
		TotalPages:   (total + params.PageSize - 1) / params.PageSize,
		Page:         params.Page,
	}, nil
}

func matches(tx *finance.Transaction, params Params) bool {
	if !tx.IsActive() {
		return false
	}
	if params.Category != "" && !strings.EqualFold(tx.Category, params.Category) {
		return false
	}
	if params.Type != "" && tx.Type != params.Type {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(params.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(tx.Note), q) ||
		strings.Contains(strings.ToLower(tx.Category), q)
}
