package store

import (
	"context"
	"encoding/base64"
	"errors"

	"cloud.google.com/go/civil"
	"github.com/pfdash/backend/internal/finance"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

// ErrNotFound is returned when a requested document does not exist for the
// given user.
var ErrNotFound = errors.New("not found")

const defaultPageSize = 100

// ListOptions filters and pages a transaction listing. Dates are inclusive.
type ListOptions struct {
	StartDate      *civil.Date
	EndDate        *civil.Date
	IncludeDeleted bool
	PageSize       int32
	PageToken      string
}

// Store defines the interface for all database operations used by the service
type Store interface {
	// Transaction operations
	CreateTransaction(ctx context.Context, tx *finance.Transaction) error
	GetTransaction(ctx context.Context, userID, transactionID string) (*finance.Transaction, error)
	UpdateTransaction(ctx context.Context, tx *finance.Transaction) error
	ListTransactions(ctx context.Context, userID string, opts ListOptions) ([]*finance.Transaction, string, error)
	// ListRecurringTemplates returns active templates that have not been
	// superseded by a materialized successor. An empty userID lists
	// templates across all users.
	ListRecurringTemplates(ctx context.Context, userID string, pageSize int32, pageToken string) ([]*finance.Transaction, string, error)
	// WatchTransactions streams the user's full transaction set, once on
	// subscription and again after every change. The channel is closed
	// when ctx ends.
	WatchTransactions(ctx context.Context, userID string) (<-chan []*finance.Transaction, error)

	// Budget operations
	GetBudgets(ctx context.Context, userID string) (finance.Budgets, error)
	SaveBudgets(ctx context.Context, userID string, budgets finance.Budgets) error
	// ListBudgetUserIDs returns every user that has saved a budget.
	ListBudgetUserIDs(ctx context.Context) ([]string, error)

	// Goal operations
	CreateGoal(ctx context.Context, goal *finance.Goal) error
	GetGoal(ctx context.Context, userID, goalID string) (*finance.Goal, error)
	UpdateGoal(ctx context.Context, goal *finance.Goal) error
	DeleteGoal(ctx context.Context, userID, goalID string) error
	ListGoals(ctx context.Context, userID string, pageSize int32, pageToken string) ([]*finance.Goal, string, error)

	// Preference operations
	GetPreferences(ctx context.Context, userID string) (*finance.Preferences, error)
	UpdatePreferences(ctx context.Context, prefs *finance.Preferences) error

	// Holding operations
	CreateHolding(ctx context.Context, holding *finance.Holding) error
	GetHolding(ctx context.Context, userID, holdingID string) (*finance.Holding, error)
	UpdateHolding(ctx context.Context, holding *finance.Holding) error
	DeleteHolding(ctx context.Context, userID, holdingID string) error
	ListHoldings(ctx context.Context, userID string, pageSize int32, pageToken string) ([]*finance.Holding, string, error)

	// Exchange rate operations
	GetExchangeRates(ctx context.Context) (*finance.ExchangeRates, error)
	SaveExchangeRates(ctx context.Context, rates *finance.ExchangeRates) error

	// Notification operations
	CreateNotification(ctx context.Context, notification *finance.Notification) error
	ListNotifications(ctx context.Context, userID string, unreadOnly bool, pageSize int32, pageToken string) ([]*finance.Notification, string, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID string) error
}

// ListAllTransactions drains every page of ListTransactions.
func ListAllTransactions(ctx context.Context, s Store, userID string, opts ListOptions) ([]*finance.Transaction, error) {
	var all []*finance.Transaction
	for {
		page, next, err := s.ListTransactions(ctx, userID, opts)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if next == "" {
			return all, nil
		}
		opts.PageToken = next
	}
}

// EncodePageToken encodes a document ID into a page token.
func EncodePageToken(docID string) string {
	if docID == "" {
		return ""
	}
	return base64.URLEncoding.EncodeToString([]byte(docID))
}

// DecodePageToken decodes a page token back to a document ID.
func DecodePageToken(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
