// Package rpc defines the wire messages and the Connect service surface of
// the finance backend. Messages travel as JSON.
package rpc

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/pfdash/backend/internal/finance"
)

// Transactions

type CreateTransactionRequest struct {
	UserID      string              `json:"userId,omitempty"`
	Transaction finance.Transaction `json:"transaction"`
}

type CreateTransactionResponse struct {
	Transaction *finance.Transaction `json:"transaction"`
}

type GetTransactionRequest struct {
	UserID string `json:"userId,omitempty"`
	ID     string `json:"id"`
}

type GetTransactionResponse struct {
	Transaction *finance.Transaction `json:"transaction"`
}

type UpdateTransactionRequest struct {
	UserID      string              `json:"userId,omitempty"`
	Transaction finance.Transaction `json:"transaction"`
}

type UpdateTransactionResponse struct {
	Transaction *finance.Transaction `json:"transaction"`
}

type DeleteTransactionRequest struct {
	UserID string `json:"userId,omitempty"`
	ID     string `json:"id"`
}

type DeleteTransactionResponse struct{}

type RestoreTransactionRequest struct {
	UserID string `json:"userId,omitempty"`
	ID     string `json:"id"`
}

type RestoreTransactionResponse struct {
	Transaction *finance.Transaction `json:"transaction"`
}

type ListTransactionsRequest struct {
	UserID         string      `json:"userId,omitempty"`
	StartDate      *civil.Date `json:"startDate,omitempty"`
	EndDate        *civil.Date `json:"endDate,omitempty"`
	IncludeDeleted bool        `json:"includeDeleted,omitempty"`
	PageSize       int32       `json:"pageSize,omitempty"`
	PageToken      string      `json:"pageToken,omitempty"`
}

type ListTransactionsResponse struct {
	Transactions  []*finance.Transaction `json:"transactions"`
	NextPageToken string                 `json:"nextPageToken,omitempty"`
}

type WatchTransactionsRequest struct {
	UserID string `json:"userId,omitempty"`
}

// WatchTransactionsResponse carries one full snapshot of the user's
// active transactions.
type WatchTransactionsResponse struct {
	Transactions []*finance.Transaction `json:"transactions"`
}

// Recurring transactions

type PreviewNextOccurrenceRequest struct {
	UserID string `json:"userId,omitempty"`
	ID     string `json:"id"`
}

type PreviewNextOccurrenceResponse struct {
	// Occurrence is nil when the series has no further occurrence.
	Occurrence *finance.Transaction `json:"occurrence,omitempty"`
}

type ProcessRecurringTransactionsRequest struct {
	// UserID limits processing to one user. Scheduler calls may leave it
	// empty to process every user.
	UserID string `json:"userId,omitempty"`
}

type ProcessRecurringTransactionsResponse struct {
	ProcessedCount     int32 `json:"processedCount"`
	SkippedCount       int32 `json:"skippedCount"`
	EndedCount         int32 `json:"endedCount"`
	ErrorCount         int32 `json:"errorCount"`
	OccurrencesCreated int32 `json:"occurrencesCreated"`
}

// Budgets and alerts

type GetBudgetsRequest struct {
	UserID string `json:"userId,omitempty"`
}

type GetBudgetsResponse struct {
	Budgets finance.Budgets `json:"budgets"`
}

type SaveBudgetsRequest struct {
	UserID  string          `json:"userId,omitempty"`
	Budgets finance.Budgets `json:"budgets"`
}

type SaveBudgetsResponse struct {
	Budgets finance.Budgets `json:"budgets"`
}

type GetBudgetAlertsRequest struct {
	UserID string `json:"userId,omitempty"`
	// Month is YYYY-MM; empty means the current month.
	Month string `json:"month,omitempty"`
}

type GetBudgetAlertsResponse struct {
	Month  string                `json:"month"`
	Alerts []finance.BudgetAlert `json:"alerts"`
}

type EvaluateBudgetAlertsRequest struct {
	UserID string `json:"userId,omitempty"`
}

type EvaluateBudgetAlertsResponse struct {
	UsersEvaluated    int32 `json:"usersEvaluated"`
	AlertsRaised      int32 `json:"alertsRaised"`
	NotificationsSent int32 `json:"notificationsSent"`
}

// Goals

type CreateGoalRequest struct {
	UserID string       `json:"userId,omitempty"`
	Goal   finance.Goal `json:"goal"`
}

type CreateGoalResponse struct {
	Goal *finance.Goal `json:"goal"`
}

type ListGoalsRequest struct {
	UserID    string `json:"userId,omitempty"`
	PageSize  int32  `json:"pageSize,omitempty"`
	PageToken string `json:"pageToken,omitempty"`
}

type ListGoalsResponse struct {
	Goals         []*finance.Goal `json:"goals"`
	NextPageToken string          `json:"nextPageToken,omitempty"`
}

type UpdateGoalRequest struct {
	UserID string       `json:"userId,omitempty"`
	Goal   finance.Goal `json:"goal"`
}

type UpdateGoalResponse struct {
	Goal *finance.Goal `json:"goal"`
}

type DeleteGoalRequest struct {
	UserID string `json:"userId,omitempty"`
	ID     string `json:"id"`
}

type DeleteGoalResponse struct{}

// Preferences

type GetPreferencesRequest struct {
	UserID string `json:"userId,omitempty"`
}

type GetPreferencesResponse struct {
	Preferences *finance.Preferences `json:"preferences"`
}

type UpdatePreferencesRequest struct {
	UserID      string              `json:"userId,omitempty"`
	Preferences finance.Preferences `json:"preferences"`
}

type UpdatePreferencesResponse struct {
	Preferences *finance.Preferences `json:"preferences"`
}

type RegisterPushTokenRequest struct {
	UserID string `json:"userId,omitempty"`
	Token  string `json:"token"`
}

type RegisterPushTokenResponse struct{}

// Holdings

type CreateHoldingRequest struct {
	UserID  string          `json:"userId,omitempty"`
	Holding finance.Holding `json:"holding"`
}

type CreateHoldingResponse struct {
	Holding *finance.Holding `json:"holding"`
}

type ListHoldingsRequest struct {
	UserID    string `json:"userId,omitempty"`
	PageSize  int32  `json:"pageSize,omitempty"`
	PageToken string `json:"pageToken,omitempty"`
}

type ListHoldingsResponse struct {
	Holdings      []*finance.Holding `json:"holdings"`
	NextPageToken string             `json:"nextPageToken,omitempty"`
	// NetWorth covers every holding the user owns, not only this page.
	NetWorth float64 `json:"netWorth"`
}

type UpdateHoldingRequest struct {
	UserID  string          `json:"userId,omitempty"`
	Holding finance.Holding `json:"holding"`
}

type UpdateHoldingResponse struct {
	Holding *finance.Holding `json:"holding"`
}

type DeleteHoldingRequest struct {
	UserID string `json:"userId,omitempty"`
	ID     string `json:"id"`
}

type DeleteHoldingResponse struct{}

// Exchange rates

type GetExchangeRatesRequest struct{}

type GetExchangeRatesResponse struct {
	Rates *finance.ExchangeRates `json:"rates"`
}

// Insights

type GetInsightsRequest struct {
	UserID string `json:"userId,omitempty"`
}

type GetInsightsResponse struct {
	Insights []finance.Insight `json:"insights"`
	AsOf     time.Time         `json:"asOf"`
}

// Search

type SearchTransactionsRequest struct {
	UserID    string                  `json:"userId,omitempty"`
	Query     string                  `json:"query"`
	Category  string                  `json:"category,omitempty"`
	Type      finance.TransactionType `json:"type,omitempty"`
	StartDate *civil.Date             `json:"startDate,omitempty"`
	EndDate   *civil.Date             `json:"endDate,omitempty"`
	PageSize  int32                   `json:"pageSize,omitempty"`
	Page      int32                   `json:"page,omitempty"`
}

type SearchTransactionsResponse struct {
	Transactions []*finance.Transaction `json:"transactions"`
	TotalCount   int32                  `json:"totalCount"`
}

// Export and import

type ExportTransactionsRequest struct {
	UserID    string      `json:"userId,omitempty"`
	Format    string      `json:"format"`
	StartDate *civil.Date `json:"startDate,omitempty"`
	EndDate   *civil.Date `json:"endDate,omitempty"`
	// Upload stores the file in the export bucket instead of returning it
	// inline.
	Upload bool `json:"upload,omitempty"`
}

type ExportTransactionsResponse struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data,omitempty"`
	ObjectName  string `json:"objectName,omitempty"`
	RowCount    int32  `json:"rowCount"`
}

type ImportStatementRequest struct {
	UserID   string `json:"userId,omitempty"`
	Format   string `json:"format"`
	Data     []byte `json:"data"`
	Currency string `json:"currency,omitempty"`
	// DryRun parses the statement without saving anything.
	DryRun bool `json:"dryRun,omitempty"`
}

type ImportStatementResponse struct {
	Transactions  []*finance.Transaction `json:"transactions"`
	ImportedCount int32                  `json:"importedCount"`
	SkippedLines  []string               `json:"skippedLines,omitempty"`
}

// Notifications

type ListNotificationsRequest struct {
	UserID     string `json:"userId,omitempty"`
	UnreadOnly bool   `json:"unreadOnly,omitempty"`
	PageSize   int32  `json:"pageSize,omitempty"`
	PageToken  string `json:"pageToken,omitempty"`
}

type ListNotificationsResponse struct {
	Notifications []*finance.Notification `json:"notifications"`
	NextPageToken string                  `json:"nextPageToken,omitempty"`
}

type MarkNotificationReadRequest struct {
	UserID string `json:"userId,omitempty"`
	ID     string `json:"id"`
}

type MarkNotificationReadResponse struct{}
