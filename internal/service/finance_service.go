package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/pfdash/backend/internal/auth"
	"github.com/pfdash/backend/internal/export"
	"github.com/pfdash/backend/internal/finance"
	"github.com/pfdash/backend/internal/logger"
	"github.com/pfdash/backend/internal/metrics"
	"github.com/pfdash/backend/internal/notify"
	"github.com/pfdash/backend/internal/rpc"
	"github.com/pfdash/backend/internal/search"
	"github.com/pfdash/backend/internal/store"
	"github.com/rs/zerolog"
)

// Notifier raises user-facing notifications.
type Notifier interface {
	BudgetAlert(ctx context.Context, prefs *finance.Preferences, alert finance.BudgetAlert) (*finance.Notification, error)
	ImportComplete(ctx context.Context, prefs *finance.Preferences, imported, skipped int) (*finance.Notification, error)
}

// Searcher answers transaction search queries.
type Searcher interface {
	Search(ctx context.Context, params search.Params) (*search.Result, error)
}

// Indexer mirrors transaction writes into an external search index.
type Indexer interface {
	Index(ctx context.Context, tx *finance.Transaction) error
	Remove(ctx context.Context, transactionID string) error
}

// Uploader stores rendered exports and returns the object name.
type Uploader interface {
	Upload(ctx context.Context, userID string, file *export.File) (string, error)
}

var _ rpc.FinanceServiceHandler = (*FinanceService)(nil)

type FinanceService struct {
	store    store.Store
	notifier Notifier
	searcher Searcher
	indexer  Indexer
	uploader Uploader
	metrics  *metrics.Metrics
	now      func() time.Time
	log      zerolog.Logger
}

type Option func(*FinanceService)

func WithNotifier(n Notifier) Option {
	return func(s *FinanceService) { s.notifier = n }
}

// WithSearch routes searches to an external index and keeps it in sync
// with transaction writes.
func WithSearch(searcher Searcher, indexer Indexer) Option {
	return func(s *FinanceService) {
		s.searcher = searcher
		s.indexer = indexer
	}
}

func WithUploader(u Uploader) Option {
	return func(s *FinanceService) { s.uploader = u }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *FinanceService) { s.metrics = m }
}

// WithClock overrides the instant used as "now" for insights, alerts and
// recurring processing.
func WithClock(now func() time.Time) Option {
	return func(s *FinanceService) { s.now = now }
}

func NewFinanceService(st store.Store, opts ...Option) *FinanceService {
	s := &FinanceService{
		store: st,
		now:   time.Now,
		log:   logger.Component("service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = notify.New(st)
	}
	if s.searcher == nil {
		s.searcher = search.NewStoreScanner(st)
	}
	return s
}

// storeError maps a store failure onto a Connect error.
func storeError(operation string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, auth.WrapStoreError(operation, err))
	}
	return connect.NewError(connect.CodeInternal, auth.WrapStoreError(operation, err))
}

func invalidArgument(err error) error {
	return connect.NewError(connect.CodeInvalidArgument, err)
}

func requireID(id, what string) error {
	if strings.TrimSpace(id) == "" {
		return invalidArgument(fmt.Errorf("%s is required", what))
	}
	return nil
}

// indexTransaction keeps the search index in step with the store. Index
// failures never fail the write.
func (s *FinanceService) indexTransaction(ctx context.Context, tx *finance.Transaction) {
	if s.indexer == nil {
		return
	}
	if err := s.indexer.Index(ctx, tx); err != nil {
		log := logger.FromContext(ctx)
		log.Warn().Err(err).Str("transaction_id", tx.ID).Msg("search index update failed")
	}
}

// Transactions

func (s *FinanceService) CreateTransaction(ctx context.Context, req *connect.Request[rpc.CreateTransactionRequest]) (*connect.Response[rpc.CreateTransactionResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}

	tx := req.Msg.Transaction
	if err := tx.Validate(); err != nil {
		return nil, invalidArgument(err)
	}

	now := s.now()
	tx.ID = uuid.New().String()
	tx.UserID = claims.UID
	tx.State = finance.StateActive
	tx.Currency = strings.ToUpper(tx.Currency)
	if tx.Source == "" {
		tx.Source = finance.SourceManual
	}
	tx.Superseded = false
	tx.CreatedAt = now
	tx.UpdatedAt = now

	if err := s.store.CreateTransaction(ctx, &tx); err != nil {
		return nil, storeError("create transaction", err)
	}
	s.indexTransaction(ctx, &tx)

	return connect.NewResponse(&rpc.CreateTransactionResponse{Transaction: &tx}), nil
}

func (s *FinanceService) GetTransaction(ctx context.Context, req *connect.Request[rpc.GetTransactionRequest]) (*connect.Response[rpc.GetTransactionResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}
	if err := requireID(req.Msg.ID, "transaction id"); err != nil {
		return nil, err
	}

	tx, err := s.store.GetTransaction(ctx, claims.UID, req.Msg.ID)
	if err != nil {
		return nil, storeError("get transaction", err)
	}
	return connect.NewResponse(&rpc.GetTransactionResponse{Transaction: tx}), nil
}

// UpdateTransaction replaces every editable field. Identity, ownership,
// lifecycle and series bookkeeping are kept from the stored row.
func (s *FinanceService) UpdateTransaction(ctx context.Context, req *connect.Request[rpc.UpdateTransactionRequest]) (*connect.Response[rpc.UpdateTransactionResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}

	in := req.Msg.Transaction
	if err := requireID(in.ID, "transaction id"); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, invalidArgument(err)
	}

	existing, err := s.store.GetTransaction(ctx, claims.UID, in.ID)
	if err != nil {
		return nil, storeError("get transaction", err)
	}

	existing.Type = in.Type
	existing.Amount = in.Amount
	existing.Category = in.Category
	existing.Date = in.Date
	existing.Note = in.Note
	existing.Currency = strings.ToUpper(in.Currency)
	existing.Recurrence = in.Recurrence
	existing.UpdatedAt = s.now()

	if err := s.store.UpdateTransaction(ctx, existing); err != nil {
		return nil, storeError("update transaction", err)
	}
	s.indexTransaction(ctx, existing)

	return connect.NewResponse(&rpc.UpdateTransactionResponse{Transaction: existing}), nil
}

// DeleteTransaction is a soft delete: the row stays in the store tagged
// deleted and drops out of every scan.
func (s *FinanceService) DeleteTransaction(ctx context.Context, req *connect.Request[rpc.DeleteTransactionRequest]) (*connect.Response[rpc.DeleteTransactionResponse], error) {
	tx, err := s.setTransactionState(ctx, req.Msg.UserID, req.Msg.ID, finance.StateDeleted)
	if err != nil {
		return nil, err
	}
	s.indexTransaction(ctx, tx)
	return connect.NewResponse(&rpc.DeleteTransactionResponse{}), nil
}

func (s *FinanceService) RestoreTransaction(ctx context.Context, req *connect.Request[rpc.RestoreTransactionRequest]) (*connect.Response[rpc.RestoreTransactionResponse], error) {
	tx, err := s.setTransactionState(ctx, req.Msg.UserID, req.Msg.ID, finance.StateActive)
	if err != nil {
		return nil, err
	}
	s.indexTransaction(ctx, tx)
	return connect.NewResponse(&rpc.RestoreTransactionResponse{Transaction: tx}), nil
}

func (s *FinanceService) setTransactionState(ctx context.Context, userID, id string, state finance.LifecycleState) (*finance.Transaction, error) {
	claims, err := auth.RequireUserAccess(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := requireID(id, "transaction id"); err != nil {
		return nil, err
	}

	tx, err := s.store.GetTransaction(ctx, claims.UID, id)
	if err != nil {
		return nil, storeError("get transaction", err)
	}
	if tx.State == state {
		return tx, nil
	}

	tx.State = state
	tx.UpdatedAt = s.now()
	if err := s.store.UpdateTransaction(ctx, tx); err != nil {
		return nil, storeError("update transaction", err)
	}
	return tx, nil
}

func (s *FinanceService) ListTransactions(ctx context.Context, req *connect.Request[rpc.ListTransactionsRequest]) (*connect.Response[rpc.ListTransactionsResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}

	txs, next, err := s.store.ListTransactions(ctx, claims.UID, store.ListOptions{
		StartDate:      req.Msg.StartDate,
		EndDate:        req.Msg.EndDate,
		IncludeDeleted: req.Msg.IncludeDeleted,
		PageSize:       auth.NormalizePageSize(req.Msg.PageSize),
		PageToken:      req.Msg.PageToken,
	})
	if err != nil {
		return nil, storeError("list transactions", err)
	}

	return connect.NewResponse(&rpc.ListTransactionsResponse{
		Transactions:  txs,
		NextPageToken: next,
	}), nil
}

// WatchTransactions streams a snapshot of the caller's active transactions
// on subscription and after every change, until the client goes away.
func (s *FinanceService) WatchTransactions(ctx context.Context, req *connect.Request[rpc.WatchTransactionsRequest], stream *connect.ServerStream[rpc.WatchTransactionsResponse]) error {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return err
	}

	snapshots, err := s.store.WatchTransactions(ctx, claims.UID)
	if err != nil {
		return storeError("watch transactions", err)
	}

	for snap := range snapshots {
		active := make([]*finance.Transaction, 0, len(snap))
		for _, tx := range snap {
			if tx.IsActive() {
				active = append(active, tx)
			}
		}
		if err := stream.Send(&rpc.WatchTransactionsResponse{Transactions: active}); err != nil {
			return err
		}
	}

	if ctx.Err() != nil {
		return nil
	}
	return connect.NewError(connect.CodeUnavailable, errors.New("transaction watch ended"))
}

// Goals

func (s *FinanceService) CreateGoal(ctx context.Context, req *connect.Request[rpc.CreateGoalRequest]) (*connect.Response[rpc.CreateGoalResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}

	goal := req.Msg.Goal
	if err := goal.Validate(); err != nil {
		return nil, invalidArgument(err)
	}

	now := s.now()
	goal.ID = uuid.New().String()
	goal.UserID = claims.UID
	goal.CreatedAt = now
	goal.UpdatedAt = now

	if err := s.store.CreateGoal(ctx, &goal); err != nil {
		return nil, storeError("create goal", err)
	}
	return connect.NewResponse(&rpc.CreateGoalResponse{Goal: &goal}), nil
}

func (s *FinanceService) ListGoals(ctx context.Context, req *connect.Request[rpc.ListGoalsRequest]) (*connect.Response[rpc.ListGoalsResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}

	goals, next, err := s.store.ListGoals(ctx, claims.UID, auth.NormalizePageSize(req.Msg.PageSize), req.Msg.PageToken)
	if err != nil {
		return nil, storeError("list goals", err)
	}
	return connect.NewResponse(&rpc.ListGoalsResponse{Goals: goals, NextPageToken: next}), nil
}

func (s *FinanceService) UpdateGoal(ctx context.Context, req *connect.Request[rpc.UpdateGoalRequest]) (*connect.Response[rpc.UpdateGoalResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}

	in := req.Msg.Goal
	if err := requireID(in.ID, "goal id"); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, invalidArgument(err)
	}

	goal, err := s.store.GetGoal(ctx, claims.UID, in.ID)
	if err != nil {
		return nil, storeError("get goal", err)
	}
	goal.Name = in.Name
	goal.TargetAmount = in.TargetAmount
	goal.Deadline = in.Deadline
	goal.Progress = in.Progress
	goal.UpdatedAt = s.now()

	if err := s.store.UpdateGoal(ctx, goal); err != nil {
		return nil, storeError("update goal", err)
	}
	return connect.NewResponse(&rpc.UpdateGoalResponse{Goal: goal}), nil
}

func (s *FinanceService) DeleteGoal(ctx context.Context, req *connect.Request[rpc.DeleteGoalRequest]) (*connect.Response[rpc.DeleteGoalResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}
	if err := requireID(req.Msg.ID, "goal id"); err != nil {
		return nil, err
	}

	if err := s.store.DeleteGoal(ctx, claims.UID, req.Msg.ID); err != nil {
		return nil, storeError("delete goal", err)
	}
	return connect.NewResponse(&rpc.DeleteGoalResponse{}), nil
}

// Preferences

func (s *FinanceService) GetPreferences(ctx context.Context, req *connect.Request[rpc.GetPreferencesRequest]) (*connect.Response[rpc.GetPreferencesResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}

	prefs, err := s.store.GetPreferences(ctx, claims.UID)
	if err != nil {
		return nil, storeError("get preferences", err)
	}
	return connect.NewResponse(&rpc.GetPreferencesResponse{Preferences: prefs}), nil
}

// UpdatePreferences saves the user-editable preferences. The push token is
// managed by RegisterPushToken and survives an update.
func (s *FinanceService) UpdatePreferences(ctx context.Context, req *connect.Request[rpc.UpdatePreferencesRequest]) (*connect.Response[rpc.UpdatePreferencesResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}

	in := req.Msg.Preferences
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		return nil, invalidArgument(finance.ErrEmptyCurrency)
	}

	prefs, err := s.store.GetPreferences(ctx, claims.UID)
	if err != nil {
		return nil, storeError("get preferences", err)
	}
	prefs.UserID = claims.UID
	prefs.Currency = currency
	prefs.Theme = in.Theme
	prefs.AlertsEnabled = in.AlertsEnabled

	if err := s.store.UpdatePreferences(ctx, prefs); err != nil {
		return nil, storeError("update preferences", err)
	}
	return connect.NewResponse(&rpc.UpdatePreferencesResponse{Preferences: prefs}), nil
}

// Holdings

func (s *FinanceService) CreateHolding(ctx context.Context, req *connect.Request[rpc.CreateHoldingRequest]) (*connect.Response[rpc.CreateHoldingResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}

	h := req.Msg.Holding
	if err := h.Validate(); err != nil {
		return nil, invalidArgument(err)
	}

	now := s.now()
	h.ID = uuid.New().String()
	h.UserID = claims.UID
	h.Symbol = strings.ToUpper(strings.TrimSpace(h.Symbol))
	h.CreatedAt = now
	h.UpdatedAt = now

	if err := s.store.CreateHolding(ctx, &h); err != nil {
		return nil, storeError("create holding", err)
	}
	return connect.NewResponse(&rpc.CreateHoldingResponse{Holding: &h}), nil
}

// ListHoldings returns one page of holdings plus the net worth over all of
// them.
func (s *FinanceService) ListHoldings(ctx context.Context, req *connect.Request[rpc.ListHoldingsRequest]) (*connect.Response[rpc.ListHoldingsResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}

	page, next, err := s.store.ListHoldings(ctx, claims.UID, auth.NormalizePageSize(req.Msg.PageSize), req.Msg.PageToken)
	if err != nil {
		return nil, storeError("list holdings", err)
	}

	var all []finance.Holding
	token := ""
	for {
		batch, nextToken, err := s.store.ListHoldings(ctx, claims.UID, 1000, token)
		if err != nil {
			return nil, storeError("list holdings", err)
		}
		for _, h := range batch {
			all = append(all, *h)
		}
		if nextToken == "" {
			break
		}
		token = nextToken
	}

	return connect.NewResponse(&rpc.ListHoldingsResponse{
		Holdings:      page,
		NextPageToken: next,
		NetWorth:      finance.NetWorth(all),
	}), nil
}

func (s *FinanceService) UpdateHolding(ctx context.Context, req *connect.Request[rpc.UpdateHoldingRequest]) (*connect.Response[rpc.UpdateHoldingResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}

	in := req.Msg.Holding
	if err := requireID(in.ID, "holding id"); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, invalidArgument(err)
	}

	h, err := s.store.GetHolding(ctx, claims.UID, in.ID)
	if err != nil {
		return nil, storeError("get holding", err)
	}
	h.Symbol = strings.ToUpper(strings.TrimSpace(in.Symbol))
	h.Quantity = in.Quantity
	h.AveragePrice = in.AveragePrice
	h.CurrentPrice = in.CurrentPrice
	h.UpdatedAt = s.now()

	if err := s.store.UpdateHolding(ctx, h); err != nil {
		return nil, storeError("update holding", err)
	}
	return connect.NewResponse(&rpc.UpdateHoldingResponse{Holding: h}), nil
}

func (s *FinanceService) DeleteHolding(ctx context.Context, req *connect.Request[rpc.DeleteHoldingRequest]) (*connect.Response[rpc.DeleteHoldingResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}
	if err := requireID(req.Msg.ID, "holding id"); err != nil {
		return nil, err
	}

	if err := s.store.DeleteHolding(ctx, claims.UID, req.Msg.ID); err != nil {
		return nil, storeError("delete holding", err)
	}
	return connect.NewResponse(&rpc.DeleteHoldingResponse{}), nil
}

// Exchange rates

func (s *FinanceService) GetExchangeRates(ctx context.Context, req *connect.Request[rpc.GetExchangeRatesRequest]) (*connect.Response[rpc.GetExchangeRatesResponse], error) {
	if _, err := auth.RequireAuth(ctx); err != nil {
		return nil, err
	}

	rates, err := s.store.GetExchangeRates(ctx)
	if err != nil {
		return nil, storeError("get exchange rates", err)
	}
	return connect.NewResponse(&rpc.GetExchangeRatesResponse{Rates: rates}), nil
}

// Insights

// GetInsights evaluates the insight engine over the caller's full active
// transaction set at the service clock's current instant.
func (s *FinanceService) GetInsights(ctx context.Context, req *connect.Request[rpc.GetInsightsRequest]) (*connect.Response[rpc.GetInsightsResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}

	prefs, err := s.store.GetPreferences(ctx, claims.UID)
	if err != nil {
		return nil, storeError("get preferences", err)
	}
	txs, err := s.activeTransactions(ctx, claims.UID, store.ListOptions{})
	if err != nil {
		return nil, err
	}

	asOf := s.now()
	return connect.NewResponse(&rpc.GetInsightsResponse{
		Insights: finance.ComputeInsights(txs, *prefs, asOf),
		AsOf:     asOf,
	}), nil
}

// activeTransactions loads every active transaction matching opts as
// values, the shape the finance computations take.
func (s *FinanceService) activeTransactions(ctx context.Context, userID string, opts store.ListOptions) ([]finance.Transaction, error) {
	opts.IncludeDeleted = false
	opts.PageSize = 1000
	rows, err := store.ListAllTransactions(ctx, s.store, userID, opts)
	if err != nil {
		return nil, storeError("list transactions", err)
	}
	txs := make([]finance.Transaction, 0, len(rows))
	for _, tx := range rows {
		txs = append(txs, *tx)
	}
	sortNewestFirst(txs)
	return txs, nil
}

// sortNewestFirst orders rows by date descending, then ID. Insight
// tie-breaks depend on this order.
func sortNewestFirst(txs []finance.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if txs[i].Date != txs[j].Date {
			return txs[i].Date.After(txs[j].Date)
		}
		return txs[i].ID < txs[j].ID
	})
}
