package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pfdash/backend/internal/finance"
)

// MemoryStore implements Store interface with in-memory storage
type MemoryStore struct {
	mu sync.RWMutex

	// Storage maps, keyed by document ID
	transactions  map[string]*finance.Transaction
	goals         map[string]*finance.Goal
	holdings      map[string]*finance.Holding
	notifications map[string]*finance.Notification

	// Keyed by user ID
	budgets     map[string]finance.Budgets
	preferences map[string]*finance.Preferences

	rates *finance.ExchangeRates

	watchers map[string][]chan []*finance.Transaction
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		transactions:  make(map[string]*finance.Transaction),
		goals:         make(map[string]*finance.Goal),
		holdings:      make(map[string]*finance.Holding),
		notifications: make(map[string]*finance.Notification),
		budgets:       make(map[string]finance.Budgets),
		preferences:   make(map[string]*finance.Preferences),
		watchers:      make(map[string][]chan []*finance.Transaction),
	}
}

// paginateIDs applies cursor-based pagination to a sorted slice of IDs.
// Returns the paginated IDs and the next page token (empty if no more pages).
func paginateIDs(ids []string, pageSize int32, pageToken string) ([]string, string) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	sort.Strings(ids)

	// Find cursor position
	if pageToken != "" {
		cursorID, err := DecodePageToken(pageToken)
		if err == nil {
			idx := sort.SearchStrings(ids, cursorID)
			if idx < len(ids) && ids[idx] == cursorID {
				idx++
			}
			ids = ids[idx:]
		}
	}

	var nextToken string
	if int32(len(ids)) > pageSize {
		nextToken = EncodePageToken(ids[pageSize-1])
		ids = ids[:pageSize]
	}

	return ids, nextToken
}

func cloneTransaction(tx *finance.Transaction) *finance.Transaction {
	out := *tx
	if tx.Recurrence != nil {
		rule := *tx.Recurrence
		if rule.EndDate != nil {
			end := *rule.EndDate
			rule.EndDate = &end
		}
		out.Recurrence = &rule
	}
	return &out
}

// Transaction operations

func (m *MemoryStore) CreateTransaction(ctx context.Context, tx *finance.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if _, exists := m.transactions[tx.ID]; exists {
		return fmt.Errorf("transaction already exists: %s", tx.ID)
	}

	m.transactions[tx.ID] = cloneTransaction(tx)
	m.notifyWatchersLocked(tx.UserID)
	return nil
}

func (m *MemoryStore) GetTransaction(ctx context.Context, userID, transactionID string) (*finance.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tx, ok := m.transactions[transactionID]
	if !ok || tx.UserID != userID {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, ErrNotFound)
	}

	return cloneTransaction(tx), nil
}

func (m *MemoryStore) UpdateTransaction(ctx context.Context, tx *finance.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.transactions[tx.ID]
	if !ok || existing.UserID != tx.UserID {
		return fmt.Errorf("transaction %s: %w", tx.ID, ErrNotFound)
	}

	m.transactions[tx.ID] = cloneTransaction(tx)
	m.notifyWatchersLocked(tx.UserID)
	return nil
}

func (m *MemoryStore) ListTransactions(ctx context.Context, userID string, opts ListOptions) ([]*finance.Transaction, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matchingIDs []string
	for id, tx := range m.transactions {
		if tx.UserID != userID {
			continue
		}
		if !opts.IncludeDeleted && !tx.IsActive() {
			continue
		}
		if opts.StartDate != nil && tx.Date.Before(*opts.StartDate) {
			continue
		}
		if opts.EndDate != nil && tx.Date.After(*opts.EndDate) {
			continue
		}
		matchingIDs = append(matchingIDs, id)
	}

	paginatedIDs, nextToken := paginateIDs(matchingIDs, opts.PageSize, opts.PageToken)
	result := make([]*finance.Transaction, 0, len(paginatedIDs))
	for _, id := range paginatedIDs {
		result = append(result, cloneTransaction(m.transactions[id]))
	}

	return result, nextToken, nil
}

func (m *MemoryStore) ListRecurringTemplates(ctx context.Context, userID string, pageSize int32, pageToken string) ([]*finance.Transaction, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matchingIDs []string
	for id, tx := range m.transactions {
		if userID != "" && tx.UserID != userID {
			continue
		}
		if !tx.IsRecurring() || !tx.IsActive() || tx.Superseded {
			continue
		}
		matchingIDs = append(matchingIDs, id)
	}

	paginatedIDs, nextToken := paginateIDs(matchingIDs, pageSize, pageToken)
	result := make([]*finance.Transaction, 0, len(paginatedIDs))
	for _, id := range paginatedIDs {
		result = append(result, cloneTransaction(m.transactions[id]))
	}

	return result, nextToken, nil
}

func (m *MemoryStore) WatchTransactions(ctx context.Context, userID string) (<-chan []*finance.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan []*finance.Transaction, 1)
	ch <- m.snapshotLocked(userID)
	m.watchers[userID] = append(m.watchers[userID], ch)

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()

		subs := m.watchers[userID]
		for i, sub := range subs {
			if sub == ch {
				m.watchers[userID] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
		if len(m.watchers[userID]) == 0 {
			delete(m.watchers, userID)
		}
		close(ch)
	}()

	return ch, nil
}

// snapshotLocked returns every transaction the user owns, newest first.
// Callers must hold m.mu.
func (m *MemoryStore) snapshotLocked(userID string) []*finance.Transaction {
	var snap []*finance.Transaction
	for _, tx := range m.transactions {
		if tx.UserID == userID {
			snap = append(snap, cloneTransaction(tx))
		}
	}
	sort.Slice(snap, func(i, j int) bool {
		if snap[i].Date != snap[j].Date {
			return snap[i].Date.After(snap[j].Date)
		}
		return snap[i].ID < snap[j].ID
	})
	return snap
}

// notifyWatchersLocked pushes a fresh snapshot to every subscriber of the
// user. A subscriber that has not consumed the previous snapshot only ever
// sees the latest one. Callers must hold m.mu for writing.
func (m *MemoryStore) notifyWatchersLocked(userID string) {
	subs := m.watchers[userID]
	if len(subs) == 0 {
		return
	}
	for _, ch := range subs {
		snap := m.snapshotLocked(userID)
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}

// Budget operations

func (m *MemoryStore) GetBudgets(ctx context.Context, userID string) (finance.Budgets, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(finance.Budgets, len(m.budgets[userID]))
	for category, limit := range m.budgets[userID] {
		out[category] = limit
	}
	return out, nil
}

func (m *MemoryStore) SaveBudgets(ctx context.Context, userID string, budgets finance.Budgets) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	replaced := make(finance.Budgets, len(budgets))
	for category, limit := range budgets {
		replaced[category] = limit
	}
	m.budgets[userID] = replaced
	return nil
}

func (m *MemoryStore) ListBudgetUserIDs(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	userIDs := make([]string, 0, len(m.budgets))
	for userID := range m.budgets {
		userIDs = append(userIDs, userID)
	}
	sort.Strings(userIDs)
	return userIDs, nil
}

// Goal operations

func (m *MemoryStore) CreateGoal(ctx context.Context, goal *finance.Goal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}

	g := *goal
	m.goals[goal.ID] = &g
	return nil
}

func (m *MemoryStore) GetGoal(ctx context.Context, userID, goalID string) (*finance.Goal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	goal, ok := m.goals[goalID]
	if !ok || goal.UserID != userID {
		return nil, fmt.Errorf("goal %s: %w", goalID, ErrNotFound)
	}

	g := *goal
	return &g, nil
}

func (m *MemoryStore) UpdateGoal(ctx context.Context, goal *finance.Goal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.goals[goal.ID]
	if !ok || existing.UserID != goal.UserID {
		return fmt.Errorf("goal %s: %w", goal.ID, ErrNotFound)
	}

	g := *goal
	m.goals[goal.ID] = &g
	return nil
}

func (m *MemoryStore) DeleteGoal(ctx context.Context, userID, goalID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	goal, ok := m.goals[goalID]
	if !ok || goal.UserID != userID {
		return fmt.Errorf("goal %s: %w", goalID, ErrNotFound)
	}

	delete(m.goals, goalID)
	return nil
}

func (m *MemoryStore) ListGoals(ctx context.Context, userID string, pageSize int32, pageToken string) ([]*finance.Goal, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matchingIDs []string
	for id, goal := range m.goals {
		if goal.UserID == userID {
			matchingIDs = append(matchingIDs, id)
		}
	}

	paginatedIDs, nextToken := paginateIDs(matchingIDs, pageSize, pageToken)
	result := make([]*finance.Goal, 0, len(paginatedIDs))
	for _, id := range paginatedIDs {
		g := *m.goals[id]
		result = append(result, &g)
	}

	return result, nextToken, nil
}

// Preference operations

func (m *MemoryStore) GetPreferences(ctx context.Context, userID string) (*finance.Preferences, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	prefs, ok := m.preferences[userID]
	if !ok {
		return finance.DefaultPreferences(userID), nil
	}

	p := *prefs
	return &p, nil
}

func (m *MemoryStore) UpdatePreferences(ctx context.Context, prefs *finance.Preferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := *prefs
	m.preferences[prefs.UserID] = &p
	return nil
}

// Holding operations

func (m *MemoryStore) CreateHolding(ctx context.Context, holding *finance.Holding) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if holding.ID == "" {
		holding.ID = uuid.New().String()
	}

	h := *holding
	m.holdings[holding.ID] = &h
	return nil
}

func (m *MemoryStore) GetHolding(ctx context.Context, userID, holdingID string) (*finance.Holding, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	holding, ok := m.holdings[holdingID]
	if !ok || holding.UserID != userID {
		return nil, fmt.Errorf("holding %s: %w", holdingID, ErrNotFound)
	}

	h := *holding
	return &h, nil
}

func (m *MemoryStore) UpdateHolding(ctx context.Context, holding *finance.Holding) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.holdings[holding.ID]
	if !ok || existing.UserID != holding.UserID {
		return fmt.Errorf("holding %s: %w", holding.ID, ErrNotFound)
	}

	h := *holding
	m.holdings[holding.ID] = &h
	return nil
}

func (m *MemoryStore) DeleteHolding(ctx context.Context, userID, holdingID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	holding, ok := m.holdings[holdingID]
	if !ok || holding.UserID != userID {
		return fmt.Errorf("holding %s: %w", holdingID, ErrNotFound)
	}

	delete(m.holdings, holdingID)
	return nil
}

func (m *MemoryStore) ListHoldings(ctx context.Context, userID string, pageSize int32, pageToken string) ([]*finance.Holding, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matchingIDs []string
	for id, holding := range m.holdings {
		if holding.UserID == userID {
			matchingIDs = append(matchingIDs, id)
		}
	}

	paginatedIDs, nextToken := paginateIDs(matchingIDs, pageSize, pageToken)
	result := make([]*finance.Holding, 0, len(paginatedIDs))
	for _, id := range paginatedIDs {
		h := *m.holdings[id]
		result = append(result, &h)
	}

	return result, nextToken, nil
}

// Exchange rate operations

func (m *MemoryStore) GetExchangeRates(ctx context.Context) (*finance.ExchangeRates, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.rates == nil {
		return nil, fmt.Errorf("exchange rates: %w", ErrNotFound)
	}

	return cloneRates(m.rates), nil
}

func (m *MemoryStore) SaveExchangeRates(ctx context.Context, rates *finance.ExchangeRates) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rates = cloneRates(rates)
	return nil
}

func cloneRates(r *finance.ExchangeRates) *finance.ExchangeRates {
	out := *r
	out.Rates = make(map[string]float64, len(r.Rates))
	for code, rate := range r.Rates {
		out.Rates[code] = rate
	}
	return &out
}

// Notification operations

func (m *MemoryStore) CreateNotification(ctx context.Context, notification *finance.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}

	n := *notification
	m.notifications[notification.ID] = &n
	return nil
}

func (m *MemoryStore) ListNotifications(ctx context.Context, userID string, unreadOnly bool, pageSize int32, pageToken string) ([]*finance.Notification, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matchingIDs []string
	for id, n := range m.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		matchingIDs = append(matchingIDs, id)
	}

	paginatedIDs, nextToken := paginateIDs(matchingIDs, pageSize, pageToken)
	result := make([]*finance.Notification, 0, len(paginatedIDs))
	for _, id := range paginatedIDs {
		n := *m.notifications[id]
		result = append(result, &n)
	}

	return result, nextToken, nil
}

func (m *MemoryStore) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.notifications[notificationID]
	if !ok || n.UserID != userID {
		return fmt.Errorf("notification %s: %w", notificationID, ErrNotFound)
	}

	now := time.Now()
	n.Read = true
	n.ReadAt = &now
	return nil
}

var _ Store = (*MemoryStore)(nil)
