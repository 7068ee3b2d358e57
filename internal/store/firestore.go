package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"cloud.google.com/go/firestore"
	"github.com/pfdash/backend/internal/finance"
	"github.com/pfdash/backend/internal/logger"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection         = "users"
	transactionsCollection  = "transactions"
	goalsCollection         = "goals"
	holdingsCollection      = "holdings"
	notificationsCollection = "notifications"
	settingsCollection      = "settings"
	budgetsDocID            = "budgets"
	preferencesDocID        = "preferences"
	ratesCollection         = "exchangeRates"
	latestRatesDocID        = "latest"
)

// FirestoreStore implements the Store interface using Firestore. Every
// user-owned entity lives under users/{uid}.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{
		client: client,
	}
}

func (s *FirestoreStore) userCollection(userID, collection string) *firestore.CollectionRef {
	return s.client.Collection(usersCollection).Doc(userID).Collection(collection)
}

// notFound maps a Firestore NotFound status onto ErrNotFound.
func notFound(err error, what string) error {
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

// applyDateAwarePagination handles pagination for queries with date range filters.
// Firestore requires OrderBy on inequality fields first, so we use OrderBy("date") + OrderBy(__name__).
// The cursor must include both the date value and the document ID.
func (s *FirestoreStore) applyDateAwarePagination(ctx context.Context, query firestore.Query, coll *firestore.CollectionRef, pageSize int32, pageToken string) (firestore.Query, error) {
	query = query.OrderBy("date", firestore.Asc).OrderBy(firestore.DocumentID, firestore.Asc)

	if pageToken != "" {
		docID, err := DecodePageToken(pageToken)
		if err != nil {
			return query, fmt.Errorf("invalid page token: %w", err)
		}
		cursorDoc, err := coll.Doc(docID).Get(ctx)
		if err != nil {
			return query, fmt.Errorf("failed to fetch cursor document: %w", err)
		}
		query = query.StartAfter(cursorDoc.Data()["date"], docID)
	}

	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	query = query.Limit(int(pageSize) + 1)
	return query, nil
}

// applyCursorPagination adds OrderBy + StartAfter + Limit to a query for cursor-based pagination.
// It fetches pageSize+1 docs so the caller can detect whether a next page exists.
func (s *FirestoreStore) applyCursorPagination(query firestore.Query, pageSize int32, pageToken string) (firestore.Query, error) {
	query = query.OrderBy(firestore.DocumentID, firestore.Asc)

	if pageToken != "" {
		docID, err := DecodePageToken(pageToken)
		if err != nil {
			return query, fmt.Errorf("invalid page token: %w", err)
		}
		query = query.StartAfter(docID)
	}

	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	query = query.Limit(int(pageSize) + 1) // +1 to detect next page
	return query, nil
}

// trimPage cuts an over-fetched result down to pageSize and returns the
// token of the last kept document.
func trimPage(docs []*firestore.DocumentSnapshot, pageSize int32, tokenOf func(*firestore.DocumentSnapshot) string) ([]*firestore.DocumentSnapshot, string) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if len(docs) <= int(pageSize) {
		return docs, ""
	}
	docs = docs[:pageSize]
	return docs, EncodePageToken(tokenOf(docs[pageSize-1]))
}

func docID(doc *firestore.DocumentSnapshot) string { return doc.Ref.ID }

// Transaction operations

func (s *FirestoreStore) CreateTransaction(ctx context.Context, tx *finance.Transaction) error {
	_, err := s.userCollection(tx.UserID, transactionsCollection).Doc(tx.ID).Create(ctx, toTransactionDoc(tx))
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (s *FirestoreStore) GetTransaction(ctx context.Context, userID, transactionID string) (*finance.Transaction, error) {
	doc, err := s.userCollection(userID, transactionsCollection).Doc(transactionID).Get(ctx)
	if err != nil {
		return nil, notFound(err, "transaction "+transactionID)
	}
	return decodeTransaction(doc)
}

func (s *FirestoreStore) UpdateTransaction(ctx context.Context, tx *finance.Transaction) error {
	ref := s.userCollection(tx.UserID, transactionsCollection).Doc(tx.ID)
	if _, err := ref.Get(ctx); err != nil {
		return notFound(err, "transaction "+tx.ID)
	}
	if _, err := ref.Set(ctx, toTransactionDoc(tx)); err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

func (s *FirestoreStore) ListTransactions(ctx context.Context, userID string, opts ListOptions) ([]*finance.Transaction, string, error) {
	coll := s.userCollection(userID, transactionsCollection)
	query := coll.Query

	if opts.StartDate != nil {
		query = query.Where("date", ">=", opts.StartDate.String())
	}
	if opts.EndDate != nil {
		query = query.Where("date", "<=", opts.EndDate.String())
	}

	var err error
	if opts.StartDate != nil || opts.EndDate != nil {
		query, err = s.applyDateAwarePagination(ctx, query, coll, opts.PageSize, opts.PageToken)
	} else {
		query, err = s.applyCursorPagination(query, opts.PageSize, opts.PageToken)
	}
	if err != nil {
		return nil, "", err
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list transactions: %w", err)
	}

	// State is filtered after decoding so rows without a state field stay
	// visible. Pages may come back short; the token still advances.
	docs, nextPageToken := trimPage(docs, opts.PageSize, docID)
	txs, err := decodeTransactions(docs)
	if err != nil {
		return nil, "", err
	}
	if !opts.IncludeDeleted {
		txs = activeOnly(txs)
	}
	return txs, nextPageToken, nil
}

func (s *FirestoreStore) ListRecurringTemplates(ctx context.Context, userID string, pageSize int32, pageToken string) ([]*finance.Transaction, string, error) {
	var query firestore.Query
	if userID != "" {
		query = s.userCollection(userID, transactionsCollection).Query
	} else {
		query = s.client.CollectionGroup(transactionsCollection).Query
	}
	query = query.
		Where("recurring", "==", true).
		Where("superseded", "==", false)

	tokenOf := docID
	if userID != "" {
		var err error
		query, err = s.applyCursorPagination(query, pageSize, pageToken)
		if err != nil {
			return nil, "", err
		}
	} else {
		// Collection group cursors need the full document path.
		query = query.OrderBy(firestore.DocumentID, firestore.Asc)
		if pageToken != "" {
			path, err := DecodePageToken(pageToken)
			if err != nil {
				return nil, "", fmt.Errorf("invalid page token: %w", err)
			}
			query = query.StartAfter(s.client.Doc(path))
		}
		if pageSize <= 0 {
			pageSize = defaultPageSize
		}
		query = query.Limit(int(pageSize) + 1)
		tokenOf = func(doc *firestore.DocumentSnapshot) string {
			return usersCollection + "/" + doc.Ref.Parent.Parent.ID + "/" + transactionsCollection + "/" + doc.Ref.ID
		}
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list recurring templates: %w", err)
	}

	docs, nextPageToken := trimPage(docs, pageSize, tokenOf)
	txs, err := decodeTransactions(docs)
	if err != nil {
		return nil, "", err
	}
	return activeOnly(txs), nextPageToken, nil
}

// WatchTransactions follows the user's transactions collection with a
// Firestore snapshot listener.
func (s *FirestoreStore) WatchTransactions(ctx context.Context, userID string) (<-chan []*finance.Transaction, error) {
	log := logger.FromContext(ctx).With().Str("component", "firestore-watch").Str("user_id", userID).Logger()
	it := s.userCollection(userID, transactionsCollection).
		OrderBy("date", firestore.Desc).
		Snapshots(ctx)

	out := make(chan []*finance.Transaction)
	go func() {
		defer close(out)
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err != nil {
				if errors.Is(err, iterator.Done) || ctx.Err() != nil || status.Code(err) == codes.Canceled {
					return
				}
				log.Error().Err(err).Msg("snapshot listener stopped")
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				log.Error().Err(err).Msg("failed to read snapshot documents")
				return
			}
			txs, err := decodeTransactions(docs)
			if err != nil {
				log.Error().Err(err).Msg("failed to decode snapshot")
				continue
			}

			select {
			case out <- txs:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// Budget operations

func (s *FirestoreStore) GetBudgets(ctx context.Context, userID string) (finance.Budgets, error) {
	doc, err := s.userCollection(userID, settingsCollection).Doc(budgetsDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return finance.Budgets{}, nil
		}
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}

	var bd budgetsDoc
	if err := doc.DataTo(&bd); err != nil {
		return nil, fmt.Errorf("failed to parse budgets: %w", err)
	}
	if bd.Limits == nil {
		bd.Limits = finance.Budgets{}
	}
	return bd.Limits, nil
}

// SaveBudgets replaces the whole budget document.
func (s *FirestoreStore) SaveBudgets(ctx context.Context, userID string, budgets finance.Budgets) error {
	_, err := s.userCollection(userID, settingsCollection).Doc(budgetsDocID).Set(ctx, budgetsDoc{
		Kind:      budgetsDocID,
		Limits:    budgets,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to save budgets: %w", err)
	}
	return nil
}

// ListBudgetUserIDs scans the settings collection group for budget
// documents; the owner is the grandparent of each document.
func (s *FirestoreStore) ListBudgetUserIDs(ctx context.Context) ([]string, error) {
	iter := s.client.CollectionGroup(settingsCollection).Where("kind", "==", budgetsDocID).Documents(ctx)
	defer iter.Stop()

	var userIDs []string
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list budget owners: %w", err)
		}
		if owner := doc.Ref.Parent.Parent; owner != nil {
			userIDs = append(userIDs, owner.ID)
		}
	}
	return userIDs, nil
}

// Goal operations

func (s *FirestoreStore) CreateGoal(ctx context.Context, goal *finance.Goal) error {
	_, err := s.userCollection(goal.UserID, goalsCollection).Doc(goal.ID).Set(ctx, toGoalDoc(goal))
	return err
}

func (s *FirestoreStore) GetGoal(ctx context.Context, userID, goalID string) (*finance.Goal, error) {
	doc, err := s.userCollection(userID, goalsCollection).Doc(goalID).Get(ctx)
	if err != nil {
		return nil, notFound(err, "goal "+goalID)
	}
	return decodeGoal(doc)
}

func (s *FirestoreStore) UpdateGoal(ctx context.Context, goal *finance.Goal) error {
	ref := s.userCollection(goal.UserID, goalsCollection).Doc(goal.ID)
	if _, err := ref.Get(ctx); err != nil {
		return notFound(err, "goal "+goal.ID)
	}
	_, err := ref.Set(ctx, toGoalDoc(goal))
	return err
}

func (s *FirestoreStore) DeleteGoal(ctx context.Context, userID, goalID string) error {
	ref := s.userCollection(userID, goalsCollection).Doc(goalID)
	if _, err := ref.Get(ctx); err != nil {
		return notFound(err, "goal "+goalID)
	}
	_, err := ref.Delete(ctx)
	return err
}

func (s *FirestoreStore) ListGoals(ctx context.Context, userID string, pageSize int32, pageToken string) ([]*finance.Goal, string, error) {
	query, err := s.applyCursorPagination(s.userCollection(userID, goalsCollection).Query, pageSize, pageToken)
	if err != nil {
		return nil, "", err
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list goals: %w", err)
	}

	docs, nextPageToken := trimPage(docs, pageSize, docID)
	goals := make([]*finance.Goal, 0, len(docs))
	for _, doc := range docs {
		goal, err := decodeGoal(doc)
		if err != nil {
			return nil, "", err
		}
		goals = append(goals, goal)
	}
	return goals, nextPageToken, nil
}

// Preference operations

func (s *FirestoreStore) GetPreferences(ctx context.Context, userID string) (*finance.Preferences, error) {
	doc, err := s.userCollection(userID, settingsCollection).Doc(preferencesDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return finance.DefaultPreferences(userID), nil
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	var pd preferencesDoc
	if err := doc.DataTo(&pd); err != nil {
		return nil, fmt.Errorf("failed to parse preferences: %w", err)
	}
	return &finance.Preferences{
		UserID:        userID,
		Currency:      pd.Currency,
		Theme:         pd.Theme,
		AlertsEnabled: pd.AlertsEnabled,
		PushToken:     pd.PushToken,
	}, nil
}

func (s *FirestoreStore) UpdatePreferences(ctx context.Context, prefs *finance.Preferences) error {
	_, err := s.userCollection(prefs.UserID, settingsCollection).Doc(preferencesDocID).Set(ctx, preferencesDoc{
		Currency:      prefs.Currency,
		Theme:         prefs.Theme,
		AlertsEnabled: prefs.AlertsEnabled,
		PushToken:     prefs.PushToken,
	})
	return err
}

// Holding operations

func (s *FirestoreStore) CreateHolding(ctx context.Context, holding *finance.Holding) error {
	_, err := s.userCollection(holding.UserID, holdingsCollection).Doc(holding.ID).Set(ctx, toHoldingDoc(holding))
	return err
}

func (s *FirestoreStore) GetHolding(ctx context.Context, userID, holdingID string) (*finance.Holding, error) {
	doc, err := s.userCollection(userID, holdingsCollection).Doc(holdingID).Get(ctx)
	if err != nil {
		return nil, notFound(err, "holding "+holdingID)
	}
	return decodeHolding(doc)
}

func (s *FirestoreStore) UpdateHolding(ctx context.Context, holding *finance.Holding) error {
	ref := s.userCollection(holding.UserID, holdingsCollection).Doc(holding.ID)
	if _, err := ref.Get(ctx); err != nil {
		return notFound(err, "holding "+holding.ID)
	}
	_, err := ref.Set(ctx, toHoldingDoc(holding))
	return err
}

func (s *FirestoreStore) DeleteHolding(ctx context.Context, userID, holdingID string) error {
	ref := s.userCollection(userID, holdingsCollection).Doc(holdingID)
	if _, err := ref.Get(ctx); err != nil {
		return notFound(err, "holding "+holdingID)
	}
	_, err := ref.Delete(ctx)
	return err
}

func (s *FirestoreStore) ListHoldings(ctx context.Context, userID string, pageSize int32, pageToken string) ([]*finance.Holding, string, error) {
	query, err := s.applyCursorPagination(s.userCollection(userID, holdingsCollection).Query, pageSize, pageToken)
	if err != nil {
		return nil, "", err
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list holdings: %w", err)
	}

	docs, nextPageToken := trimPage(docs, pageSize, docID)
	holdings := make([]*finance.Holding, 0, len(docs))
	for _, doc := range docs {
		h, err := decodeHolding(doc)
		if err != nil {
			return nil, "", err
		}
		holdings = append(holdings, h)
	}
	return holdings, nextPageToken, nil
}

// Exchange rate operations

func (s *FirestoreStore) GetExchangeRates(ctx context.Context) (*finance.ExchangeRates, error) {
	doc, err := s.client.Collection(ratesCollection).Doc(latestRatesDocID).Get(ctx)
	if err != nil {
		return nil, notFound(err, "exchange rates")
	}

	var rd ratesDoc
	if err := doc.DataTo(&rd); err != nil {
		return nil, fmt.Errorf("failed to parse exchange rates: %w", err)
	}
	return &finance.ExchangeRates{Base: rd.Base, Rates: rd.Rates, FetchedAt: rd.FetchedAt}, nil
}

func (s *FirestoreStore) SaveExchangeRates(ctx context.Context, rates *finance.ExchangeRates) error {
	_, err := s.client.Collection(ratesCollection).Doc(latestRatesDocID).Set(ctx, ratesDoc{
		Base:      rates.Base,
		Rates:     rates.Rates,
		FetchedAt: rates.FetchedAt,
	})
	return err
}

// Notification operations

func (s *FirestoreStore) CreateNotification(ctx context.Context, notification *finance.Notification) error {
	_, err := s.userCollection(notification.UserID, notificationsCollection).Doc(notification.ID).Set(ctx, toNotificationDoc(notification))
	return err
}

func (s *FirestoreStore) ListNotifications(ctx context.Context, userID string, unreadOnly bool, pageSize int32, pageToken string) ([]*finance.Notification, string, error) {
	coll := s.userCollection(userID, notificationsCollection)
	query := coll.Query

	if unreadOnly {
		query = query.Where("read", "==", false)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	if pageToken != "" {
		docID, err := DecodePageToken(pageToken)
		if err != nil {
			return nil, "", fmt.Errorf("invalid page token: %w", err)
		}
		cursorDoc, err := coll.Doc(docID).Get(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("invalid page token document: %w", err)
		}
		query = query.StartAfter(cursorDoc.Data()["createdAt"])
	}

	if pageSize <= 0 {
		pageSize = 50
	}
	query = query.Limit(int(pageSize) + 1)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list notifications: %w", err)
	}

	docs, nextPageToken := trimPage(docs, pageSize, docID)
	notifications := make([]*finance.Notification, 0, len(docs))
	for _, doc := range docs {
		var nd notificationDoc
		if err := doc.DataTo(&nd); err != nil {
			return nil, "", fmt.Errorf("failed to parse notification: %w", err)
		}
		notifications = append(notifications, nd.toNotification(userID, doc.Ref.ID))
	}

	return notifications, nextPageToken, nil
}

func (s *FirestoreStore) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	_, err := s.userCollection(userID, notificationsCollection).Doc(notificationID).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
		{Path: "readAt", Value: time.Now()},
	})
	if err != nil {
		return notFound(err, "notification "+notificationID)
	}
	return nil
}

var _ Store = (*FirestoreStore)(nil)

// parseStoredDate reads a YYYY-MM-DD field; an empty string is the zero date.
func parseStoredDate(s string) (civil.Date, error) {
	if s == "" {
		return civil.Date{}, nil
	}
	return civil.ParseDate(s)
}
