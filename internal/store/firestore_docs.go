package store

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"cloud.google.com/go/firestore"
	"github.com/pfdash/backend/internal/finance"
)

// Document shapes as stored in Firestore. Calendar dates are kept as
// YYYY-MM-DD strings so range filters compare lexically.

type transactionDoc struct {
	UserID     string    `firestore:"userId"`
	Type       string    `firestore:"type"`
	Amount     float64   `firestore:"amount"`
	Category   string    `firestore:"category"`
	Date       string    `firestore:"date"`
	Note       string    `firestore:"note,omitempty"`
	Currency   string    `firestore:"currency"`
	Recurring  bool      `firestore:"recurring"`
	Interval   string    `firestore:"interval,omitempty"`
	EndDate    string    `firestore:"endDate,omitempty"`
	State      string    `firestore:"state"`
	Source     string    `firestore:"source,omitempty"`
	SeriesID   string    `firestore:"seriesId,omitempty"`
	Superseded bool      `firestore:"superseded"`
	CreatedAt  time.Time `firestore:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt"`
}

type budgetsDoc struct {
	Kind      string             `firestore:"kind"`
	Limits    map[string]float64 `firestore:"limits"`
	UpdatedAt time.Time          `firestore:"updatedAt"`
}

type goalDoc struct {
	UserID       string    `firestore:"userId"`
	Name         string    `firestore:"name"`
	TargetAmount float64   `firestore:"targetAmount"`
	Deadline     string    `firestore:"deadline"`
	Progress     float64   `firestore:"progress"`
	CreatedAt    time.Time `firestore:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt"`
}

type preferencesDoc struct {
	Currency      string `firestore:"currency"`
	Theme         string `firestore:"theme"`
	AlertsEnabled bool   `firestore:"alertsEnabled"`
	PushToken     string `firestore:"pushToken,omitempty"`
}

type holdingDoc struct {
	UserID       string    `firestore:"userId"`
	Symbol       string    `firestore:"symbol"`
	Quantity     float64   `firestore:"quantity"`
	AveragePrice float64   `firestore:"averagePrice"`
	CurrentPrice *float64  `firestore:"currentPrice"`
	CreatedAt    time.Time `firestore:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt"`
}

type ratesDoc struct {
	Base      string             `firestore:"base"`
	Rates     map[string]float64 `firestore:"rates"`
	FetchedAt time.Time          `firestore:"fetchedAt"`
}

type notificationDoc struct {
	Kind        string     `firestore:"kind"`
	Title       string     `firestore:"title"`
	Message     string     `firestore:"message"`
	ReferenceID string     `firestore:"referenceId,omitempty"`
	Read        bool       `firestore:"read"`
	CreatedAt   time.Time  `firestore:"createdAt"`
	ReadAt      *time.Time `firestore:"readAt"`
}

func toTransactionDoc(tx *finance.Transaction) transactionDoc {
	state := tx.State
	if state == "" {
		state = finance.StateActive
	}
	doc := transactionDoc{
		UserID:     tx.UserID,
		Type:       string(tx.Type),
		Amount:     tx.Amount,
		Category:   tx.Category,
		Date:       tx.Date.String(),
		Note:       tx.Note,
		Currency:   tx.Currency,
		State:      string(state),
		Source:     string(tx.Source),
		SeriesID:   tx.SeriesID,
		Superseded: tx.Superseded,
		CreatedAt:  tx.CreatedAt,
		UpdatedAt:  tx.UpdatedAt,
	}
	if tx.Recurrence != nil {
		doc.Recurring = true
		doc.Interval = string(tx.Recurrence.Interval)
		if tx.Recurrence.EndDate != nil {
			doc.EndDate = tx.Recurrence.EndDate.String()
		}
	}
	return doc
}

func (d transactionDoc) toTransaction(id string) (*finance.Transaction, error) {
	date, err := parseStoredDate(d.Date)
	if err != nil {
		return nil, fmt.Errorf("transaction %s has bad date %q: %w", id, d.Date, err)
	}
	tx := &finance.Transaction{
		ID:         id,
		UserID:     d.UserID,
		Type:       finance.TransactionType(d.Type),
		Amount:     d.Amount,
		Category:   d.Category,
		Date:       date,
		Note:       d.Note,
		Currency:   d.Currency,
		State:      finance.LifecycleState(d.State),
		Source:     finance.Source(d.Source),
		SeriesID:   d.SeriesID,
		Superseded: d.Superseded,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	if d.Recurring {
		rule := &finance.Recurrence{Interval: finance.Interval(d.Interval)}
		if d.EndDate != "" {
			end, err := civil.ParseDate(d.EndDate)
			if err != nil {
				return nil, fmt.Errorf("transaction %s has bad end date %q: %w", id, d.EndDate, err)
			}
			rule.EndDate = &end
		}
		tx.Recurrence = rule
	}
	return tx, nil
}

func decodeTransaction(doc *firestore.DocumentSnapshot) (*finance.Transaction, error) {
	var td transactionDoc
	if err := doc.DataTo(&td); err != nil {
		return nil, fmt.Errorf("failed to parse transaction: %w", err)
	}
	return td.toTransaction(doc.Ref.ID)
}

func decodeTransactions(docs []*firestore.DocumentSnapshot) ([]*finance.Transaction, error) {
	txs := make([]*finance.Transaction, 0, len(docs))
	for _, doc := range docs {
		tx, err := decodeTransaction(doc)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// activeOnly drops soft-deleted rows in place.
func activeOnly(txs []*finance.Transaction) []*finance.Transaction {
	out := txs[:0]
	for _, tx := range txs {
		if tx.IsActive() {
			out = append(out, tx)
		}
	}
	return out
}

func toGoalDoc(g *finance.Goal) goalDoc {
	return goalDoc{
		UserID:       g.UserID,
		Name:         g.Name,
		TargetAmount: g.TargetAmount,
		Deadline:     g.Deadline.String(),
		Progress:     g.Progress,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

func decodeGoal(doc *firestore.DocumentSnapshot) (*finance.Goal, error) {
	var gd goalDoc
	if err := doc.DataTo(&gd); err != nil {
		return nil, fmt.Errorf("failed to parse goal: %w", err)
	}
	deadline, err := parseStoredDate(gd.Deadline)
	if err != nil {
		return nil, fmt.Errorf("goal %s has bad deadline %q: %w", doc.Ref.ID, gd.Deadline, err)
	}
	return &finance.Goal{
		ID:           doc.Ref.ID,
		UserID:       gd.UserID,
		Name:         gd.Name,
		TargetAmount: gd.TargetAmount,
		Deadline:     deadline,
		Progress:     gd.Progress,
		CreatedAt:    gd.CreatedAt,
		UpdatedAt:    gd.UpdatedAt,
	}, nil
}

func toHoldingDoc(h *finance.Holding) holdingDoc {
	return holdingDoc{
		UserID:       h.UserID,
		Symbol:       h.Symbol,
		Quantity:     h.Quantity,
		AveragePrice: h.AveragePrice,
		CurrentPrice: h.CurrentPrice,
		CreatedAt:    h.CreatedAt,
		UpdatedAt:    h.UpdatedAt,
	}
}

func decodeHolding(doc *firestore.DocumentSnapshot) (*finance.Holding, error) {
	var hd holdingDoc
	if err := doc.DataTo(&hd); err != nil {
		return nil, fmt.Errorf("failed to parse holding: %w", err)
	}
	return &finance.Holding{
		ID:           doc.Ref.ID,
		UserID:       hd.UserID,
		Symbol:       hd.Symbol,
		Quantity:     hd.Quantity,
		AveragePrice: hd.AveragePrice,
		CurrentPrice: hd.CurrentPrice,
		CreatedAt:    hd.CreatedAt,
		UpdatedAt:    hd.UpdatedAt,
	}, nil
}

func toNotificationDoc(n *finance.Notification) notificationDoc {
	return notificationDoc{
		Kind:        n.Kind,
		Title:       n.Title,
		Message:     n.Message,
		ReferenceID: n.ReferenceID,
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
		ReadAt:      n.ReadAt,
	}
}

func (d notificationDoc) toNotification(userID, id string) *finance.Notification {
	return &finance.Notification{
		ID:          id,
		UserID:      userID,
		Kind:        d.Kind,
		Title:       d.Title,
		Message:     d.Message,
		ReferenceID: d.ReferenceID,
		Read:        d.Read,
		CreatedAt:   d.CreatedAt,
		ReadAt:      d.ReadAt,
	}
}
