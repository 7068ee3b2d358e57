// Package notify records user notifications and mirrors them as Firebase
// Cloud Messaging web pushes.
package notify

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"github.com/pfdash/backend/internal/finance"
	"github.com/pfdash/backend/internal/logger"
	"github.com/pfdash/backend/internal/store"
	"github.com/rs/zerolog"
)

const (
	KindBudgetAlert    = "budget_alert"
	KindImportComplete = "import_complete"
)

// Pusher sends a single FCM message. *messaging.Client satisfies it.
type Pusher interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// Notifier handles creating notifications based on financial events.
type Notifier struct {
	store  store.Store
	pusher Pusher
	now    func() time.Time
	log    zerolog.Logger
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithPusher enables push delivery. Without it notifications are only
// stored.
func WithPusher(p Pusher) Option {
	return func(n *Notifier) { n.pusher = p }
}

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(n *Notifier) { n.now = now }
}

func New(st store.Store, opts ...Option) *Notifier {
	n := &Notifier{
		store: st,
		now:   time.Now,
		log:   logger.Component("notify"),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// BudgetAlert records an alert for a category that crossed its threshold
// and pushes it to the user's device. Amounts use the user's display
// currency symbol without conversion.
func (n *Notifier) BudgetAlert(ctx context.Context, prefs *finance.Preferences, alert finance.BudgetAlert) (*finance.Notification, error) {
	title := fmt.Sprintf("Budget Alert: %s", alert.Category)
	message := fmt.Sprintf("You've spent %d%% of your %s budget (%s of %s).",
		alert.PercentSpent, alert.Category,
		finance.FormatMoney(alert.Spent, prefs.Currency),
		finance.FormatMoney(alert.Limit, prefs.Currency))
	if alert.PercentSpent >= 100 {
		message = fmt.Sprintf("You've exceeded your %s budget!", alert.Category)
	}

	return n.Notify(ctx, prefs, &finance.Notification{
		UserID:      prefs.UserID,
		Kind:        KindBudgetAlert,
		Title:       title,
		Message:     message,
		ReferenceID: alert.Category,
	})
}

// ImportComplete records the outcome of a statement import.
func (n *Notifier) ImportComplete(ctx context.Context, prefs *finance.Preferences, imported, skipped int) (*finance.Notification, error) {
	msg := fmt.Sprintf("Successfully imported %d transactions.", imported)
	if skipped > 0 {
		msg = fmt.Sprintf("Imported %d transactions (%d skipped).", imported, skipped)
	}
	return n.Notify(ctx, prefs, &finance.Notification{
		UserID:  prefs.UserID,
		Kind:    KindImportComplete,
		Title:   "Statement Import Complete",
		Message: msg,
	})
}

// Notify persists the notification and sends it as a push when the user
// has registered a device token. Push failures are logged, never returned.
func (n *Notifier) Notify(ctx context.Context, prefs *finance.Preferences, notification *finance.Notification) (*finance.Notification, error) {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	if notification.UserID == "" {
		notification.UserID = prefs.UserID
	}
	notification.CreatedAt = n.now()

	if err := n.store.CreateNotification(ctx, notification); err != nil {
		return nil, fmt.Errorf("create %s notification: %w", notification.Kind, err)
	}

	n.push(ctx, prefs, notification)
	return notification, nil
}

func (n *Notifier) push(ctx context.Context, prefs *finance.Preferences, notification *finance.Notification) {
	if n.pusher == nil || prefs == nil || prefs.PushToken == "" {
		return
	}

	message := &messaging.Message{
		Token: prefs.PushToken,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Message,
		},
		Data: map[string]string{
			"kind":           notification.Kind,
			"notificationId": notification.ID,
		},
		Webpush: &messaging.WebpushConfig{
			FCMOptions: &messaging.WebpushFCMOptions{
				Link: "/notifications",
			},
		},
	}

	if _, err := n.pusher.Send(ctx, message); err != nil {
		n.log.Warn().Err(err).
			Str("user_id", notification.UserID).
			Str("kind", notification.Kind).
			Msg("failed to send push")
	}
}
