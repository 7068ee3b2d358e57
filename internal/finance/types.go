// Package finance holds the dashboard's domain model and the pure
// computations over it: recurrence projection, spending insights and
// budget alerts. Nothing in this package performs I/O or reads the wall
// clock; callers pass the evaluation instant in explicitly.
package finance

import (
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	Daily   Interval = "daily"
	Weekly  Interval = "weekly"
	Monthly Interval = "monthly"
	Yearly  Interval = "yearly"
)

const (
	StateActive  LifecycleState = "active"
	StateDeleted LifecycleState = "deleted"
)

const (
	SourceManual    Source = "manual"
	SourceImport    Source = "import"
	SourceRecurring Source = "recurring"
)

type (
	TransactionType string

	// Interval is the unit a recurring transaction advances by.
	Interval string

	// LifecycleState tags whether a stored entity is visible to scans.
	LifecycleState string

	// Source records how a transaction entered the ledger.
	Source string

	Recurrence struct {
		Interval Interval    `json:"interval"`
		EndDate  *civil.Date `json:"endDate,omitempty"`
	}

	Transaction struct {
		ID         string          `json:"id"`
		UserID     string          `json:"userId"`
		Type       TransactionType `json:"type"`
		Amount     float64         `json:"amount"`
		Category   string          `json:"category"`
		Date       civil.Date      `json:"date"`
		Note       string          `json:"note,omitempty"`
		Currency   string          `json:"currency"`
		Recurrence *Recurrence     `json:"recurrence,omitempty"`
		State      LifecycleState  `json:"state"`
		Source     Source          `json:"source,omitempty"`
		// SeriesID links every occurrence materialized from the same
		// recurring template. Superseded marks a template whose successor
		// has already been materialized.
		SeriesID   string    `json:"seriesId,omitempty"`
		Superseded bool      `json:"superseded,omitempty"`
		CreatedAt  time.Time `json:"createdAt"`
		UpdatedAt  time.Time `json:"updatedAt"`
	}

	// Budgets maps a category name to its monthly limit.
	Budgets map[string]float64

	Goal struct {
		ID           string     `json:"id"`
		UserID       string     `json:"userId"`
		Name         string     `json:"name"`
		TargetAmount float64    `json:"targetAmount"`
		Deadline     civil.Date `json:"deadline"`
		Progress     float64    `json:"progress"`
		CreatedAt    time.Time  `json:"createdAt"`
		UpdatedAt    time.Time  `json:"updatedAt"`
	}

	Preferences struct {
		UserID        string `json:"userId"`
		Currency      string `json:"currency"`
		Theme         string `json:"theme"`
		AlertsEnabled bool   `json:"alertsEnabled"`
		PushToken     string `json:"pushToken,omitempty"`
	}

	// ExchangeRates is a rate table relative to Base. It is used for
	// display only; no core computation converts amounts.
	ExchangeRates struct {
		Base      string             `json:"base"`
		Rates     map[string]float64 `json:"rates"`
		FetchedAt time.Time          `json:"fetchedAt"`
	}

	// Notification is a user-facing message raised by the backend, such
	// as a budget alert.
	Notification struct {
		ID          string     `json:"id"`
		UserID      string     `json:"userId"`
		Kind        string     `json:"kind"`
		Title       string     `json:"title"`
		Message     string     `json:"message"`
		ReferenceID string     `json:"referenceId,omitempty"`
		Read        bool       `json:"read"`
		CreatedAt   time.Time  `json:"createdAt"`
		ReadAt      *time.Time `json:"readAt,omitempty"`
	}

	// Holding is a manually tracked investment position.
	Holding struct {
		ID           string    `json:"id"`
		UserID       string    `json:"userId"`
		Symbol       string    `json:"symbol"`
		Quantity     float64   `json:"quantity"`
		AveragePrice float64   `json:"averagePrice"`
		CurrentPrice *float64  `json:"currentPrice,omitempty"`
		CreatedAt    time.Time `json:"createdAt"`
		UpdatedAt    time.Time `json:"updatedAt"`
	}
)

var (
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidInterval = errors.New("invalid recurrence interval")
	ErrEmptyCategory   = errors.New("empty category")
	ErrEmptyCurrency   = errors.New("empty currency")
	ErrEmptyName       = errors.New("empty name")
	ErrEmptySymbol     = errors.New("empty symbol")
)

// DefaultPreferences returns the preferences used when a user has never
// saved any.
func DefaultPreferences(userID string) *Preferences {
	return &Preferences{
		UserID:        userID,
		Currency:      "USD",
		Theme:         "light",
		AlertsEnabled: true,
	}
}

// IsActive reports whether the transaction participates in scans.
// The zero state is treated as active so rows written before the
// lifecycle tag existed stay visible.
func (t Transaction) IsActive() bool {
	return t.State != StateDeleted
}

// IsRecurring reports whether the transaction is a recurrence template.
func (t Transaction) IsRecurring() bool {
	return t.Recurrence != nil
}

func (i Interval) Valid() bool {
	switch i {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

func (tt TransactionType) Valid() bool {
	return tt == Income || tt == Expense
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if t.Amount < 0 {
		return ErrInvalidAmount
	}
	if !t.Date.IsValid() {
		return ErrInvalidDate
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(t.Currency) == "" {
		return ErrEmptyCurrency
	}
	if t.Recurrence != nil {
		if !t.Recurrence.Interval.Valid() {
			return ErrInvalidInterval
		}
		if t.Recurrence.EndDate != nil {
			if !t.Recurrence.EndDate.IsValid() {
				return errors.New("invalid recurrence end date")
			}
			if t.Recurrence.EndDate.Before(t.Date) {
				return errors.New("recurrence end date must not be before the transaction date")
			}
		}
	}
	return nil
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyName
	}
	if g.TargetAmount <= 0 {
		return ErrInvalidAmount
	}
	if g.Progress < 0 {
		return errors.New("progress cannot be negative")
	}
	if !g.Deadline.IsValid() {
		return ErrInvalidDate
	}
	return nil
}

func (h Holding) Validate() error {
	if strings.TrimSpace(h.Symbol) == "" {
		return ErrEmptySymbol
	}
	if h.Quantity < 0 || h.AveragePrice < 0 {
		return ErrInvalidAmount
	}
	if h.CurrentPrice != nil && *h.CurrentPrice < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Validate rejects negative limits. A zero limit is allowed and simply
// never produces an alert.
func (b Budgets) Validate() error {
	for category, limit := range b {
		if strings.TrimSpace(category) == "" {
			return ErrEmptyCategory
		}
		if limit < 0 {
			return errors.New("budget limit for " + category + " cannot be negative")
		}
	}
	return nil
}

// NetWorth sums each holding's quantity times its current price, falling
// back to the average price when no current price is known.
func NetWorth(holdings []Holding) float64 {
	var total float64
	for _, h := range holdings {
		price := h.AveragePrice
		if h.CurrentPrice != nil {
			price = *h.CurrentPrice
		}
		total += h.Quantity * price
	}
	return total
}

// ParseDate parses an ISO 8601 calendar date (YYYY-MM-DD).
func ParseDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return civil.Date{}, ErrInvalidDate
	}
	return d, nil
}

// MonthKey returns the YYYY-MM key a date is grouped under.
func MonthKey(d civil.Date) string {
	return d.String()[:7]
}

// CurrentMonth returns the YYYY-MM key for an instant, evaluated in the
// instant's own location.
func CurrentMonth(asOf time.Time) string {
	return asOf.Format("2006-01")
}
