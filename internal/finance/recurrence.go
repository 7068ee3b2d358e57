package finance

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// advance moves a date forward by one unit of the interval. Month and year
// steps use time.AddDate, so a day that does not exist in the target month
// rolls over into the following one (Jan 31 + 1 month = Mar 3).
func advance(d civil.Date, interval Interval) (civil.Date, bool) {
	t := d.In(time.UTC)
	switch interval {
	case Daily:
		t = t.AddDate(0, 0, 1)
	case Weekly:
		t = t.AddDate(0, 0, 7)
	case Monthly:
		t = t.AddDate(0, 1, 0)
	case Yearly:
		t = t.AddDate(1, 0, 0)
	default:
		return civil.Date{}, false
	}
	return civil.DateOf(t), true
}

// NextOccurrence projects the occurrence that follows a recurring template.
//
// It returns nil when the template has no recurrence, when its interval is
// not recognized, or when the candidate date falls strictly after the
// rule's end date (the end date itself is still eligible). The returned
// transaction carries a fresh ID and is not persisted.
func NextOccurrence(template Transaction) *Transaction {
	if template.Recurrence == nil {
		return nil
	}
	rule := *template.Recurrence

	next, ok := advance(template.Date, rule.Interval)
	if !ok {
		return nil
	}
	if rule.EndDate != nil && next.After(*rule.EndDate) {
		return nil
	}
	if rule.EndDate != nil {
		end := *rule.EndDate
		rule.EndDate = &end
	}

	seriesID := template.SeriesID
	if seriesID == "" {
		seriesID = template.ID
	}

	return &Transaction{
		ID:         uuid.New().String(),
		UserID:     template.UserID,
		Type:       template.Type,
		Amount:     template.Amount,
		Category:   template.Category,
		Date:       next,
		Note:       template.Note,
		Currency:   template.Currency,
		Recurrence: &rule,
		State:      StateActive,
		Source:     SourceRecurring,
		SeriesID:   seriesID,
	}
}
