package service

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"connectrpc.com/connect"
	"github.com/pfdash/backend/internal/auth"
	"github.com/pfdash/backend/internal/finance"
	"github.com/pfdash/backend/internal/logger"
	"github.com/pfdash/backend/internal/rpc"
)

// maxCatchUpSteps bounds how many occurrences one template may materialize
// in a single run.
const maxCatchUpSteps = 366

type templateOutcome int

const (
	outcomeSkipped templateOutcome = iota
	outcomeProcessed
	outcomeEnded
)

// PreviewNextOccurrence projects the occurrence that would follow a
// recurring transaction without saving it.
func (s *FinanceService) PreviewNextOccurrence(ctx context.Context, req *connect.Request[rpc.PreviewNextOccurrenceRequest]) (*connect.Response[rpc.PreviewNextOccurrenceResponse], error) {
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
	if !tx.IsRecurring() {
		return nil, invalidArgument(fmt.Errorf("transaction %s is not recurring", tx.ID))
	}

	return connect.NewResponse(&rpc.PreviewNextOccurrenceResponse{
		Occurrence: finance.NextOccurrence(*tx),
	}), nil
}

// ProcessRecurringTransactions materializes every occurrence that has come
// due for the active recurring templates in scope. Each template is caught
// up to the service clock's current date; every materialized occurrence
// becomes the series' new template and its predecessor is marked
// superseded. Cloud Scheduler calls this for all users.
func (s *FinanceService) ProcessRecurringTransactions(ctx context.Context, req *connect.Request[rpc.ProcessRecurringTransactionsRequest]) (*connect.Response[rpc.ProcessRecurringTransactionsResponse], error) {
	userID, err := auth.ResolveBatchScope(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}

	log := logger.Component("recurring")
	asOf := civil.DateOf(s.now())
	var resp rpc.ProcessRecurringTransactionsResponse

	pageToken := ""
	for {
		templates, nextToken, err := s.store.ListRecurringTemplates(ctx, userID, 1000, pageToken)
		if err != nil {
			return nil, storeError("list recurring templates", err)
		}

		for _, tmpl := range templates {
			outcome, created, procErr := s.processTemplate(ctx, tmpl, asOf)
			resp.OccurrencesCreated += created
			if s.metrics != nil {
				s.metrics.RecurringOccurrences.Add(float64(created))
			}
			if procErr != nil {
				log.Error().Err(procErr).
					Str("transaction_id", tmpl.ID).
					Str("user_id", tmpl.UserID).
					Msg("error processing recurring template")
				resp.ErrorCount++
				if s.metrics != nil {
					s.metrics.RecurringErrors.Inc()
				}
				continue
			}
			switch outcome {
			case outcomeProcessed:
				resp.ProcessedCount++
			case outcomeEnded:
				resp.EndedCount++
			default:
				resp.SkippedCount++
			}
		}

		if nextToken == "" {
			break
		}
		pageToken = nextToken
	}

	log.Info().
		Str("as_of", asOf.String()).
		Int32("processed", resp.ProcessedCount).
		Int32("skipped", resp.SkippedCount).
		Int32("ended", resp.EndedCount).
		Int32("errors", resp.ErrorCount).
		Int32("occurrences", resp.OccurrencesCreated).
		Msg("recurring processing completed")

	return connect.NewResponse(&resp), nil
}

// processTemplate catches one template up to asOf. It reports how many
// occurrences were saved even when it fails part way.
func (s *FinanceService) processTemplate(ctx context.Context, tmpl *finance.Transaction, asOf civil.Date) (templateOutcome, int32, error) {
	if !tmpl.Date.IsValid() {
		return outcomeSkipped, 0, fmt.Errorf("recurring template %s has an invalid date", tmpl.ID)
	}

	current := tmpl
	var created int32
	for step := 0; step < maxCatchUpSteps; step++ {
		next := finance.NextOccurrence(*current)
		if next == nil {
			if created > 0 {
				return outcomeProcessed, created, nil
			}
			return outcomeEnded, 0, nil
		}
		if next.Date.After(asOf) {
			break
		}

		persisted, err := s.materialize(ctx, current, next)
		if persisted {
			created++
		}
		if err != nil {
			return outcomeSkipped, created, err
		}
		current = next
	}

	if created == 0 {
		return outcomeSkipped, 0, nil
	}
	if created == maxCatchUpSteps {
		log := logger.Component("recurring")
		log.Warn().Str("series_id", current.SeriesID).Msg("recurring catch-up limit reached")
	}
	return outcomeProcessed, created, nil
}

// materialize saves next, then marks its predecessor superseded. When
// the predecessor cannot be updated, next is soft-deleted again so the
// series keeps a single live template. persisted reports whether next
// remains stored as an active row.
func (s *FinanceService) materialize(ctx context.Context, predecessor, next *finance.Transaction) (persisted bool, err error) {
	now := s.now()
	next.CreatedAt = now
	next.UpdatedAt = now
	if err := s.store.CreateTransaction(ctx, next); err != nil {
		return false, fmt.Errorf("failed to create occurrence: %w", err)
	}

	superseded := *predecessor
	superseded.Superseded = true
	if superseded.SeriesID == "" {
		superseded.SeriesID = next.SeriesID
	}
	superseded.UpdatedAt = now
	if err := s.store.UpdateTransaction(ctx, &superseded); err != nil {
		err = fmt.Errorf("failed to mark %s superseded: %w", predecessor.ID, err)
		rollback := *next
		rollback.State = finance.StateDeleted
		if rbErr := s.store.UpdateTransaction(ctx, &rollback); rbErr != nil {
			log := logger.FromContext(ctx)
			log.Error().Err(rbErr).
				Str("transaction_id", next.ID).
				Str("series_id", next.SeriesID).
				Msg("failed to roll back occurrence, series has two live templates")
			s.indexTransaction(ctx, next)
			return true, err
		}
		return false, err
	}
	*predecessor = superseded
	s.indexTransaction(ctx, next)
	return true, nil
}
