package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
	"connectrpc.com/connect"
	"github.com/pfdash/backend/internal/auth"
	"github.com/pfdash/backend/internal/finance"
	"github.com/pfdash/backend/internal/rpc"
	"github.com/pfdash/backend/internal/store"
)

var monthKeyRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

func (s *FinanceService) GetBudgets(ctx context.Context, req *connect.Request[rpc.GetBudgetsRequest]) (*connect.Response[rpc.GetBudgetsResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}

	budgets, err := s.store.GetBudgets(ctx, claims.UID)
	if err != nil {
		return nil, storeError("get budgets", err)
	}
	return connect.NewResponse(&rpc.GetBudgetsResponse{Budgets: budgets}), nil
}

// SaveBudgets replaces the caller's budget map wholesale.
func (s *FinanceService) SaveBudgets(ctx context.Context, req *connect.Request[rpc.SaveBudgetsRequest]) (*connect.Response[rpc.SaveBudgetsResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}

	budgets := req.Msg.Budgets
	if budgets == nil {
		budgets = finance.Budgets{}
	}
	if err := budgets.Validate(); err != nil {
		return nil, invalidArgument(err)
	}

	if err := s.store.SaveBudgets(ctx, claims.UID, budgets); err != nil {
		return nil, storeError("save budgets", err)
	}
	return connect.NewResponse(&rpc.SaveBudgetsResponse{Budgets: budgets}), nil
}

// GetBudgetAlerts reports the alerts due for a month without raising any
// notification.
func (s *FinanceService) GetBudgetAlerts(ctx context.Context, req *connect.Request[rpc.GetBudgetAlertsRequest]) (*connect.Response[rpc.GetBudgetAlertsResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}

	month := req.Msg.Month
	if month == "" {
		month = finance.CurrentMonth(s.now())
	} else if !monthKeyRe.MatchString(month) {
		return nil, invalidArgument(fmt.Errorf("invalid month %q: want YYYY-MM", month))
	}

	alerts, err := s.dueAlerts(ctx, claims.UID, month)
	if err != nil {
		return nil, err
	}
	if alerts == nil {
		alerts = []finance.BudgetAlert{}
	}
	return connect.NewResponse(&rpc.GetBudgetAlertsResponse{Month: month, Alerts: alerts}), nil
}

// EvaluateBudgetAlerts evaluates the current month's alerts for every user
// in scope and notifies those who have alerts enabled. Every call notifies
// again for every alert still due.
func (s *FinanceService) EvaluateBudgetAlerts(ctx context.Context, req *connect.Request[rpc.EvaluateBudgetAlertsRequest]) (*connect.Response[rpc.EvaluateBudgetAlertsResponse], error) {
	userID, err := auth.ResolveBatchScope(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}

	userIDs := []string{userID}
	if userID == "" {
		userIDs, err = s.store.ListBudgetUserIDs(ctx)
		if err != nil {
			return nil, storeError("list budget owners", err)
		}
	}

	month := finance.CurrentMonth(s.now())
	var resp rpc.EvaluateBudgetAlertsResponse
	for _, uid := range userIDs {
		raised, sent, err := s.evaluateUserAlerts(ctx, uid, month)
		if err != nil {
			s.log.Error().Err(err).Str("user_id", uid).Msg("budget alert evaluation failed")
			continue
		}
		resp.UsersEvaluated++
		resp.AlertsRaised += raised
		resp.NotificationsSent += sent
	}

	s.log.Info().
		Str("month", month).
		Int32("users", resp.UsersEvaluated).
		Int32("alerts", resp.AlertsRaised).
		Int32("notifications", resp.NotificationsSent).
		Msg("budget alert evaluation completed")

	return connect.NewResponse(&resp), nil
}

func (s *FinanceService) evaluateUserAlerts(ctx context.Context, userID, month string) (int32, int32, error) {
	alerts, err := s.dueAlerts(ctx, userID, month)
	if err != nil || len(alerts) == 0 {
		return 0, 0, err
	}

	prefs, err := s.store.GetPreferences(ctx, userID)
	if err != nil {
		return 0, 0, fmt.Errorf("get preferences: %w", err)
	}

	var sent int32
	for _, alert := range alerts {
		notified := false
		if prefs.AlertsEnabled {
			if _, err := s.notifier.BudgetAlert(ctx, prefs, alert); err != nil {
				s.log.Warn().Err(err).Str("user_id", userID).Str("category", alert.Category).Msg("budget alert notification failed")
				if s.metrics != nil {
					s.metrics.NotificationFailures.Inc()
				}
			} else {
				notified = true
				sent++
			}
		}
		if s.metrics != nil {
			s.metrics.BudgetAlerts.WithLabelValues(strconv.FormatBool(notified)).Inc()
		}
	}
	return int32(len(alerts)), sent, nil
}

// dueAlerts loads the month's active transactions and the user's budgets
// and runs the alert evaluator over them.
func (s *FinanceService) dueAlerts(ctx context.Context, userID, month string) ([]finance.BudgetAlert, error) {
	budgets, err := s.store.GetBudgets(ctx, userID)
	if err != nil {
		return nil, storeError("get budgets", err)
	}
	if len(budgets) == 0 {
		return nil, nil
	}

	start, end, err := monthBounds(month)
	if err != nil {
		return nil, invalidArgument(err)
	}
	txs, err := s.activeTransactions(ctx, userID, store.ListOptions{StartDate: &start, EndDate: &end})
	if err != nil {
		return nil, err
	}
	return finance.DueAlerts(txs, budgets, month), nil
}

// monthBounds returns the first and last calendar day of a YYYY-MM month.
func monthBounds(month string) (civil.Date, civil.Date, error) {
	first, err := civil.ParseDate(month + "-01")
	if err != nil {
		return civil.Date{}, civil.Date{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	last := civil.DateOf(first.In(time.UTC).AddDate(0, 1, -1))
	return first, last, nil
}
