package service

import (
	"context"
	"errors"
	"testing"

	"connectrpc.com/connect"
	"github.com/pfdash/backend/internal/finance"
	"github.com/pfdash/backend/internal/metrics"
	"github.com/pfdash/backend/internal/rpc"
	"github.com/pfdash/backend/internal/store"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// seedFoodOverspend gives a user a Food budget of 500 with 475 spent in
// June 2024 and 1000 spent in May.
func seedFoodOverspend(t *testing.T, st store.Store, userID string) {
	t.Helper()
	require.NoError(t, st.SaveBudgets(context.Background(), userID, finance.Budgets{"Food": 500, "Fun": 100}))
	seed(t, st, userID, expense("Food", 400, date(2024, 6, 3)))
	seed(t, st, userID, expense("Food", 75, date(2024, 6, 10)))
	seed(t, st, userID, expense("Fun", 50, date(2024, 6, 10)))
	seed(t, st, userID, expense("Food", 1000, date(2024, 5, 20)))
}

func TestSaveBudgets(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := testContextWithUser("user-1")

	_, err := svc.SaveBudgets(ctx, connect.NewRequest(&rpc.SaveBudgetsRequest{Budgets: finance.Budgets{"Food": -1}}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = svc.SaveBudgets(ctx, connect.NewRequest(&rpc.SaveBudgetsRequest{Budgets: finance.Budgets{"Food": 500}}))
	require.NoError(t, err)

	got, err := svc.GetBudgets(ctx, connect.NewRequest(&rpc.GetBudgetsRequest{}))
	require.NoError(t, err)
	assert.Equal(t, finance.Budgets{"Food": 500}, got.Msg.Budgets)
}

func TestGetBudgetAlerts_ReadOnly(t *testing.T) {
	svc, st, notifier := newTestService()
	ctx := testContextWithUser("user-1")
	seedFoodOverspend(t, st, "user-1")

	resp, err := svc.GetBudgetAlerts(ctx, connect.NewRequest(&rpc.GetBudgetAlertsRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "2024-06", resp.Msg.Month)
	require.Len(t, resp.Msg.Alerts, 1)
	assert.Equal(t, finance.BudgetAlert{Category: "Food", PercentSpent: 95, Spent: 475, Limit: 500}, resp.Msg.Alerts[0])
	assert.Empty(t, notifier.alerts)

	may, err := svc.GetBudgetAlerts(ctx, connect.NewRequest(&rpc.GetBudgetAlertsRequest{Month: "2024-05"}))
	require.NoError(t, err)
	require.Len(t, may.Msg.Alerts, 1)
	assert.Equal(t, int64(200), may.Msg.Alerts[0].PercentSpent)

	_, err = svc.GetBudgetAlerts(ctx, connect.NewRequest(&rpc.GetBudgetAlertsRequest{Month: "2024-13"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestGetBudgetAlerts_NoBudgets(t *testing.T) {
	svc, st, _ := newTestService()
	seed(t, st, "user-1", expense("Food", 400, date(2024, 6, 3)))

	resp, err := svc.GetBudgetAlerts(testContextWithUser("user-1"), connect.NewRequest(&rpc.GetBudgetAlertsRequest{}))
	require.NoError(t, err)
	assert.NotNil(t, resp.Msg.Alerts)
	assert.Empty(t, resp.Msg.Alerts)
}

func TestEvaluateBudgetAlerts_NotifiesOnEveryCall(t *testing.T) {
	m := metrics.New()
	svc, st, notifier := newTestService(WithMetrics(m))
	ctx := testContextWithUser("user-1")
	seedFoodOverspend(t, st, "user-1")

	for i := 0; i < 2; i++ {
		resp, err := svc.EvaluateBudgetAlerts(ctx, connect.NewRequest(&rpc.EvaluateBudgetAlertsRequest{}))
		require.NoError(t, err)
		assert.Equal(t, int32(1), resp.Msg.UsersEvaluated)
		assert.Equal(t, int32(1), resp.Msg.AlertsRaised)
		assert.Equal(t, int32(1), resp.Msg.NotificationsSent)
	}

	require.Len(t, notifier.alerts, 2)
	assert.Equal(t, "Food", notifier.alerts[0].Category)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BudgetAlerts.WithLabelValues("true")))
}

func TestEvaluateBudgetAlerts_AlertsDisabled(t *testing.T) {
	svc, st, notifier := newTestService()
	seedFoodOverspend(t, st, "user-1")
	prefs := finance.DefaultPreferences("user-1")
	prefs.AlertsEnabled = false
	require.NoError(t, st.UpdatePreferences(context.Background(), prefs))

	resp, err := svc.EvaluateBudgetAlerts(testContextWithUser("user-1"), connect.NewRequest(&rpc.EvaluateBudgetAlertsRequest{}))
	require.NoError(t, err)
	assert.Equal(t, int32(1), resp.Msg.AlertsRaised)
	assert.Equal(t, int32(0), resp.Msg.NotificationsSent)
	assert.Empty(t, notifier.alerts)
}

func TestEvaluateBudgetAlerts_NotifierFailure(t *testing.T) {
	m := metrics.New()
	svc, st, notifier := newTestService(WithMetrics(m))
	notifier.err = errors.New("store down")
	seedFoodOverspend(t, st, "user-1")

	resp, err := svc.EvaluateBudgetAlerts(testContextWithUser("user-1"), connect.NewRequest(&rpc.EvaluateBudgetAlertsRequest{}))
	require.NoError(t, err)
	assert.Equal(t, int32(1), resp.Msg.AlertsRaised)
	assert.Equal(t, int32(0), resp.Msg.NotificationsSent)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BudgetAlerts.WithLabelValues("false")))
}

func TestEvaluateBudgetAlerts_SchedulerCoversEveryBudgetOwner(t *testing.T) {
	svc, st, notifier := newTestService()
	seedFoodOverspend(t, st, "user-1")
	seedFoodOverspend(t, st, "user-2")
	require.NoError(t, st.SaveBudgets(context.Background(), "user-3", finance.Budgets{"Food": 500}))

	resp, err := svc.EvaluateBudgetAlerts(testSchedulerContext(), connect.NewRequest(&rpc.EvaluateBudgetAlertsRequest{}))
	require.NoError(t, err)
	assert.Equal(t, int32(3), resp.Msg.UsersEvaluated)
	assert.Equal(t, int32(2), resp.Msg.AlertsRaised)
	assert.Len(t, notifier.alerts, 2)

	_, err = svc.EvaluateBudgetAlerts(testContextWithUser("user-1"), connect.NewRequest(&rpc.EvaluateBudgetAlertsRequest{UserID: "user-2"}))
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))
}

func TestEvaluateBudgetAlerts_SkipsFailingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)
	svc := NewFinanceService(mockStore, WithClock(testClock), WithNotifier(&fakeNotifier{}))

	mockStore.EXPECT().ListBudgetUserIDs(gomock.Any()).Return([]string{"user-1", "user-2"}, nil)
	mockStore.EXPECT().GetBudgets(gomock.Any(), "user-1").Return(nil, errors.New("permission denied"))
	mockStore.EXPECT().GetBudgets(gomock.Any(), "user-2").Return(finance.Budgets{}, nil)

	resp, err := svc.EvaluateBudgetAlerts(testSchedulerContext(), connect.NewRequest(&rpc.EvaluateBudgetAlertsRequest{}))
	require.NoError(t, err)
	assert.Equal(t, int32(1), resp.Msg.UsersEvaluated)
	assert.Equal(t, int32(0), resp.Msg.AlertsRaised)
}

func TestMonthBounds(t *testing.T) {
	first, last, err := monthBounds("2024-02")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 2, 1), first)
	assert.Equal(t, date(2024, 2, 29), last)

	_, _, err = monthBounds("2024")
	assert.Error(t, err)
}
