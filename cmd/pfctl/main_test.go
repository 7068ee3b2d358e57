package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"connectrpc.com/connect"
	"github.com/pfdash/backend/internal/auth"
	"github.com/pfdash/backend/internal/finance"
	"github.com/pfdash/backend/internal/rpc"
	"github.com/pfdash/backend/internal/service"
	"github.com/pfdash/backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, st store.Store) string {
	t.Helper()
	path, handler := rpc.NewFinanceServiceHandler(service.NewFinanceService(st), connect.WithInterceptors(
		auth.LocalDevInterceptor(auth.WithSchedulerSecret("s3cret", rpc.SchedulerProcedures...)),
	))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv.URL
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSeedThenInspect(t *testing.T) {
	st := store.NewMemoryStore()
	url := startServer(t, st)

	out, err := execute(t, "--server", url, "--user", "demo", "seed")
	require.NoError(t, err)
	assert.Equal(t, "Seeded 9 transactions and 3 budgets\n", out)

	budgets, err := st.GetBudgets(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, demoBudgets, budgets)

	out, err = execute(t, "--server", url, "--user", "demo", "insights")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "As of "), out)

	out, err = execute(t, "--server", url, "--secret", "s3cret", "process-recurring")
	require.NoError(t, err)
	assert.Contains(t, out, "processed=")

	_, err = execute(t, "--server", url, "--secret", "wrong", "alerts", "evaluate")
	require.Error(t, err)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

func TestDemoTransactionsAreValid(t *testing.T) {
	today := civil.Date{Year: 2024, Month: 6, Day: 15}
	for _, tx := range demoTransactions(today) {
		assert.NoError(t, tx.Validate(), tx.Category)
		assert.False(t, tx.Date.After(today))
	}
}

func TestPrintAlerts(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printAlerts(&out, &rpc.GetBudgetAlertsResponse{Month: "2024-06"}))
	assert.Equal(t, "No budget alerts for 2024-06\n", out.String())

	out.Reset()
	require.NoError(t, printAlerts(&out, &rpc.GetBudgetAlertsResponse{
		Month:  "2024-06",
		Alerts: []finance.BudgetAlert{{Category: "Food", PercentSpent: 95, Spent: 475, Limit: 500}},
	}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"Food", "475.00", "500.00", "95%"}, strings.Fields(lines[1]))
}
