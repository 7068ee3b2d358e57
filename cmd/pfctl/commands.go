package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"cloud.google.com/go/civil"
	"github.com/pfdash/backend/internal/config"
	"github.com/pfdash/backend/internal/finance"
	"github.com/pfdash/backend/internal/logger"
	"github.com/pfdash/backend/internal/rpc"
	"github.com/pfdash/backend/internal/search"
	"github.com/spf13/cobra"
)

// demoTransactions is a month of activity ending today.
func demoTransactions(today civil.Date) []finance.Transaction {
	tx := func(t finance.TransactionType, category string, amount float64, daysAgo int, note string) finance.Transaction {
		return finance.Transaction{
			Type:     t,
			Category: category,
			Amount:   amount,
			Date:     today.AddDays(-daysAgo),
			Note:     note,
			Currency: "USD",
		}
	}

	rent := tx(finance.Expense, "Housing", 1450, 27, "Rent")
	rent.Recurrence = &finance.Recurrence{Interval: finance.Monthly}
	salary := tx(finance.Income, "Salary", 4200, 20, "Payroll")
	salary.Recurrence = &finance.Recurrence{Interval: finance.Monthly}

	return []finance.Transaction{
		rent,
		salary,
		tx(finance.Expense, "Food", 86.40, 25, "Groceries"),
		tx(finance.Expense, "Food", 42.15, 18, "Groceries"),
		tx(finance.Expense, "Food", 23.90, 9, "Lunch with team"),
		tx(finance.Expense, "Food", 310.00, 3, "Anniversary dinner"),
		tx(finance.Expense, "Transport", 55, 14, "Fuel"),
		tx(finance.Expense, "Entertainment", 15.99, 12, "Streaming"),
		tx(finance.Income, "Freelance", 650, 6, "Logo design"),
	}
}

var demoBudgets = finance.Budgets{
	"Food":          450,
	"Transport":     200,
	"Entertainment": 60,
}

func seedCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create demo transactions and budgets for the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := opts.client()
			log := logger.Component("pfctl")

			txs := demoTransactions(civil.DateOf(time.Now()))
			for _, tx := range txs {
				resp, err := client.CreateTransaction(ctx, userRequest(opts, &rpc.CreateTransactionRequest{Transaction: tx}))
				if err != nil {
					return fmt.Errorf("create %s transaction: %w", tx.Category, err)
				}
				log.Debug().Str("id", resp.Msg.Transaction.ID).Str("category", tx.Category).Msg("created transaction")
			}

			if _, err := client.SaveBudgets(ctx, userRequest(opts, &rpc.SaveBudgetsRequest{Budgets: demoBudgets})); err != nil {
				return fmt.Errorf("save budgets: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d transactions and %d budgets\n", len(txs), len(demoBudgets))
			return nil
		},
	}
}

func insightsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Print the insight cards for the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := opts.client().GetInsights(cmd.Context(), userRequest(opts, &rpc.GetInsightsRequest{}))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "As of %s\n", resp.Msg.AsOf.Format(time.RFC3339))
			if len(resp.Msg.Insights) == 0 {
				fmt.Fprintln(out, "No insights yet")
				return nil
			}
			for _, insight := range resp.Msg.Insights {
				fmt.Fprintf(out, "  [%s] %s\n", insight.Kind, insight.Text)
			}
			return nil
		},
	}
}

func processRecurringCmd(opts *globalOptions) *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "process-recurring",
		Short: "Materialize due recurring transactions",
		Long: `Materialize every recurring occurrence that is due. With --secret the
call runs as the scheduler and covers all users unless --for is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := opts.client().ProcessRecurringTransactions(cmd.Context(),
				schedulerRequest(opts, &rpc.ProcessRecurringTransactionsRequest{UserID: userID}))
			if err != nil {
				return err
			}
			m := resp.Msg
			fmt.Fprintf(cmd.OutOrStdout(), "processed=%d created=%d skipped=%d ended=%d errors=%d\n",
				m.ProcessedCount, m.OccurrencesCreated, m.SkippedCount, m.EndedCount, m.ErrorCount)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "for", "", "Limit processing to one user")
	return cmd
}

func alertsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Inspect or evaluate budget alerts",
	}

	var month string
	get := &cobra.Command{
		Use:   "get",
		Short: "List categories at or near their budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := opts.client().GetBudgetAlerts(cmd.Context(),
				userRequest(opts, &rpc.GetBudgetAlertsRequest{Month: month}))
			if err != nil {
				return err
			}
			return printAlerts(cmd.OutOrStdout(), resp.Msg)
		},
	}
	get.Flags().StringVar(&month, "month", "", "Month as YYYY-MM (default: current month)")

	var userID string
	evaluate := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate alerts and send notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := opts.client().EvaluateBudgetAlerts(cmd.Context(),
				schedulerRequest(opts, &rpc.EvaluateBudgetAlertsRequest{UserID: userID}))
			if err != nil {
				return err
			}
			m := resp.Msg
			fmt.Fprintf(cmd.OutOrStdout(), "users=%d alerts=%d notified=%d\n",
				m.UsersEvaluated, m.AlertsRaised, m.NotificationsSent)
			return nil
		},
	}
	evaluate.Flags().StringVar(&userID, "for", "", "Limit evaluation to one user")

	cmd.AddCommand(get, evaluate)
	return cmd
}

func printAlerts(out io.Writer, resp *rpc.GetBudgetAlertsResponse) error {
	if len(resp.Alerts) == 0 {
		_, err := fmt.Fprintf(out, "No budget alerts for %s\n", resp.Month)
		return err
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "CATEGORY\tSPENT\tLIMIT\tUSED\n")
	for _, a := range resp.Alerts {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%d%%\n", a.Category, a.Spent, a.Limit, a.PercentSpent)
	}
	return w.Flush()
}

func searchSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search-setup",
		Short: "Apply the Algolia index settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if !cfg.AlgoliaEnabled() {
				return fmt.Errorf("ALGOLIA_APP_ID and ALGOLIA_API_KEY must be set")
			}
			client, err := search.NewAlgoliaClient(search.Config{
				AppID:     cfg.AlgoliaAppID,
				APIKey:    cfg.AlgoliaAPIKey,
				IndexName: cfg.AlgoliaIndex,
			})
			if err != nil {
				return err
			}
			if err := client.ConfigureIndex(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configured index %s\n", cfg.AlgoliaIndex)
			return nil
		},
	}
}
