// Command pfctl drives a running finance backend over its RPC surface:
// seeding demo data, reading insights and alerts, and triggering the
// batch jobs Cloud Scheduler normally runs.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"connectrpc.com/connect"
	"github.com/pfdash/backend/internal/auth"
	"github.com/pfdash/backend/internal/config"
	"github.com/pfdash/backend/internal/logger"
	"github.com/pfdash/backend/internal/rpc"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	server   string
	user     string
	secret   string
	logLevel string
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:          "pfctl",
		Short:        "Operate a pfdash backend",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetDefault(logger.New(os.Stderr, opts.logLevel, true))
		},
	}

	cmd.PersistentFlags().StringVar(&opts.server, "server", envOr("PFDASH_SERVER", "http://localhost:8111"), "Backend base URL")
	cmd.PersistentFlags().StringVar(&opts.user, "user", "", "User to act as (local dev servers only)")
	cmd.PersistentFlags().StringVar(&opts.secret, "secret", os.Getenv("SCHEDULER_SECRET"), "Scheduler secret for batch commands")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		seedCmd(opts),
		insightsCmd(opts),
		processRecurringCmd(opts),
		alertsCmd(opts),
		searchSetupCmd(),
	)
	return cmd
}

func (o *globalOptions) client() *rpc.FinanceServiceClient {
	return rpc.NewFinanceServiceClient(&http.Client{Timeout: time.Minute}, o.server)
}

// userRequest builds a request that acts as --user when set.
func userRequest[T any](o *globalOptions, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	if o.user != "" {
		req.Header().Set(auth.DebugImpersonateHeader, o.user)
	}
	return req
}

// schedulerRequest builds a request authenticated with the scheduler
// secret. Without a secret it falls back to the user identity.
func schedulerRequest[T any](o *globalOptions, msg *T) *connect.Request[T] {
	if o.secret == "" {
		return userRequest(o, msg)
	}
	req := connect.NewRequest(msg)
	req.Header().Set(auth.SchedulerSecretHeader, o.secret)
	return req
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
