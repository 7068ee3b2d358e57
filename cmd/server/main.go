package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"connectrpc.com/connect"
	firebase "firebase.google.com/go/v4"
	"github.com/pfdash/backend/internal/auth"
	"github.com/pfdash/backend/internal/config"
	"github.com/pfdash/backend/internal/export"
	"github.com/pfdash/backend/internal/logger"
	"github.com/pfdash/backend/internal/metrics"
	"github.com/pfdash/backend/internal/notify"
	"github.com/pfdash/backend/internal/rates"
	"github.com/pfdash/backend/internal/rpc"
	"github.com/pfdash/backend/internal/search"
	"github.com/pfdash/backend/internal/service"
	"github.com/pfdash/backend/internal/store"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg := config.Load()
	logger.SetDefault(logger.New(os.Stdout, cfg.LogLevel, cfg.LogPretty))
	log := logger.Component("server")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.Component("server")

	var (
		storeImpl    store.Store
		firebaseApp  *firebase.App
		firebaseAuth *auth.FirebaseAuth
	)

	if cfg.UseMemoryStore {
		log.Info().Msg("using in-memory store for local development")
		storeImpl = store.NewMemoryStore()
	} else {
		firestoreClient, err := firestore.NewClient(ctx, cfg.ProjectID)
		if err != nil {
			return fmt.Errorf("create firestore client: %w", err)
		}
		defer firestoreClient.Close()
		storeImpl = store.NewFirestoreStore(firestoreClient)

		firebaseApp, err = auth.NewFirebaseApp(ctx, cfg.ProjectID)
		if err != nil {
			return fmt.Errorf("initialize firebase: %w", err)
		}
		if !cfg.SkipAuth {
			firebaseAuth, err = auth.NewFirebaseAuth(ctx, firebaseApp)
			if err != nil {
				return fmt.Errorf("initialize firebase auth: %w", err)
			}
		}
	}

	m := metrics.New()
	opts := []service.Option{service.WithMetrics(m)}

	var notifyOpts []notify.Option
	if firebaseApp != nil {
		messagingClient, err := firebaseApp.Messaging(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("push messaging unavailable, notifications are stored only")
		} else {
			notifyOpts = append(notifyOpts, notify.WithPusher(messagingClient))
		}
	}
	opts = append(opts, service.WithNotifier(notify.New(storeImpl, notifyOpts...)))

	if cfg.AlgoliaEnabled() {
		algolia, err := search.NewAlgoliaClient(search.Config{
			AppID:     cfg.AlgoliaAppID,
			APIKey:    cfg.AlgoliaAPIKey,
			IndexName: cfg.AlgoliaIndex,
		})
		if err != nil {
			return fmt.Errorf("create algolia client: %w", err)
		}
		opts = append(opts, service.WithSearch(algolia, algolia))
		log.Info().Str("index", cfg.AlgoliaIndex).Msg("algolia search enabled")
	}

	if cfg.ExportBucket != "" {
		uploader, err := export.NewGCSUploader(ctx, cfg.ExportBucket)
		if err != nil {
			return fmt.Errorf("create export uploader: %w", err)
		}
		defer uploader.Close()
		opts = append(opts, service.WithUploader(uploader))
	}

	financeService := service.NewFinanceService(storeImpl, opts...)

	schedulerOpt := auth.WithSchedulerSecret(cfg.SchedulerSecret, rpc.SchedulerProcedures...)
	interceptors := []connect.Interceptor{m.Interceptor()}
	if firebaseAuth != nil {
		interceptors = append(interceptors, auth.AuthInterceptor(firebaseAuth, schedulerOpt))
	} else {
		log.Warn().Msg("using mock authentication, never run this in production")
		interceptors = append(interceptors, auth.LocalDevInterceptor(schedulerOpt))
	}

	path, handler := rpc.NewFinanceServiceHandler(
		financeService,
		connect.WithInterceptors(interceptors...),
	)

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Connect-Protocol-Version",
			"Connect-Timeout-Ms",
			"Content-Type",
			"User-Agent",
			"X-User-Agent",
			auth.DebugImpersonateHeader,
		},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h2c.NewHandler(c.Handler(mux), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	if cfg.RatesURL != "" {
		refresher := rates.NewRefresher(storeImpl, cfg.RatesURL, rates.WithInterval(cfg.RatesRefreshInterval))
		g.Go(func() error {
			return refresher.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
