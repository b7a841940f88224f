package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	httpadapter "github.com/acrowfliedover/eGainAssignment/internal/adapters/http"
	"github.com/acrowfliedover/eGainAssignment/internal/adapters/file"
	"github.com/acrowfliedover/eGainAssignment/internal/adapters/memory"
	redisadapter "github.com/acrowfliedover/eGainAssignment/internal/adapters/redis"
	"github.com/acrowfliedover/eGainAssignment/internal/config"
	"github.com/acrowfliedover/eGainAssignment/internal/logging"
	"github.com/acrowfliedover/eGainAssignment/internal/observability/metrics"
	"github.com/acrowfliedover/eGainAssignment/internal/script"
	"github.com/acrowfliedover/eGainAssignment/pkg/observability"
	"github.com/acrowfliedover/eGainAssignment/pkg/persistence/middleware"
	"github.com/acrowfliedover/eGainAssignment/pkg/ports"
	"github.com/acrowfliedover/eGainAssignment/pkg/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the pricing assistant as a JSON API over HTTP, with Prometheus metrics on /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		if addr, _ := cmd.Flags().GetString("addr"); cmd.Flags().Changed("addr") {
			cfg.Addr = addr
		}
		if scriptPath, _ := cmd.Flags().GetString("script"); cmd.Flags().Changed("script") {
			cfg.ScriptPath = scriptPath
		}
		if backend, _ := cmd.Flags().GetString("store"); cmd.Flags().Changed("store") {
			cfg.StoreBackend = backend
		}

		if err := serve(cfg); err != nil {
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
	serveCmd.Flags().String("store", "memory", "Session store backend: memory, file, or redis")
}

func serve(cfg *config.Config) error {
	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	repo, err := script.Load(cfg.ScriptPath)
	if err != nil {
		return fmt.Errorf("loading script: %w", err)
	}

	store, sessionOpts, cleanup, err := buildStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	conversationMetrics := metrics.NewConversationMetrics(nil)
	hooks := observability.CombineHooks(conversationMetrics.Hooks(), observability.LoggingHooks(logger))
	manager := session.NewManager(store, append(sessionOpts, session.WithLogger(logger))...)

	api := httpadapter.NewServer(manager, repo,
		httpadapter.WithLogger(logger),
		httpadapter.WithHooks(hooks),
	)

	root := chi.NewRouter()
	root.Mount("/", api.Handler())
	root.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: root,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "store", cfg.StoreBackend)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown did not complete", "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("closing server: %w", err)
			}
		}
		logger.Info("server stopped")
		return nil
	}
}

// buildStore constructs the configured session store, wrapped with the
// configured at-rest middlewares, plus any session manager options the
// backend calls for and a cleanup func.
func buildStore(cfg *config.Config) (ports.StateStore, []session.Option, func(), error) {
	var store ports.StateStore
	var sessionOpts []session.Option
	cleanup := func() {}

	switch cfg.StoreBackend {
	case "memory", "":
		store = memory.New()
	case "file":
		store = file.New(cfg.SessionDir)
	case "redis":
		redisStore := redisadapter.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB,
			redisadapter.WithTTL(cfg.SessionTTL),
		)
		store = redisStore
		cleanup = func() { _ = redisStore.Close() }
		// A shared store implies other replicas may exist; take a
		// cross-process lock per session as well.
		locker := redisadapter.NewLocker(redisStore.Client(), "")
		sessionOpts = append(sessionOpts, session.WithLocker(locker, 30*time.Second))
	default:
		return nil, nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	var middlewares []middleware.Middleware
	if len(cfg.PIIPatterns) > 0 {
		middlewares = append(middlewares, middleware.NewPIIMiddleware(cfg.PIIPatterns))
	}
	if cfg.EncryptionKey != "" {
		key, err := base64.StdEncoding.DecodeString(cfg.EncryptionKey)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("decoding EGAINBOT_ENCRYPTION_KEY: %w", err)
		}
		if len(key) != 32 {
			return nil, nil, nil, fmt.Errorf("EGAINBOT_ENCRYPTION_KEY must decode to 32 bytes, got %d", len(key))
		}
		middlewares = append(middlewares, middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
			ActiveKey: key,
		}))
	}

	return middleware.Chain(store, middlewares...), sessionOpts, cleanup, nil
}
