package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"promo-ads/internal/adapter/cache"
	"promo-ads/internal/adapter/http"
	"promo-ads/internal/adapter/postgres"
	"promo-ads/internal/adapter/usecase"
	"promo-ads/internal/adapter/worker"
	"promo-ads/internal/config"
	"promo-ads/internal/db"
)

// main is the entry point of the promo-ads service. It loads configuration,
// optionally runs database migrations and seeds demo data, wires the
// repositories, the catalog cache and the expiry worker, then starts the
// HTTP server. On receiving a termination signal it gracefully shuts down.
func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return 1
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return 1
		}
		logger.Info("migrations applied successfully")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return 1
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return 1
		}
		logger.Info("demo data seeded", slog.String("owner_id", db.DemoOwner))
	}

	rdb, err := db.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logger.Error("redis connection error", slog.Any("error", err))
		return 1
	}
	var store cache.Store
	if rdb != nil {
		defer rdb.Close()
		store = rdb
	} else {
		logger.Info("redis not configured, catalog cache disabled")
	}

	catalog := cache.NewCatalogCache(postgres.NewCatalogRepository(pool), store, cfg.Redis.CatalogTTL, logger)
	svc := usecase.NewCampaignUseCase(
		postgres.NewCampaignRepository(pool),
		catalog,
		postgres.NewBillingRepository(pool),
		logger,
		usecase.WithSubmitTimeout(cfg.Wizard.SubmitTimeout),
	)

	if cfg.Worker.Enabled {
		expirer := worker.NewExpirer(svc, cfg.Worker.Interval, cfg.Worker.Timeout, logger)
		expirer.Start()
		defer expirer.Stop()
	}

	opts := []httpadapter.Option{httpadapter.WithFallbackImage(cfg.HTTP.FallbackImageURL)}
	if cfg.Metrics.Enabled {
		opts = append(opts, httpadapter.WithMetrics(cfg.Metrics.Path))
	}
	handler := httpadapter.NewHandler(svc, logger, opts...)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	exitCode := 0
	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		exitCode = 1
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	return exitCode
}
