package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/ipl-dashboard/internal/app"
	"github.com/riskibarqy/ipl-dashboard/internal/config"
	"github.com/riskibarqy/ipl-dashboard/internal/observability"
	"github.com/riskibarqy/ipl-dashboard/internal/platform/logging"
	"github.com/riskibarqy/ipl-dashboard/internal/usecase"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("ipl-dashboard/cmd/scraper")

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if cfg.ServiceName == "ipl-dashboard-api" {
		cfg.ServiceName = "ipl-dashboard-scraper"
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("shutdown uptrace failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := app.OpenWriteStore(ctx, cfg)
	if err != nil {
		logger.Error("open store", "error", err)
		return 1
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("close store failed", "error", err)
		}
	}()

	reconciler, err := app.NewReconciler(cfg, store, logger)
	if err != nil {
		logger.Error("build reconciler", "error", err)
		return 1
	}

	if cfg.ScrapeCron == "" {
		runCtx, cancel := context.WithTimeout(ctx, cfg.ScrapeRunTimeout)
		defer cancel()
		if err := reconcileOnce(runCtx, reconciler); err != nil {
			return 1
		}
		return 0
	}

	scheduler, err := app.NewScrapeScheduler(cfg.ScrapeCron, cfg.ScrapeTimezone, cfg.ScrapeRunTimeout, func(ctx context.Context) error {
		return reconcileOnce(ctx, reconciler)
	}, logger)
	if err != nil {
		logger.Error("build scheduler", "error", err)
		return 1
	}

	scheduler.Start()
	logger.Info("scrape scheduler started", "cron", cfg.ScrapeCron, "timezone", cfg.ScrapeTimezone.String())
	scheduler.Trigger()

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := scheduler.Stop(stopCtx); err != nil {
		logger.Error("stop scheduler failed", "error", err)
		return 1
	}
	logger.Info("scrape scheduler stopped")
	return 0
}

func reconcileOnce(ctx context.Context, reconciler *usecase.ReconcileService) error {
	ctx, span := tracer.Start(ctx, "scraper.reconcileOnce")
	defer span.End()

	_, err := reconciler.ReconcileAll(ctx)
	if err != nil {
		span.RecordError(err)
	}
	return err
}
