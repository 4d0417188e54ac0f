package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quantfold/fedgauge/internal/adapters/http/api"
	"github.com/quantfold/fedgauge/internal/adapters/repository"
	"github.com/quantfold/fedgauge/internal/app"
	"github.com/quantfold/fedgauge/internal/calendar"
	"github.com/quantfold/fedgauge/internal/config"
	"github.com/quantfold/fedgauge/internal/domain/classifier"
	"github.com/quantfold/fedgauge/internal/domain/registry"
	"github.com/quantfold/fedgauge/internal/domain/roster"
	sig "github.com/quantfold/fedgauge/internal/domain/signal"
	"github.com/quantfold/fedgauge/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Domain state: roster, calendar, stance store.
	committee := roster.Default()
	cal := calendar.Default()

	store, err := repository.NewJSONStore(cfg.StorePath,
		repository.WithThresholds(cfg.HawkishThreshold, cfg.DovishThreshold),
	)
	if err != nil {
		log.Error(ctx, "failed to open stance store", logger.Error(err))
		return
	}

	// Classifier chain: registered backends, env-gated semantic slots,
	// keyword terminal.
	keyword := classifier.New(
		classifier.WithThresholds(cfg.HawkishThreshold, cfg.DovishThreshold),
		classifier.WithPolicyBlendWeight(cfg.PolicyBlendWeight),
		classifier.WithQuoteContext(cfg.QuoteContext),
	)
	classifierRegistry := registry.NewClassifierRegistry()
	router := registry.NewRouter(classifierRegistry, keyword)

	sourceRegistry := registry.NewSourceRegistry()
	sources := registry.NewSourceRouter(sourceRegistry)

	// Signal engine over the store and calendar.
	engine := sig.New(committee, store, cal,
		sig.WithRoleWeights(cfg.RoleWeights),
		sig.WithDriftThresholds(cfg.DriftHawkishThreshold, cfg.DriftDovishThreshold),
		sig.WithActionTable(cfg.ActionBands),
	)

	// Refresh pipeline.
	svc := app.New(committee, store, router, sources,
		app.WithLogger(log),
		app.WithWorkerCount(cfg.WorkerCount),
		app.WithQueueSize(cfg.RefreshQueueSize),
		app.WithMaxNewsResults(cfg.MaxNewsResults),
		app.WithMaxEvidence(cfg.MaxEvidence),
		app.WithNewsBlendWeight(cfg.NewsBlendWeight),
		app.WithPolicyBlendWeight(cfg.PolicyBlendWeight),
	)
	if err := svc.Start(ctx); err != nil {
		log.Error(ctx, "failed to start service", logger.Error(err))
		return
	}

	// HTTP mux and routes.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	gateway := app.NewGateway(svc, engine, store, committee, cal,
		app.WithGatewayThresholds(cfg.HawkishThreshold, cfg.DovishThreshold))
	apiServer := api.NewServer(gateway)
	apiServer.Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}
	if err := svc.Stop(shutdownCtx); err != nil {
		log.Error(ctx, "service shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}
