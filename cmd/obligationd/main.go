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

	"github.com/bibbank/bib/services/obligation-service/internal/application/usecase"
	"github.com/bibbank/bib/services/obligation-service/internal/domain/model"
	"github.com/bibbank/bib/services/obligation-service/internal/infrastructure/clock"
	"github.com/bibbank/bib/services/obligation-service/internal/infrastructure/config"
	grpcPresentation "github.com/bibbank/bib/services/obligation-service/internal/presentation/grpc"
	"github.com/bibbank/bib/services/obligation-service/internal/presentation/rest"
	"github.com/bibbank/bib/services/obligation-service/pkg/observability"
	"github.com/bibbank/bib/services/obligation-service/pkg/tlsutil"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		ServiceName: cfg.ServiceName,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting obligation-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"timezone", cfg.Timezone,
	)

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck // best-effort flush

	// Wire use cases.
	clk := clock.NewSystemClock(cfg.Location())
	thresholds := model.UrgencyThresholds{
		UrgentWithinDays:  cfg.Reminders.UrgentWithinDays,
		WarningWithinDays: cfg.Reminders.WarningWithinDays,
	}
	previewUC := usecase.NewPreviewObligationUseCase(logger)
	upcomingUC := usecase.NewUpcomingPaymentsUseCase(clk, cfg.Reminders.UpcomingDaysAhead, thresholds)
	reviewUC := usecase.NewMonthlyReviewUseCase(clk, cfg.Reminders.ReviewGraceDays)

	// gRPC server.
	grpcCfg := grpcPresentation.ServerConfig{
		ServiceName: cfg.ServiceName,
		Reflection:  cfg.GRPCReflection,
		Meter:       meterProvider.Meter(cfg.ServiceName),
	}
	if cfg.GRPCTLS.Enabled() {
		creds, err := tlsutil.ServerCredentials(cfg.GRPCTLS.CertFile, cfg.GRPCTLS.KeyFile)
		if err != nil {
			logger.Error("failed to load TLS credentials", "error", err)
			os.Exit(1)
		}
		grpcCfg.Credentials = creds
	}
	handler := grpcPresentation.NewObligationHandler(previewUC, upcomingUC, reviewUC, logger)
	grpcServer, err := grpcPresentation.NewServer(handler, logger, grpcCfg)
	if err != nil {
		logger.Error("failed to initialize gRPC server", "error", err)
		os.Exit(1)
	}

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(cfg.ServiceName, metricsHandler, logger)
	healthHandler.RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	healthHandler.SetReady(true)

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	healthHandler.SetReady(false)
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("obligation-service stopped")
}
