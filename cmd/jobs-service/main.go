package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/app/background"
	"github.com/fixway/fixway-jobs-service/internal/config"
	deliveryhttp "github.com/fixway/fixway-jobs-service/internal/delivery/http"
	"github.com/fixway/fixway-jobs-service/internal/domain"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/commission"
	publisher "github.com/fixway/fixway-jobs-service/internal/infrastructure/kafka"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/metrics"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/migrate"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/notifier"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/postgres"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/postgres/repository"
	biduc "github.com/fixway/fixway-jobs-service/internal/usecase/bid"
	disputeuc "github.com/fixway/fixway-jobs-service/internal/usecase/dispute"
	jobuc "github.com/fixway/fixway-jobs-service/internal/usecase/job"
	paymentuc "github.com/fixway/fixway-jobs-service/internal/usecase/payment"
	trustuc "github.com/fixway/fixway-jobs-service/internal/usecase/trust"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func setupLogger(cfg config.LogConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	logger := setupLogger(cfg.LogConfig)
	slog.SetDefault(logger)

	// Init database
	db := postgres.MustInitDB(cfg)
	if migrationsPath := os.Getenv("JOBS_MIGRATIONS_PATH"); migrationsPath != "" {
		if err := migrate.RunMigrations(db, migrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := publisher.NewKafkaPublisher(brokers)
	defer pub.Close()

	httpNotifier := notifier.NewHTTPNotifier(fmt.Sprintf("http://%s:%s", cfg.NotifierService.Host, cfg.NotifierService.Port))

	var commissionRules domain.CommissionRulePort
	if cfg.CommissionService.Host != "" {
		commissionRules = commission.NewHTTPCommissionClient(fmt.Sprintf("http://%s:%s", cfg.CommissionService.Host, cfg.CommissionService.Port))
	} else {
		commissionRules = &commission.StaticCommissionClient{Rate: cfg.CommissionService.DefaultRate}
	}

	registry := prometheus.NewRegistry()
	jobMetrics := metrics.NewJobMetrics(registry)

	// Repositories
	jobRepo := repository.NewDefaultJobRepository(db)
	bidRepo := repository.NewDefaultBidRepository(db)
	paymentRepo := repository.NewDefaultPaymentRepository(db)
	disputeRepo := repository.NewDefaultDisputeRepository(db)
	trustRepo := repository.NewDefaultTrustRepository(db)

	// Usecases
	trustUsecase := trustuc.NewDefaultTrustUsecase(trustRepo)
	lifecycle := jobuc.LifecycleDefaults{
		MaxReposts:          cfg.Lifecycle.MaxReposts,
		RecirculationLimit:  cfg.Lifecycle.RecirculationLimit,
		SoftLockTTL:         cfg.Lifecycle.SoftLockTTL,
		NegotiationWindow:   cfg.Lifecycle.NegotiationWindow,
		PaymentWindow:       cfg.Lifecycle.PaymentWindow,
		DefaultWarrantyDays: cfg.Lifecycle.DefaultWarrantyDays,
	}
	jobUsecase := jobuc.NewDefaultJobUsecase(jobRepo, bidRepo, trustUsecase, pub, httpNotifier, jobMetrics, lifecycle)
	bidUsecase := biduc.NewDefaultBidUsecase(jobRepo, bidRepo, trustUsecase, pub, httpNotifier, jobMetrics, cfg.Lifecycle.PaymentWindow)
	paymentUsecase := paymentuc.NewDefaultPaymentUsecase(paymentRepo, jobRepo, disputeRepo, trustUsecase, commissionRules, pub, httpNotifier, jobMetrics)
	disputeUsecase := disputeuc.NewDefaultDisputeUsecase(disputeRepo, paymentRepo, jobRepo, trustUsecase, pub, httpNotifier, jobMetrics, cfg.Lifecycle.DisputeReviewTTL)

	router := deliveryhttp.NewRouter(logger, deliveryhttp.Usecases{
		Jobs:     jobUsecase,
		Bids:     bidUsecase,
		Payments: paymentUsecase,
		Disputes: disputeUsecase,
		Trust:    trustUsecase,
	}, registry)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper := background.NewSweeper(jobUsecase, paymentUsecase, disputeUsecase, cfg.Lifecycle.SweepInterval)
	go sweeper.Start(ctx)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		logger.Info("starting jobs service", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-done

	logger.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err.Error())
	}
	logger.Info("server stopped")
}
