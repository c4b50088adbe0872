package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/payment-records/internal/application"
	"github.com/DanielPopoola/payment-records/internal/application/services"
	"github.com/DanielPopoola/payment-records/internal/config"
	"github.com/DanielPopoola/payment-records/internal/domain"
	"github.com/DanielPopoola/payment-records/internal/infrastructure/cache"
	"github.com/DanielPopoola/payment-records/internal/infrastructure/persistence/memory"
	"github.com/DanielPopoola/payment-records/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/payment-records/internal/interfaces/rest"
	"github.com/DanielPopoola/payment-records/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/payment-records/internal/interfaces/rest/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting payment records service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"store", cfg.Store.Driver,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()

	paymentRepo, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open payment store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	paymentCache, err := cache.NewStore[*domain.Payment](cfg.Cache.TTL, cfg.Cache.MaxEntries)
	if err != nil {
		logger.Error("failed to build payment cache", "error", err)
		os.Exit(1)
	}

	createService := services.NewCreatePaymentService(paymentRepo, logger)
	getService := services.NewGetPaymentService(paymentRepo, paymentCache, logger)
	listService := services.NewListPaymentsService(paymentRepo, logger)

	h := handlers.NewHandlers(createService, getService, listService, logger)

	apiDocs, err := rest.LoadAPIDocs(ctx)
	if err != nil {
		logger.Error("failed to load API docs", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	apiDocs.RegisterRoutes(mux)
	h.RegisterRoutes(mux)

	router := http.Handler(mux)

	handler := middleware.Recovery(logger)(router)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.RequestTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	stats := paymentCache.Stats()
	logger.Info("server exited",
		"cache_hits", stats.Hits,
		"cache_misses", stats.Misses,
		"cache_expirations", stats.Expirations,
		"cache_evictions", stats.Evictions,
	)
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (application.PaymentRepository, func(), error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		logger.Warn("using in-memory payment store; records are lost on exit")
		return memory.NewPaymentRepository(), func() {}, nil
	}

	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
	}

	return postgres.NewPaymentRepository(db), db.Close, nil
}
