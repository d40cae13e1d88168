package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cotizaexport/cotizaexport/internal/app"
	"github.com/cotizaexport/cotizaexport/internal/document"
	"github.com/cotizaexport/cotizaexport/internal/history"
	"github.com/cotizaexport/cotizaexport/internal/observability"
	"github.com/cotizaexport/cotizaexport/internal/oracle"
	"github.com/cotizaexport/cotizaexport/internal/platform/cache"
	"github.com/cotizaexport/cotizaexport/internal/quote"
	"github.com/cotizaexport/cotizaexport/internal/shared"
	"github.com/cotizaexport/cotizaexport/internal/tariff"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	metrics := observability.NewMetrics()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	oracleClient, err := oracle.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger, metrics)
	if err != nil {
		logger.Error("configure oracle", slog.Any("error", err))
		os.Exit(1)
	}

	gate := shared.NewInflightGate()

	historyStore := history.NewStore(redisClient, logger, cfg.HistoryLimit)
	historyHandler := history.NewHandler(logger, historyStore)

	quoteService := quote.NewService(oracleClient, history.NewRecorder(historyStore), gate, logger, cfg.OracleTimeout)
	quoteHandler := quote.NewHandler(logger, quoteService)

	tariffService := tariff.NewService(oracleClient, logger, cfg.OracleTimeout)
	tariffHandler := tariff.NewHandler(logger, tariffService)

	documentService := document.NewService(oracleClient, gate, logger, cfg.OracleTimeout)
	documentHandler := document.NewHandler(logger, documentService)

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		QuoteHandler:    quoteHandler,
		TariffHandler:   tariffHandler,
		DocumentHandler: documentHandler,
		HistoryHandler:  historyHandler,
		Metrics:         metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
