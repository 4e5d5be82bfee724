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

	"vocabcards/internal/catalog"
	"vocabcards/internal/config"
	"vocabcards/internal/gesture"
	"vocabcards/internal/server"
	"vocabcards/internal/service"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	gestureCfg, err := cfg.Gesture.Resolve(gesture.DefaultConfig())
	if err != nil {
		logger.Fatal("Invalid config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalogService := service.NewCatalogService(
		catalog.NewSource(cfg.Catalog.URL, cfg.Catalog.Path, nil),
		cfg.Catalog.FetchTimeout,
		logger,
	)
	if err := catalogService.Load(ctx); err != nil {
		logger.Warn("Serving without a catalog", zap.Error(err))
	}

	go catalogService.Watch(ctx, cfg.Catalog.ReloadInterval)

	router := server.NewRouter(catalogService, server.Options{
		WebDir:   cfg.Server.WebDir,
		Gesture:  gestureCfg,
		ToastTTL: cfg.ToastTTL,
	}, logger)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down cleanly", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
