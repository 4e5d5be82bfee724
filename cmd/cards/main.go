package main

import (
	"context"
	"fmt"
	"os"

	"vocabcards/internal/catalog"
	"vocabcards/internal/config"
	"vocabcards/internal/gesture"
	"vocabcards/internal/repository/sqlite"
	"vocabcards/internal/service"
	"vocabcards/internal/tui"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vocabcards: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// the terminal belongs to the UI, so logs go to a file
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{cfg.Cards.LogPath}
	logCfg.ErrorOutputPaths = []string{cfg.Cards.LogPath}
	logger, err := logCfg.Build()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	gestureCfg, err := cfg.Cards.Gesture.Resolve(gesture.TerminalConfig())
	if err != nil {
		return err
	}

	db, err := sqlite.Open(cfg.Cards.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	catalogService := service.NewCatalogService(
		catalog.NewSource(cfg.Catalog.URL, cfg.Catalog.Path, nil),
		cfg.Catalog.FetchTimeout,
		logger,
	)
	loadErr := catalogService.Load(context.Background())

	studyService := service.NewStudyService(catalogService, sqlite.NewPreferenceRepo(db), nil, logger)

	app := tui.New(studyService, catalogService, tui.Options{
		Gesture:  gestureCfg,
		ToastTTL: cfg.ToastTTL,
	}, logger)
	if loadErr != nil {
		app.Notify("Could not load cards")
	}

	logger.Info("Starting terminal UI", zap.String("db", cfg.Cards.DBPath))
	return app.Run()
}
