package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"ledgerdesk/internal/config"
	"ledgerdesk/internal/console"
	"ledgerdesk/internal/search"
	"ledgerdesk/internal/service"
	"ledgerdesk/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "directory containing ledgerdesk.yaml")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	limits, err := cfg.Limits()
	if err != nil {
		logger.Fatal("invalid validation limits", zap.Error(err))
	}

	// Initialize storage and seed the starter catalog
	store := storage.NewMemoryStore()
	catalog, err := storage.Seed(store)
	if err != nil {
		logger.Fatal("failed to seed catalog", zap.Error(err))
	}

	// Initialize services
	enterpriseService := service.NewEnterpriseService(store, limits)
	widgetService := service.NewWidgetService(store, limits, catalog)
	searcher := search.NewCatalogSearch(store, store)

	// Initialize the console server and prompt loop
	server := console.NewServer(enterpriseService, widgetService, searcher, logger)
	repl := console.NewREPL(os.Stdin, os.Stdout, server, cfg.GetString("console.prompt"), logger)

	logger.Info("ledgerdesk ready",
		zap.Int("seeded_widgets", len(catalog)),
		zap.Int("name_max_length", limits.NameMaxLength))

	if err := repl.Run(); err != nil {
		logger.Fatal("console error", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	// Keep structured logs off the interactive console.
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
